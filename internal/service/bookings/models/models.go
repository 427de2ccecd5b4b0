package models

import (
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// Модели запроса

// CancelBookingRequest отмена клинером из бронирования
type CancelBookingRequest struct {
	BookingID string `json:"-"`
	CallerID  string `json:"-"`
}

// Модели ответа

// BookingResponse DTO бронирования
type BookingResponse struct {
	ID              string    `json:"id"`
	CleanerID       string    `json:"cleanerId"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerAddress string    `json:"customerAddress"`
	HasPets         bool      `json:"hasPets"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       int       `json:"bathrooms"`
	ServiceType     string    `json:"serviceType"`
	Frequency       string    `json:"frequency"`
	Date            string    `json:"date"`      // "2025-06-02"
	TimeBlock       string    `json:"timeBlock"` // "morning" | "afternoon"
	StartTime       string    `json:"startTime"` // "09:00"
	EndTime         string    `json:"endTime"`   // "13:00"
	TotalPrice      float64   `json:"totalPrice"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Вспомогательные функции конвертации

// FromDomainBooking конвертирует доменную модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CleanerID:       b.CleanerID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerAddress: b.CustomerAddress,
		HasPets:         b.HasPets,
		Bedrooms:        b.Bedrooms,
		Bathrooms:       b.Bathrooms,
		ServiceType:     string(b.ServiceType.OrDefault()),
		Frequency:       string(b.Frequency),
		Date:            b.Date.String(),
		TimeBlock:       string(b.TimeBlock),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList никогда не возвращает nil, пустой список кодируется как []
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp = append(resp, *bookingResp)
		}
	}
	return resp
}
