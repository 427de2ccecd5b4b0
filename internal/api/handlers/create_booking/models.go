package create_booking

import (
	"time"

	createBooking "github.com/m04kA/CleanClick-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP модель запроса
type CreateBookingRequest struct {
	CleanerID       string `json:"cleanerId"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	HasPets         bool   `json:"hasPets"`
	Bedrooms        int    `json:"bedrooms"`
	Bathrooms       int    `json:"bathrooms"`
	ServiceType     string `json:"serviceType,omitempty"` // regular, если не указан
	Frequency       string `json:"frequency"`
	Date            string `json:"date"`      // "2025-06-02"
	TimeBlock       string `json:"timeBlock"` // "morning" | "afternoon"
}

// BookingResponse HTTP модель ответа
type BookingResponse struct {
	ID              string  `json:"id"`
	CleanerID       string  `json:"cleanerId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	HasPets         bool    `json:"hasPets"`
	Bedrooms        int     `json:"bedrooms"`
	Bathrooms       int     `json:"bathrooms"`
	ServiceType     string  `json:"serviceType"`
	Frequency       string  `json:"frequency"`
	Date            string  `json:"date"`
	TimeBlock       string  `json:"timeBlock"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CleanerID:       r.CleanerID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		HasPets:         r.HasPets,
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		ServiceType:     r.ServiceType,
		Frequency:       r.Frequency,
		Date:            r.Date,
		TimeBlock:       r.TimeBlock,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CleanerID:       resp.CleanerID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerAddress: resp.CustomerAddress,
		HasPets:         resp.HasPets,
		Bedrooms:        resp.Bedrooms,
		Bathrooms:       resp.Bathrooms,
		ServiceType:     resp.ServiceType,
		Frequency:       resp.Frequency,
		Date:            resp.Date,
		TimeBlock:       resp.TimeBlock,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
