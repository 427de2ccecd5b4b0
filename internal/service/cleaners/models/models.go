package models

import (
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	"github.com/m04kA/CleanClick-BookingService/internal/schedule"
)

// Модели запроса

// UpdateCleanerRequest частичное обновление профиля; nil поля не меняются.
// Имя и email приходят от identity провайдера и не меняются.
type UpdateCleanerRequest struct {
	CallerID           string                     `json:"-"`
	Phone              *string                    `json:"phone,omitempty"`
	MessengerUsername  *string                    `json:"messengerUsername,omitempty"`
	Availability       domain.WeeklyAvailability  `json:"availability,omitempty"`
	BlockedDates       *[]string                  `json:"blockedDates,omitempty"`
	Pricing            *domain.Pricing            `json:"pricing,omitempty"`
	FrequencyDiscounts *domain.FrequencyDiscounts `json:"frequencyDiscounts,omitempty"`
}

// ListOpenDaysRequest запрос выбора дат; пустой From означает сегодня
type ListOpenDaysRequest struct {
	CleanerID string
	From      string
	Count     int
}

// Модели ответа

// CleanerResponse публичный профиль
type CleanerResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email"`
	Phone              string                    `json:"phone,omitempty"`
	MessengerUsername  string                    `json:"messengerUsername,omitempty"`
	Availability       domain.WeeklyAvailability `json:"availability"`
	BlockedDates       []string                  `json:"blockedDates"`
	Pricing            domain.Pricing            `json:"pricing"`
	FrequencyDiscounts domain.FrequencyDiscounts `json:"frequencyDiscounts"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

// OpenDayResponse один день в выборе дат
type OpenDayResponse struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	IsOpen  bool   `json:"isOpen"`
}

// Вспомогательные функции конвертации

// FromDomainCleaner конвертирует доменную модель в DTO
func FromDomainCleaner(c *domain.Cleaner) *CleanerResponse {
	if c == nil {
		return nil
	}

	blocked := make([]string, len(c.BlockedDates))
	for i, d := range c.BlockedDates {
		blocked[i] = d.String()
	}

	return &CleanerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		MessengerUsername:  c.MessengerUsername,
		Availability:       c.Availability,
		BlockedDates:       blocked,
		Pricing:            c.Pricing,
		FrequencyDiscounts: c.Discounts(),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// FromDomainCleanerList никогда не возвращает nil
func FromDomainCleanerList(list []*domain.Cleaner) []CleanerResponse {
	resp := make([]CleanerResponse, 0, len(list))
	for _, c := range list {
		if r := FromDomainCleaner(c); r != nil {
			resp = append(resp, *r)
		}
	}
	return resp
}

// FromScheduleDay конвертирует день для выбора дат
func FromScheduleDay(d schedule.Day) OpenDayResponse {
	return OpenDayResponse{
		Date:    d.Date.String(),
		Weekday: d.WeekdayLabel,
		IsOpen:  d.IsOpen,
	}
}
