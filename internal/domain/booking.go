package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Frequency как часто повторяется уборка
type Frequency string

const (
	FrequencyOneTime  Frequency = "one_time"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOneTime, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// ServiceType тип уборки; пустое значение означает regular
type ServiceType string

const (
	ServiceRegular ServiceType = "regular"
	ServiceDeep    ServiceType = "deep"
	ServiceMove    ServiceType = "move"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceRegular, ServiceDeep, ServiceMove:
		return true
	}
	return false
}

// OrDefault возвращает regular для пустого типа услуги
func (s ServiceType) OrDefault() ServiceType {
	if s == "" {
		return ServiceRegular
	}
	return s
}

// Booking бронирование клиентом одного блока времени
type Booking struct {
	ID              string        `json:"id"`
	CleanerID       string        `json:"cleanerId"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	HasPets         bool          `json:"hasPets"`
	Bedrooms        int           `json:"bedrooms"`
	Bathrooms       int           `json:"bathrooms"`
	ServiceType     ServiceType   `json:"serviceType"`
	Frequency       Frequency     `json:"frequency"`
	Date            CalendarDate  `json:"date"`
	TimeBlock       TimeBlock     `json:"timeBlock"`
	StartTime       string        `json:"startTime"`
	EndTime         string        `json:"endTime"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// IsActive возвращает true, если бронирование не отменено
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter запрос бронирований одного клинера
type BookingsFilter struct {
	CleanerID        string        // Обязательные
	Date             *CalendarDate // Опционально, nil означает любую дату
	TimeBlock        *TimeBlock    // Опциональные
	IncludeCancelled bool
}

// Matches сообщает, проходит ли b фильтр
func (f BookingsFilter) Matches(b *Booking) bool {
	if b.CleanerID != f.CleanerID {
		return false
	}
	if f.Date != nil && b.Date != *f.Date {
		return false
	}
	if f.TimeBlock != nil && b.TimeBlock != *f.TimeBlock {
		return false
	}
	return f.IncludeCancelled || b.IsActive()
}
