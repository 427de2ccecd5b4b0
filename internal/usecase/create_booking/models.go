package create_booking

import "time"

// Request заявка на бронирование; даты строками YYYY-MM-DD как пришли
type Request struct {
	CleanerID       string `validate:"required,max=128"`
	CustomerName    string `validate:"required,max=120"`
	CustomerPhone   string `validate:"required,max=40"`
	CustomerAddress string `validate:"required,max=300"`
	HasPets         bool
	Bedrooms        int
	Bathrooms       int
	ServiceType     string `validate:"omitempty,oneof=regular deep move"`
	Frequency       string `validate:"required,oneof=one_time weekly biweekly monthly"`
	Date            string `validate:"required"`
	TimeBlock       string `validate:"required,oneof=morning afternoon"`
}

// Response созданное бронирование
type Response struct {
	ID              string
	CleanerID       string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	HasPets         bool
	Bedrooms        int
	Bathrooms       int
	ServiceType     string
	Frequency       string
	Date            string
	TimeBlock       string
	StartTime       string
	EndTime         string
	TotalPrice      float64
	Status          string
	CreatedAt       time.Time
}
