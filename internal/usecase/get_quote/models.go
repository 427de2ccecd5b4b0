package get_quote

// Request параметры расчета цены
type Request struct {
	CleanerID   string
	Bedrooms    int
	Bathrooms   int
	Frequency   string // пустое значение означает one_time
	ServiceType string // пустое значение означает regular
}

// Response детализация цены, те же числа, с которыми сохранится бронирование
type Response struct {
	Subtotal        float64
	DiscountPercent float64
	TotalPrice      float64
}
