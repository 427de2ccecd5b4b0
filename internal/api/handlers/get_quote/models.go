package get_quote

import getQuote "github.com/m04kA/CleanClick-BookingService/internal/usecase/get_quote"

// QuoteResponse HTTP модель ответа
type QuoteResponse struct {
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discountPercent"`
	TotalPrice      float64 `json:"totalPrice"`
}

func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:        resp.Subtotal,
		DiscountPercent: resp.DiscountPercent,
		TotalPrice:      resp.TotalPrice,
	}
}
