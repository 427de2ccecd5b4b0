package get_availability

import getAvailability "github.com/m04kA/CleanClick-BookingService/internal/usecase/get_availability"

// AvailabilityResponse HTTP модель ответа
type AvailabilityResponse struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Morning:   resp.Morning,
		Afternoon: resp.Afternoon,
	}
}
