package update_cleaner

import (
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// UpdateCleanerRequest HTTP модель запроса; отсутствующие поля не меняются
type UpdateCleanerRequest struct {
	Phone              *string                    `json:"phone,omitempty" validate:"omitempty,max=40"`
	MessengerUsername  *string                    `json:"messengerUsername,omitempty" validate:"omitempty,max=64"`
	Availability       domain.WeeklyAvailability  `json:"availability,omitempty" validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
	BlockedDates       *[]string                  `json:"blockedDates,omitempty" validate:"omitempty,max=366"`
	Pricing            *domain.Pricing            `json:"pricing,omitempty"`
	FrequencyDiscounts *domain.FrequencyDiscounts `json:"frequencyDiscounts,omitempty"`
}

// Validate проверяет формат полей; диапазоны значений проверяет сервис
func (r *UpdateCleanerRequest) Validate() error {
	return validate.Struct(r)
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCleanerRequest) ToServiceRequest(callerID string) *models.UpdateCleanerRequest {
	return &models.UpdateCleanerRequest{
		CallerID:           callerID,
		Phone:              r.Phone,
		MessengerUsername:  r.MessengerUsername,
		Availability:       r.Availability,
		BlockedDates:       r.BlockedDates,
		Pricing:            r.Pricing,
		FrequencyDiscounts: r.FrequencyDiscounts,
	}
}
