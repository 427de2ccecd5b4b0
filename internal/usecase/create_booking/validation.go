package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest проверяет обязательные поля и значения перечислений.
// Размер дома проверяется после загрузки клинера в validateRooms.
func validateRequest(req *Request) error {
	req.CleanerID = strings.TrimSpace(req.CleanerID)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.CustomerAddress = strings.TrimSpace(req.CustomerAddress)

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed on %s", ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateRooms проверяет, что спальни и ванные в диапазоне [1,5]
func validateRooms(bedrooms, bathrooms int) error {
	if bedrooms < domain.MinRooms || bedrooms > domain.MaxRooms {
		return fmt.Errorf("%w: bedrooms must be between %d and %d", ErrInvalidInput, domain.MinRooms, domain.MaxRooms)
	}
	if bathrooms < domain.MinRooms || bathrooms > domain.MaxRooms {
		return fmt.Errorf("%w: bathrooms must be between %d and %d", ErrInvalidInput, domain.MinRooms, domain.MaxRooms)
	}
	return nil
}
