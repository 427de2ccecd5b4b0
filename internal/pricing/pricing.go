package pricing

import (
	"math"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// ErrNotPriced в таблице клинера нет тарифа для такого дома
var ErrNotPriced = domain.ErrNotPriced

// Quote детализация цены одной уборки
type Quote struct {
	Subtotal        float64
	DiscountPercent float64
	Total           float64
}

// Price считает итоговую цену уборки со скидкой.
// Спальни и ванные уже должны быть в [domain.MinRooms, domain.MaxRooms].
func Price(cleaner *domain.Cleaner, bedrooms, bathrooms int, frequency domain.Frequency, service domain.ServiceType) (float64, error) {
	q, err := Compute(cleaner, bedrooms, bathrooms, frequency, service)
	if err != nil {
		return 0, err
	}
	return q.Total, nil
}

// Compute это Price с промежуточными значениями
func Compute(cleaner *domain.Cleaner, bedrooms, bathrooms int, frequency domain.Frequency, service domain.ServiceType) (Quote, error) {
	strategy := cleaner.Pricing.Strategy
	if strategy == nil {
		strategy = domain.DefaultFormulaPricing()
	}

	subtotal, err := strategy.Subtotal(bedrooms, bathrooms, service)
	if err != nil {
		return Quote{}, err
	}

	pct := cleaner.Discounts().Percent(frequency)

	return Quote{
		Subtotal:        RoundCents(subtotal),
		DiscountPercent: pct,
		Total:           RoundCents(subtotal * (1 - pct/100)),
	}, nil
}

// RoundCents округляет до двух знаков, половину от нуля
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
