package get_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
	"github.com/m04kA/CleanClick-BookingService/pkg/logger"
)

type fakeCleaners map[string]*domain.Cleaner

func (f fakeCleaners) GetByID(_ context.Context, id string) (*domain.Cleaner, error) {
	c, ok := f[id]
	if !ok {
		return nil, cleanerRepo.ErrCleanerNotFound
	}
	return c, nil
}

func newUseCase() *UseCase {
	formula := domain.NewCleaner("formula", "F", "f@example.com", time.Now())
	table := domain.NewCleaner("table", "T", "t@example.com", time.Now())
	table.Pricing = domain.Pricing{Strategy: domain.FlatTable{"2-2": 100}}

	return NewUseCase(fakeCleaners{"formula": formula, "table": table}, logger.NewNop())
}

func TestExecute_Formula(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		CleanerID:   "formula",
		Bedrooms:    3,
		Bathrooms:   2,
		Frequency:   "monthly",
		ServiceType: "deep",
	})
	require.NoError(t, err)
	// 90 + 2*20 + 15 + 50 = 195, минус 5%
	assert.Equal(t, &Response{Subtotal: 195, DiscountPercent: 5, TotalPrice: 185.25}, resp)
}

func TestExecute_DefaultsToOneTimeRegular(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{CleanerID: "table", Bedrooms: 2, Bathrooms: 2})
	require.NoError(t, err)
	assert.Equal(t, &Response{Subtotal: 100, DiscountPercent: 0, TotalPrice: 100}, resp)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{CleanerID: "table", Bedrooms: 3, Bathrooms: 5})
	assert.ErrorIs(t, err, ErrNotPriced)

	_, err = uc.Execute(ctx, &Request{CleanerID: "ghost", Bedrooms: 1, Bathrooms: 1})
	assert.ErrorIs(t, err, ErrCleanerNotFound)

	_, err = uc.Execute(ctx, &Request{CleanerID: "table", Bedrooms: 0, Bathrooms: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CleanerID: "table", Bedrooms: 1, Bathrooms: 1, Frequency: "daily"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
