package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

func flatTableCleaner() *domain.Cleaner {
	c := domain.NewCleaner("c-1", "Maria", "m@example.com", time.Now())
	c.Pricing = domain.Pricing{Strategy: domain.FlatTable{"2-1": 120, "3-2": 165, "3-2-deep": 215}}
	return c
}

func TestPrice_FlatTableWithDiscounts(t *testing.T) {
	c := flatTableCleaner()

	cases := []struct {
		frequency domain.Frequency
		want      float64
	}{
		{domain.FrequencyOneTime, 120},
		{domain.FrequencyWeekly, 102},
		{domain.FrequencyBiweekly, 108},
		{domain.FrequencyMonthly, 114},
	}
	for _, tc := range cases {
		got, err := Price(c, 2, 1, tc.frequency, domain.ServiceRegular)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.frequency)
	}
}

func TestPrice_FlatTableMiss(t *testing.T) {
	_, err := Price(flatTableCleaner(), 3, 5, domain.FrequencyOneTime, domain.ServiceRegular)
	assert.ErrorIs(t, err, ErrNotPriced)
}

func TestPrice_ServiceSuffixedKey(t *testing.T) {
	got, err := Price(flatTableCleaner(), 3, 2, domain.FrequencyOneTime, domain.ServiceDeep)
	require.NoError(t, err)
	assert.Equal(t, 215.0, got)

	got, err = Price(flatTableCleaner(), 3, 2, domain.FrequencyOneTime, domain.ServiceMove)
	require.NoError(t, err)
	assert.Equal(t, 165.0, got)
}

func TestCompute_FormulaRounding(t *testing.T) {
	c := domain.NewCleaner("c-1", "Maria", "m@example.com", time.Now())
	c.Pricing = domain.Pricing{Strategy: domain.FormulaPricing{Base: 99.99, ExtraPerBedroom: 10, ExtraPerBathroom: 5}}
	c.FrequencyDiscounts = &domain.FrequencyDiscounts{Weekly: 12.5}

	q, err := Compute(c, 2, 1, domain.FrequencyWeekly, "")
	require.NoError(t, err)
	assert.Equal(t, 109.99, q.Subtotal)
	assert.Equal(t, 12.5, q.DiscountPercent)
	// 109.99 * 0.875 = 96.24125
	assert.Equal(t, 96.24, q.Total)
}

func TestPrice_Idempotent(t *testing.T) {
	c := domain.NewCleaner("c-1", "Maria", "m@example.com", time.Now())
	first, err := Price(c, 4, 3, domain.FrequencyBiweekly, domain.ServiceMove)
	require.NoError(t, err)
	second, err := Price(c, 4, 3, domain.FrequencyBiweekly, domain.ServiceMove)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// (90 + 60 + 30 + 80) * 0.9
	assert.Equal(t, 234.0, first)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 0.13, RoundCents(0.125))
	assert.Equal(t, 10.0, RoundCents(9.999))
	assert.Equal(t, 2.5, RoundCents(2.5))
}
