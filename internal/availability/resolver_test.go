package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

func newCleaner() *domain.Cleaner {
	return domain.NewCleaner("c-1", "Maria", "m@example.com", time.Now())
}

func booking(date string, block domain.TimeBlock, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		CleanerID: "c-1",
		Date:      domain.MustParseDate(date),
		TimeBlock: block,
		Status:    status,
	}
}

func TestResolve_FutureOpenDay(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	got := Resolve(newCleaner(), domain.MustParseDate("2024-01-08"), nil, now)
	assert.Equal(t, domain.BlockAvailability{Morning: true, Afternoon: true}, got)
}

func TestResolve_SaturdayTemplate(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	got := Resolve(newCleaner(), domain.MustParseDate("2024-01-06"), nil, now)
	assert.Equal(t, domain.BlockAvailability{Morning: true, Afternoon: false}, got)
}

func TestResolve_BookedBlock(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	date := "2024-01-08"
	bookings := []*domain.Booking{
		booking(date, domain.TimeBlockMorning, domain.StatusConfirmed),
		booking(date, domain.TimeBlockAfternoon, domain.StatusCancelled),
	}

	got := Resolve(newCleaner(), domain.MustParseDate(date), bookings, now)
	assert.Equal(t, domain.BlockAvailability{Morning: false, Afternoon: true}, got)
}

func TestResolve_BlockedDate(t *testing.T) {
	c := newCleaner()
	date := domain.MustParseDate("2024-01-08")
	c.BlockedDates = []domain.CalendarDate{date}

	got := Resolve(c, date, nil, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, domain.BlockAvailability{}, got)
}

func TestIsPastCutoff_Today(t *testing.T) {
	loc := time.UTC
	today := domain.MustParseDate("2024-01-08")

	cases := []struct {
		name      string
		now       time.Time
		morning   bool
		afternoon bool
	}{
		{"early morning", time.Date(2024, 1, 8, 7, 0, 0, 0, loc), false, false},
		{"just before morning cutoff", time.Date(2024, 1, 8, 12, 29, 0, 0, loc), false, false},
		{"exactly at morning cutoff", time.Date(2024, 1, 8, 12, 30, 0, 0, loc), true, false},
		{"after lunch", time.Date(2024, 1, 8, 14, 0, 0, 0, loc), true, false},
		{"exactly at afternoon cutoff", time.Date(2024, 1, 8, 17, 30, 0, 0, loc), true, true},
		{"evening", time.Date(2024, 1, 8, 20, 0, 0, 0, loc), true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.morning, IsPastCutoff(today, domain.TimeBlockMorning, tc.now))
			assert.Equal(t, tc.afternoon, IsPastCutoff(today, domain.TimeBlockAfternoon, tc.now))
		})
	}
}

func TestIsPastCutoff_OtherDates(t *testing.T) {
	now := time.Date(2024, 1, 8, 20, 0, 0, 0, time.UTC)
	assert.False(t, IsPastCutoff(domain.MustParseDate("2024-01-09"), domain.TimeBlockMorning, now))
	assert.False(t, IsPastCutoff(domain.MustParseDate("2024-01-07"), domain.TimeBlockAfternoon, now))
}

func TestIsPastCutoff_UsesNowLocation(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 2024-01-09 01:00 UTC это 2024-01-08 17:00 в Лос-Анджелесе
	now := time.Date(2024, 1, 9, 1, 0, 0, 0, time.UTC).In(la)
	assert.True(t, IsPastCutoff(domain.MustParseDate("2024-01-08"), domain.TimeBlockMorning, now))
	assert.False(t, IsPastCutoff(domain.MustParseDate("2024-01-08"), domain.TimeBlockAfternoon, now))
	assert.False(t, IsPastCutoff(domain.MustParseDate("2024-01-09"), domain.TimeBlockMorning, now))
}

func TestResolve_TodayAfternoonOnly(t *testing.T) {
	now := time.Date(2024, 1, 8, 13, 0, 0, 0, time.UTC)
	got := Resolve(newCleaner(), domain.MustParseDate("2024-01-08"), nil, now)
	assert.Equal(t, domain.BlockAvailability{Morning: false, Afternoon: true}, got)
}
