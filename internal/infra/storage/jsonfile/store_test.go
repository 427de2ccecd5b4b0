package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/booking"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "db.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func newBooking(date string, block domain.TimeBlock) *domain.Booking {
	return &domain.Booking{
		CleanerID:       SeedCleanerID,
		CustomerName:    "Ann",
		CustomerPhone:   "555-0100",
		CustomerAddress: "1 Main St",
		Bedrooms:        2,
		Bathrooms:       1,
		ServiceType:     domain.ServiceRegular,
		Frequency:       domain.FrequencyOneTime,
		Date:            domain.MustParseDate(date),
		TimeBlock:       block,
		StartTime:       "09:00",
		EndTime:         "13:00",
		TotalPrice:      95,
		Status:          domain.StatusConfirmed,
	}
}

func TestOpen_DefaultsMissingDiscounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	doc := `{
		"cleaners": [
			{"id": "c1", "name": "Ana", "email": "ana@example.com",
			 "pricing": {"kind": "formula", "formula": {"base": 100, "extraPerBedroom": 20, "extraPerBathroom": 10}}},
			{"id": "c2", "name": "Bea", "email": "bea@example.com",
			 "frequencyDiscounts": {"weekly": 0, "biweekly": 0, "monthly": 0}}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	ctx := context.Background()

	c1, err := s.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, c1.FrequencyDiscounts)
	assert.Equal(t, domain.DefaultFrequencyDiscounts(), *c1.FrequencyDiscounts)
	assert.Equal(t, 5.0, c1.Discounts().Percent(domain.FrequencyMonthly))

	c2, err := s.GetByID(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyDiscounts{}, c2.Discounts())
}

func TestOpen_SeedsMissingFile(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()

	_, err := os.Stat(path)
	require.NoError(t, err)

	c, err := s.GetByID(ctx, SeedCleanerID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", c.Name)
	assert.Equal(t, domain.PricingKindFlatTable, c.Pricing.Strategy.Kind())
	assert.Len(t, c.Pricing.Strategy.(domain.FlatTable), 25)

	_, err = s.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, cleanerRepo.ErrCleanerNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()

	created, err := s.Bookings().Create(ctx, newBooking("2030-01-07", domain.TimeBlockMorning))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	c, err := s.GetByID(ctx, SeedCleanerID)
	require.NoError(t, err)
	c.Phone = "555-0199"
	require.NoError(t, s.Update(ctx, c))

	reopened, err := Open(path)
	require.NoError(t, err)

	got, err := reopened.Bookings().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-07", got.Date.String())

	c, err = reopened.GetByID(ctx, SeedCleanerID)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", c.Phone)
	assert.Equal(t, domain.PricingKindFlatTable, c.Pricing.Strategy.Kind())
}

func TestCreateBooking_RejectsTakenSlot(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	repo := s.Bookings()

	first, err := repo.Create(ctx, newBooking("2030-01-07", domain.TimeBlockMorning))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking("2030-01-07", domain.TimeBlockMorning))
	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)

	_, err = repo.Create(ctx, newBooking("2030-01-07", domain.TimeBlockAfternoon))
	require.NoError(t, err)

	// отмена освобождает слот
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, domain.StatusCancelled))
	_, err = repo.Create(ctx, newBooking("2030-01-07", domain.TimeBlockMorning))
	require.NoError(t, err)

	all, err := repo.GetByFilter(ctx, domain.BookingsFilter{CleanerID: SeedCleanerID, IncludeCancelled: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.GetByFilter(ctx, domain.BookingsFilter{CleanerID: SeedCleanerID})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestCreateBooking_ConcurrentSameSlot(t *testing.T) {
	s, _ := openTemp(t)
	repo := s.Bookings()

	var wins, conflicts atomic.Int32
	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := repo.Create(context.Background(), newBooking("2030-01-08", domain.TimeBlockAfternoon))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(19), conflicts.Load())
}

func TestDo_RollsBackOnError(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()
	sentinel := errors.New("abort")

	err := s.Do(ctx, func(ctx context.Context) error {
		if _, err := s.Bookings().Create(ctx, newBooking("2030-01-09", domain.TimeBlockMorning)); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	bookings, err := s.Bookings().GetByFilter(ctx, domain.BookingsFilter{CleanerID: SeedCleanerID, IncludeCancelled: true})
	require.NoError(t, err)
	assert.Empty(t, bookings)

	reopened, err := Open(path)
	require.NoError(t, err)
	bookings, err = reopened.Bookings().GetByFilter(ctx, domain.BookingsFilter{CleanerID: SeedCleanerID, IncludeCancelled: true})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCreateCleaner_ExistingWins(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()

	got, err := s.Create(ctx, domain.NewCleaner(SeedCleanerID, "Impostor", "x@example.com", s.now()))
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", got.Name)

	got, err = s.Create(ctx, domain.NewCleaner("cleaner-2", "", "new@example.com", s.now()))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCleanerName, got.Name)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetByFilter_SortedByDate(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	repo := s.Bookings()

	for _, d := range []string{"2030-03-01", "2030-01-15", "2030-02-10"} {
		_, err := repo.Create(ctx, newBooking(d, domain.TimeBlockMorning))
		require.NoError(t, err)
	}

	got, err := repo.GetByFilter(ctx, domain.BookingsFilter{CleanerID: SeedCleanerID})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2030-01-15", got[0].Date.String())
	assert.Equal(t, "2030-02-10", got[1].Date.String())
	assert.Equal(t, "2030-03-01", got[2].Date.String())
}
