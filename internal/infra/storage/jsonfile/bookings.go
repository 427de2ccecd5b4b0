package jsonfile

import (
	"context"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// Bookings отдает методы бронирований хранилища под именами репозитория бронирований
type Bookings struct {
	store *Store
}

func (s *Store) Bookings() *Bookings {
	return &Bookings{store: s}
}

func (b *Bookings) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return b.store.CreateBooking(ctx, booking)
}

func (b *Bookings) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return b.store.GetBookingByID(ctx, id)
}

func (b *Bookings) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return b.store.GetBookingsByFilter(ctx, filter)
}

func (b *Bookings) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return b.store.UpdateBookingStatus(ctx, id, status)
}
