// Package jsonfile хранилище в одном JSON документе для локальной разработки.
// Один мьютекс сериализует все чтения и записи, поэтому проверка слота и
// вставка бронирования атомарны в пределах процесса.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/booking"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
)

var (
	ErrOpen    = errors.New("jsonfile: failed to open store")
	ErrPersist = errors.New("jsonfile: failed to persist store")
)

type document struct {
	Cleaners []*domain.Cleaner `json:"cleaners"`
	Bookings []*domain.Booking `json:"bookings"`
}

type lockKey struct{}

// Store реализует репозитории клинеров и бронирований и менеджер транзакций
type Store struct {
	mu   sync.Mutex
	path string
	data *document
	now  func() time.Time
}

// Open загружает path, создавая его с сид-документом при отсутствии
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.data = seedDocument(s.now())
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	for _, c := range doc.Cleaners {
		c.Normalize()
	}
	if doc.Bookings == nil {
		doc.Bookings = []*domain.Booking{}
	}
	s.data = &doc

	return s, nil
}

// Do выполняет fn под блокировкой хранилища; при ошибке изменения в памяти отбрасываются,
// при успехе они один раз записываются на диск
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if holdsLock(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	if err := fn(context.WithValue(ctx, lockKey{}, s)); err != nil {
		s.data = snapshot
		return err
	}

	if err := s.persist(); err != nil {
		s.data = snapshot
		return err
	}

	return nil
}

// ============================================================
// Клинеры
// ============================================================

func (s *Store) GetByID(ctx context.Context, id string) (*domain.Cleaner, error) {
	var out *domain.Cleaner
	err := s.read(ctx, func() error {
		idx := s.cleanerIndex(id)
		if idx < 0 {
			return cleanerRepo.ErrCleanerNotFound
		}
		out = cloneCleaner(s.data.Cleaners[idx])
		return nil
	})
	return out, err
}

func (s *Store) List(ctx context.Context) ([]*domain.Cleaner, error) {
	var out []*domain.Cleaner
	err := s.read(ctx, func() error {
		out = make([]*domain.Cleaner, 0, len(s.data.Cleaners))
		for _, c := range s.data.Cleaners {
			out = append(out, cloneCleaner(c))
		}
		return nil
	})
	return out, err
}

// Create сохраняет клинера; если клинер с таким id уже есть, возвращается он
func (s *Store) Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error) {
	var out *domain.Cleaner
	err := s.write(ctx, func() error {
		if idx := s.cleanerIndex(cleaner.ID); idx >= 0 {
			out = cloneCleaner(s.data.Cleaners[idx])
			return nil
		}
		stored := cloneCleaner(cleaner)
		stored.Normalize()
		s.data.Cleaners = append(s.data.Cleaners, stored)
		out = cloneCleaner(stored)
		return nil
	})
	return out, err
}

func (s *Store) Update(ctx context.Context, cleaner *domain.Cleaner) error {
	return s.write(ctx, func() error {
		idx := s.cleanerIndex(cleaner.ID)
		if idx < 0 {
			return cleanerRepo.ErrCleanerNotFound
		}
		stored := cloneCleaner(cleaner)
		stored.Normalize()
		s.data.Cleaners[idx] = stored
		return nil
	})
}

// ============================================================
// Бронирования
// ============================================================

// CreateBooking добавляет бронирование, если слот не занят активным бронированием
func (s *Store) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.write(ctx, func() error {
		for _, b := range s.data.Bookings {
			if b.CleanerID == booking.CleanerID && b.Date == booking.Date && b.TimeBlock == booking.TimeBlock && b.IsActive() {
				return fmt.Errorf("%w: CreateBooking - cleaner=%s date=%s block=%s",
					bookingRepo.ErrSlotTaken, booking.CleanerID, booking.Date, booking.TimeBlock)
			}
		}

		stored := *booking
		if stored.ID == "" {
			stored.ID = uuid.NewString()
		}
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = s.now().UTC()
		}
		s.data.Bookings = append(s.data.Bookings, &stored)

		created := stored
		out = &created
		return nil
	})
	return out, err
}

func (s *Store) GetBookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.read(ctx, func() error {
		idx := s.bookingIndex(id)
		if idx < 0 {
			return bookingRepo.ErrBookingNotFound
		}
		b := *s.data.Bookings[idx]
		out = &b
		return nil
	})
	return out, err
}

// GetBookingsByFilter подходящие бронирования по дате, началу блока и времени создания
func (s *Store) GetBookingsByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	err := s.read(ctx, func() error {
		out = make([]*domain.Booking, 0)
		for _, b := range s.data.Bookings {
			if filter.Matches(b) {
				c := *b
				out = append(out, &c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b *domain.Booking) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		case a.StartTime != b.StartTime:
			if a.StartTime < b.StartTime {
				return -1
			}
			return 1
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	})

	return out, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return s.write(ctx, func() error {
		idx := s.bookingIndex(id)
		if idx < 0 {
			return bookingRepo.ErrBookingNotFound
		}

		current := s.data.Bookings[idx]
		if status != domain.StatusCancelled && !current.IsActive() {
			for _, b := range s.data.Bookings {
				if b.ID != id && b.CleanerID == current.CleanerID && b.Date == current.Date && b.TimeBlock == current.TimeBlock && b.IsActive() {
					return fmt.Errorf("%w: UpdateBookingStatus - id=%s", bookingRepo.ErrSlotTaken, id)
				}
			}
		}

		updated := *current
		updated.Status = status
		s.data.Bookings[idx] = &updated
		return nil
	})
}

// ============================================================
// внутреннее
// ============================================================

func holdsLock(ctx context.Context) bool {
	_, ok := ctx.Value(lockKey{}).(*Store)
	return ok
}

func (s *Store) read(ctx context.Context, fn func() error) error {
	if holdsLock(ctx) {
		return fn()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// write применяет fn; вне Do изменение сразу сохраняется на диск
func (s *Store) write(ctx context.Context, fn func() error) error {
	if holdsLock(ctx) {
		return fn()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	if err := fn(); err != nil {
		s.data = snapshot
		return err
	}
	if err := s.persist(); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// snapshot записи не изменяются на месте, поэтому достаточно скопировать слайсы
func (s *Store) snapshot() *document {
	return &document{
		Cleaners: slices.Clone(s.data.Cleaners),
		Bookings: slices.Clone(s.data.Bookings),
	}
}

// persist пишет во временный файл в той же директории и переименовывает его в path
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return nil
}

func (s *Store) cleanerIndex(id string) int {
	return slices.IndexFunc(s.data.Cleaners, func(c *domain.Cleaner) bool { return c.ID == id })
}

func (s *Store) bookingIndex(id string) int {
	return slices.IndexFunc(s.data.Bookings, func(b *domain.Booking) bool { return b.ID == id })
}

func cloneCleaner(c *domain.Cleaner) *domain.Cleaner {
	out := *c
	if c.Availability != nil {
		out.Availability = make(domain.WeeklyAvailability, len(c.Availability))
		for k, v := range c.Availability {
			out.Availability[k] = v
		}
	}
	out.BlockedDates = slices.Clone(c.BlockedDates)
	if c.FrequencyDiscounts != nil {
		discounts := *c.FrequencyDiscounts
		out.FrequencyDiscounts = &discounts
	}
	if table, ok := c.Pricing.Strategy.(domain.FlatTable); ok {
		cloned := make(domain.FlatTable, len(table))
		for k, v := range table {
			cloned[k] = v
		}
		out.Pricing.Strategy = cloned
	}
	return &out
}
