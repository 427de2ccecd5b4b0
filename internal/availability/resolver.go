// Package availability вычисляет актуальную доступность даты клинера
// по расписанию, существующим бронированиям и отсечке текущего дня.
package availability

import (
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	"github.com/m04kA/CleanClick-BookingService/internal/schedule"
)

// CutoffBuffer минимальный запас до конца блока
const CutoffBuffer = domain.CutoffBufferMinutes * time.Minute

// Resolve возвращает, какие блоки даты еще можно забронировать.
// bookings должны относиться к клинеру и дате; отмененные игнорируются.
// "Сегодня" это календарная дата now в его таймзоне.
func Resolve(cleaner *domain.Cleaner, date domain.CalendarDate, bookings []*domain.Booking, now time.Time) domain.BlockAvailability {
	var result domain.BlockAvailability
	for _, block := range domain.TimeBlocks {
		result.Set(block, IsBlockAvailable(cleaner, date, block, bookings, now))
	}
	return result
}

// IsBlockAvailable Resolve для одного блока
func IsBlockAvailable(cleaner *domain.Cleaner, date domain.CalendarDate, block domain.TimeBlock, bookings []*domain.Booking, now time.Time) bool {
	return schedule.IsOpen(cleaner, date, block) &&
		!isTaken(bookings, date, block) &&
		!IsPastCutoff(date, block, now)
}

// IsPastCutoff true, если дата сегодня и now+30m достигло конца блока.
// Для остальных дат, включая прошедшие, отсечка не действует.
func IsPastCutoff(date domain.CalendarDate, block domain.TimeBlock, now time.Time) bool {
	if date != domain.DateOf(now) {
		return false
	}

	window, ok := block.Window()
	if !ok {
		return true
	}

	cutoff := date.At(window.End, now.Location())
	return !now.Add(CutoffBuffer).Before(cutoff)
}

func isTaken(bookings []*domain.Booking, date domain.CalendarDate, block domain.TimeBlock) bool {
	for _, b := range bookings {
		if b.TimeBlock == block && b.Date == date && b.IsActive() {
			return true
		}
	}
	return false
}
