// Package schedule отвечает, работает ли клинер в данную дату и блок,
// по недельному шаблону и разовым заблокированным датам.
package schedule

import (
	"iter"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// Day один день в выборе дат
type Day struct {
	Date         domain.CalendarDate
	WeekdayLabel string
	IsOpen       bool
}

// IsOpen сообщает, работает ли клинер в этот блок в эту дату.
// Заблокированные даты закрывают все блоки; неизвестные блоки закрыты.
func IsOpen(cleaner *domain.Cleaner, date domain.CalendarDate, block domain.TimeBlock) bool {
	if cleaner.IsBlocked(date) {
		return false
	}
	return cleaner.Availability.For(date.Weekday()).Block(block)
}

// IsDayOpen день открыт, если открыт хотя бы один его блок
func IsDayOpen(cleaner *domain.Cleaner, date domain.CalendarDate) bool {
	for _, block := range domain.TimeBlocks {
		if IsOpen(cleaner, date, block) {
			return true
		}
	}
	return false
}

// NextOpenDays выдает count дат подряд, начиная с from.
// Последовательность перезапускаемая: каждый range начинается заново с from.
func NextOpenDays(cleaner *domain.Cleaner, from domain.CalendarDate, count int) iter.Seq[Day] {
	return func(yield func(Day) bool) {
		for i := 0; i < count; i++ {
			date := from.AddDays(i)
			day := Day{
				Date:         date,
				WeekdayLabel: domain.WeekdayName(date.Weekday()),
				IsOpen:       IsDayOpen(cleaner, date),
			}
			if !yield(day) {
				return
			}
		}
	}
}
