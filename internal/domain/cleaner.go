package domain

import (
	"slices"
	"time"
)

// DayAvailability какие блоки открыты в день недели
type DayAvailability struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
}

// Block возвращает, открыт ли блок в этот день недели
func (d DayAvailability) Block(block TimeBlock) bool {
	switch block {
	case TimeBlockMorning:
		return d.Morning
	case TimeBlockAfternoon:
		return d.Afternoon
	default:
		return false
	}
}

// IsOpen день открыт, если открыт хотя бы один блок
func (d DayAvailability) IsOpen() bool {
	return d.Morning || d.Afternoon
}

// WeeklyAvailability недельный шаблон с ключами по названию дня недели в нижнем регистре
type WeeklyAvailability map[string]DayAvailability

// DefaultAvailability Пн-Пт весь день, Сб только утро, Вс выходной
func DefaultAvailability() WeeklyAvailability {
	full := DayAvailability{Morning: true, Afternoon: true}
	return WeeklyAvailability{
		"monday":    full,
		"tuesday":   full,
		"wednesday": full,
		"thursday":  full,
		"friday":    full,
		"saturday":  {Morning: true},
		"sunday":    {},
	}
}

// For возвращает шаблон дня недели, при отсутствии шаблон по умолчанию
func (w WeeklyAvailability) For(day time.Weekday) DayAvailability {
	name := WeekdayName(day)
	if d, ok := w[name]; ok {
		return d
	}
	return DefaultAvailability()[name]
}

// Normalized возвращает копию ровно с семью ключами дней недели
func (w WeeklyAvailability) Normalized() WeeklyAvailability {
	out := make(WeeklyAvailability, len(weekdayNames))
	for day := time.Sunday; day <= time.Saturday; day++ {
		out[WeekdayName(day)] = w.For(day)
	}
	return out
}

// FrequencyDiscounts процент скидки по частоте уборок
type FrequencyDiscounts struct {
	Weekly   float64 `json:"weekly"`
	Biweekly float64 `json:"biweekly"`
	Monthly  float64 `json:"monthly"`
}

// DefaultFrequencyDiscounts 15/10/5 процентов
func DefaultFrequencyDiscounts() FrequencyDiscounts {
	return FrequencyDiscounts{Weekly: 15, Biweekly: 10, Monthly: 5}
}

// Percent скидка для частоты; для разовой и неизвестной частоты 0
func (d FrequencyDiscounts) Percent(f Frequency) float64 {
	switch f {
	case FrequencyWeekly:
		return d.Weekly
	case FrequencyBiweekly:
		return d.Biweekly
	case FrequencyMonthly:
		return d.Monthly
	default:
		return 0
	}
}

// Valid все проценты в диапазоне [0,100]
func (d FrequencyDiscounts) Valid() bool {
	for _, v := range []float64{d.Weekly, d.Biweekly, d.Monthly} {
		if v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// Cleaner исполнитель, чей календарь бронируют
type Cleaner struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone,omitempty"`
	MessengerUsername  string              `json:"messengerUsername,omitempty"`
	Availability       WeeklyAvailability  `json:"availability"`
	BlockedDates       []CalendarDate      `json:"blockedDates"`
	Pricing            Pricing             `json:"pricing"`
	FrequencyDiscounts *FrequencyDiscounts `json:"frequencyDiscounts"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// NewCleaner создает клинера со всеми значениями по умолчанию
func NewCleaner(id, name, email string, now time.Time) *Cleaner {
	c := &Cleaner{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.Normalize()
	return c
}

// Normalize заполняет незаданные поля значениями по умолчанию, неполная запись наружу не попадает
func (c *Cleaner) Normalize() {
	if c.Name == "" {
		c.Name = DefaultCleanerName
	}

	c.Availability = c.Availability.Normalized()
	c.BlockedDates = NormalizeBlockedDates(c.BlockedDates)

	if c.Pricing.Strategy == nil {
		c.Pricing.Strategy = DefaultFormulaPricing()
	}

	if c.FrequencyDiscounts == nil {
		d := DefaultFrequencyDiscounts()
		c.FrequencyDiscounts = &d
	}
}

// Discounts возвращает заданные скидки или значения по умолчанию
func (c *Cleaner) Discounts() FrequencyDiscounts {
	if c.FrequencyDiscounts == nil {
		return DefaultFrequencyDiscounts()
	}
	return *c.FrequencyDiscounts
}

// IsBlocked сообщает, отметил ли клинер дату как недоступную
func (c *Cleaner) IsBlocked(date CalendarDate) bool {
	return slices.Contains(c.BlockedDates, date)
}

// NormalizeBlockedDates сортирует по возрастанию и убирает дубликаты
func NormalizeBlockedDates(dates []CalendarDate) []CalendarDate {
	out := slices.Clone(dates)
	slices.SortFunc(out, func(a, b CalendarDate) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})
	out = slices.Compact(out)
	if out == nil {
		out = []CalendarDate{}
	}
	return out
}
