package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CalendarDate дата пролептического григорианского календаря без таймзоны.
// День недели и арифметика дней не зависят от time.Location.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate разбирает строку строго в формате YYYY-MM-DD
func ParseDate(s string) (CalendarDate, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	year, ok1 := atoi(s[0:4])
	month, ok2 := atoi(s[5:7])
	day, ok3 := atoi(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return CalendarDate{}, fmt.Errorf("%w: %q out of range", ErrInvalidDate, s)
	}

	return CalendarDate{Year: year, Month: time.Month(month), Day: day}, nil
}

// MustParseDate это ParseDate для литералов; паникует при ошибке
func MustParseDate(s string) CalendarDate {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf возвращает календарную дату t в его собственной таймзоне
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Weekday использует алгоритм Сакамото для дня недели
func (d CalendarDate) Weekday() time.Weekday {
	offsets := [...]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := d.Year
	if d.Month < time.March {
		y--
	}
	return time.Weekday((y + y/4 - y/100 + y/400 + offsets[d.Month-1] + d.Day) % 7)
}

// AddDays возвращает дату через n дней (n может быть отрицательным)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return fromDays(d.days() + n)
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.days() < other.days()
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.days() > other.days()
}

// At возвращает момент начала этой даты в loc
func (d CalendarDate) At(clock ClockTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, clock.Hour, clock.Minute, 0, 0, loc)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value сохраняет дату как литерал YYYY-MM-DD
func (d CalendarDate) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan принимает колонки DATE (time.Time из lib/pq) и текст
func (d *CalendarDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDate, src)
	}
}

// days считает дни с 1970-01-01 (days_from_civil Говарда Хиннанта)
func (d CalendarDate) days() int {
	y := d.Year
	m := int(d.Month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func fromDays(z int) CalendarDate {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if month > 12 {
		month -= 12
	}
	if month <= 2 {
		y++
	}
	return CalendarDate{Year: y, Month: time.Month(month), Day: day}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func atoi(s string) (int, bool) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// WeekdayName английское название дня недели в нижнем регистре, ключ в availability
func WeekdayName(w time.Weekday) string {
	return weekdayNames[w]
}

var weekdayNames = [...]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}
