package domain

// Константы форматов
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Ограничения размера дома. 5 отображается как "5+" и считается как 5.
const (
	MinRooms = 1
	MaxRooms = 5
)

// CutoffBufferMinutes минимальный запас до конца блока для бронирования на сегодня
const CutoffBufferMinutes = 30

// Ограничения полей клиента
const (
	MaxCustomerNameLength    = 120
	MaxCustomerPhoneLength   = 40
	MaxCustomerAddressLength = 300
)

// Ограничения выбора дат
const (
	DefaultOpenDaysCount = 14
	MaxOpenDaysCount     = 60
)

// DefaultCleanerName используется, если у identity провайдера нет имени
const DefaultCleanerName = "New Cleaner"
