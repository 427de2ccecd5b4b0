package domain

import "fmt"

// TimeBlock бронируемое окно на полдня
type TimeBlock string

const (
	TimeBlockMorning   TimeBlock = "morning"
	TimeBlockAfternoon TimeBlock = "afternoon"
)

// TimeBlocks в хронологическом порядке
var TimeBlocks = []TimeBlock{TimeBlockMorning, TimeBlockAfternoon}

// ClockTime время суток без даты
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// BlockWindow начало и конец блока
type BlockWindow struct {
	Start ClockTime
	End   ClockTime
}

var blockWindows = map[TimeBlock]BlockWindow{
	TimeBlockMorning:   {Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 13}},
	TimeBlockAfternoon: {Start: ClockTime{Hour: 13, Minute: 30}, End: ClockTime{Hour: 18}},
}

func (b TimeBlock) IsValid() bool {
	_, ok := blockWindows[b]
	return ok
}

// Window возвращает фиксированное окно блока; false для неизвестных блоков
func (b TimeBlock) Window() (BlockWindow, bool) {
	w, ok := blockWindows[b]
	return w, ok
}

// BlockAvailability доступность обоих блоков на одну дату
type BlockAvailability struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
}

func (a BlockAvailability) Get(block TimeBlock) bool {
	switch block {
	case TimeBlockMorning:
		return a.Morning
	case TimeBlockAfternoon:
		return a.Afternoon
	default:
		return false
	}
}

func (a *BlockAvailability) Set(block TimeBlock, v bool) {
	switch block {
	case TimeBlockMorning:
		a.Morning = v
	case TimeBlockAfternoon:
		a.Afternoon = v
	}
}
