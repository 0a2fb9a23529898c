package domain

import (
	"time"

	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// WeekSchedule список допустимых меток слотов по дням недели.
// Пустой список означает, что ресторан закрыт в этот день.
type WeekSchedule struct {
	Monday    []types.TimeString
	Tuesday   []types.TimeString
	Wednesday []types.TimeString
	Thursday  []types.TimeString
	Friday    []types.TimeString
	Saturday  []types.TimeString
	Sunday    []types.TimeString
}

// SlotsFor возвращает метки слотов для дня недели указанной даты
func (s *WeekSchedule) SlotsFor(date time.Time) []types.TimeString {
	switch date.Weekday() {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return nil
	}
}

// HasSlot проверяет, что метка времени входит в расписание для указанной даты.
// Сравнение по точному совпадению метки, без интервалов.
func (s *WeekSchedule) HasSlot(date time.Time, slot types.TimeString) bool {
	for _, t := range s.SlotsFor(date) {
		if t == slot {
			return true
		}
	}
	return false
}
