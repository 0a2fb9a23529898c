package domain

import (
	"time"

	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// SlotAvailability represents the capacity state of a (date, time) slot
type SlotAvailability struct {
	Date            time.Time
	Time            types.TimeString
	Capacity        int // Конфигурируемая вместимость слота
	ExistingGuests  int // Сумма гостей по активным броням слота
	AvailableSpots  int // Capacity - ExistingGuests; может быть <= 0
	RequestedGuests int // Запрошенное число гостей (эхо для клиента)
}

// Available returns true if the requested party still fits into the slot
func (s *SlotAvailability) Available() bool {
	return s.ExistingGuests+s.RequestedGuests <= s.Capacity
}

// IsFull returns true if the slot has no free spots left
func (s *SlotAvailability) IsFull() bool {
	return s.AvailableSpots <= 0
}
