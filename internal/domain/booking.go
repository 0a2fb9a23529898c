package domain

import (
	"time"

	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a table reservation in the system
type Booking struct {
	ID     int64
	Name   string
	Email  string
	Date   time.Time        // Дата брони (без времени)
	Time   types.TimeString // Метка слота, например "19:00"
	Guests int

	SpecialRequests *string // Пожелания гостя (аллергии, повод и т.п.)

	Status      BookingStatus
	ConfirmedAt *time.Time // Момент подтверждения; при отмене НЕ очищается

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the booking is awaiting confirmation
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true if the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CountsTowardCapacity returns true if the booking occupies seats in its slot.
// Отмененные брони навсегда исключаются из подсчета вместимости.
func (b *Booking) CountsTowardCapacity() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки броней (календарь администратора)
type BookingsFilter struct {
	StartDate *time.Time     // Начало периода (опционально)
	EndDate   *time.Time     // Конец периода (опционально)
	Status    *BookingStatus // Фильтр по статусу (опционально)
}
