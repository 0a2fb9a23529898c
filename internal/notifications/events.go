package notifications

import (
	"time"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// Kind тип доменного события брони
type Kind string

const (
	KindBookingCreated   Kind = "booking.created"
	KindBookingConfirmed Kind = "booking.confirmed"
	KindBookingCancelled Kind = "booking.cancelled"
	KindBookingRemoved   Kind = "booking.removed"
)

// Тексты причин по умолчанию — соответствуют письмам сайта
const (
	DefaultCancellationReason = "Your booking has been cancelled by our restaurant staff."
	DefaultRemovalReason      = "Your booking has been removed from our system by our restaurant staff."
)

// Snapshot отсоединенная копия полей брони на момент события.
// Письмо рендерится из снапшота: запись может быть изменена или удалена
// до того, как воркер доставки до нее доберется.
type Snapshot struct {
	ID              int64
	Name            string
	Email           string
	Date            time.Time
	Time            types.TimeString
	Guests          int
	SpecialRequests string
}

// SnapshotOf снимает копию полей брони
func SnapshotOf(b *domain.Booking) Snapshot {
	s := Snapshot{
		ID:     b.ID,
		Name:   b.Name,
		Email:  b.Email,
		Date:   b.Date,
		Time:   b.Time,
		Guests: b.Guests,
	}
	if b.SpecialRequests != nil {
		s.SpecialRequests = *b.SpecialRequests
	}
	return s
}

// Event доменное событие жизненного цикла брони
type Event struct {
	Kind     Kind
	Snapshot Snapshot
	Reason   string // Только для cancelled/removed; пустая строка = причина по умолчанию
}
