package notifications

import (
	"context"
	"sync"

	"github.com/banksiaoranpark/booking-service/internal/integrations/mailer"
)

// DefaultQueueSize размер буфера очереди событий
const DefaultQueueSize = 64

// Dispatcher асинхронный диспетчер уведомлений.
// События кладутся в буферизованный канал и доставляются воркером
// в фоне: мутация брони никогда не ждет почту и не зависит от ее исхода.
// Гарантия доставки — at-most-once: при переполненном буфере событие
// логируется и отбрасывается.
type Dispatcher struct {
	mailer     Mailer
	adminEmail string
	logger     Logger

	events    chan Event
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher создает диспетчер и запускает воркер доставки
func NewDispatcher(m Mailer, adminEmail string, queueSize int, logger Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		mailer:     m,
		adminEmail: adminEmail,
		logger:     logger,
		events:     make(chan Event, queueSize),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// Enqueue ставит событие в очередь доставки. Никогда не блокируется:
// при переполненном буфере событие отбрасывается с записью в лог.
func (d *Dispatcher) Enqueue(event Event) {
	select {
	case d.events <- event:
	default:
		d.logger.Error("Notification queue full, dropping event: kind=%s, booking_id=%d",
			event.Kind, event.Snapshot.ID)
	}
}

// Close останавливает прием событий и дожидается доставки оставшихся
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.events)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for event := range d.events {
		d.deliver(event)
	}
}

// deliver рендерит и отправляет письма для события.
// Ошибки отправки логируются и не распространяются дальше.
func (d *Dispatcher) deliver(event Event) {
	ctx := context.Background()
	details := toDetails(event.Snapshot)

	switch event.Kind {
	case KindBookingCreated:
		if err := d.mailer.Send(ctx, mailer.TemplateBookingReceived, event.Snapshot.Email, details, ""); err != nil {
			d.logger.Error("Failed to send booking received email: booking_id=%d: %v", event.Snapshot.ID, err)
		}
		if err := d.mailer.Send(ctx, mailer.TemplateAdminNotice, d.adminEmail, details, ""); err != nil {
			d.logger.Error("Failed to send admin booking notice: booking_id=%d: %v", event.Snapshot.ID, err)
		}

	case KindBookingConfirmed:
		if err := d.mailer.Send(ctx, mailer.TemplateBookingConfirmed, event.Snapshot.Email, details, ""); err != nil {
			d.logger.Error("Failed to send booking confirmed email: booking_id=%d: %v", event.Snapshot.ID, err)
		}

	case KindBookingCancelled:
		reason := event.Reason
		if reason == "" {
			reason = DefaultCancellationReason
		}
		if err := d.mailer.Send(ctx, mailer.TemplateBookingCancelled, event.Snapshot.Email, details, reason); err != nil {
			d.logger.Error("Failed to send booking cancelled email: booking_id=%d: %v", event.Snapshot.ID, err)
		}

	case KindBookingRemoved:
		reason := event.Reason
		if reason == "" {
			reason = DefaultRemovalReason
		}
		if err := d.mailer.Send(ctx, mailer.TemplateBookingCancelled, event.Snapshot.Email, details, reason); err != nil {
			d.logger.Error("Failed to send booking removal email: booking_id=%d: %v", event.Snapshot.ID, err)
		}

	default:
		d.logger.Warn("Unknown notification event kind: %s", event.Kind)
	}
}

// toDetails конвертирует снапшот в модель почтового клиента
func toDetails(s Snapshot) mailer.BookingDetails {
	return mailer.BookingDetails{
		ID:              s.ID,
		Name:            s.Name,
		Email:           s.Email,
		Date:            s.Date.Format("02/01/2006"),
		Time:            s.Time.String(),
		Guests:          s.Guests,
		SpecialRequests: s.SpecialRequests,
	}
}
