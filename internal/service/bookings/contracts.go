package bookings

import (
	"context"
	"time"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	"github.com/banksiaoranpark/booking-service/internal/notifications"
)

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id int64, confirmedAt time.Time) error
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	Enqueue(event notifications.Event)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
