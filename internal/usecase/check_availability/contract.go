package check_availability

import (
	"context"
	"time"

	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	// SumGuestsForSlot возвращает сумму гостей по активным броням слота
	SumGuestsForSlot(ctx context.Context, date time.Time, slot types.TimeString) (int, error)
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
