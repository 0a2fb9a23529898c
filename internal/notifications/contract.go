package notifications

import (
	"context"

	"github.com/banksiaoranpark/booking-service/internal/integrations/mailer"
)

// Mailer интерфейс почтового клиента
type Mailer interface {
	Send(ctx context.Context, template mailer.Template, recipient string, details mailer.BookingDetails, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
