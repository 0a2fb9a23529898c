package cancel_booking

import (
	"github.com/banksiaoranpark/booking-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model.
// Тело опционально: без причины гость получит текст по умолчанию.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Reason: r.Reason,
	}
}
