package list_bookings

import (
	"time"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	"github.com/banksiaoranpark/booking-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров.
// Все параметры опциональны.
func ToServiceRequest(startDateStr, endDateStr, statusStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
