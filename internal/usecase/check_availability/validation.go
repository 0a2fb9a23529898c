package check_availability

import (
	"fmt"
	"time"

	"github.com/banksiaoranpark/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, schedule *domain.WeekSchedule, capacity int, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if isDateInPast(req.Date, now) {
		return ErrDateInPast
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if !schedule.HasSlot(req.Date, req.Time) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, req.Time)
	}

	if req.Guests < domain.MinPartySize || req.Guests > capacity {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinPartySize, capacity)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня (сегодня допустимо)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
