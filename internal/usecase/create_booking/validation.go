package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/banksiaoranpark/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Возвращает ValidationError с именем поля — клиент показывает
// сообщение рядом с конкретным полем формы.
func validateRequest(req *Request, schedule *domain.WeekSchedule, capacity int, now time.Time) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(req.Name) > domain.MaxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", domain.MaxNameLength)}
	}

	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(req.Email) > domain.MaxEmailLength {
		return &ValidationError{Field: "email", Message: fmt.Sprintf("email must be at most %d characters", domain.MaxEmailLength)}
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}

	if req.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if isDateInPast(req.Date, now) {
		return &ValidationError{Field: "date", Message: "date must be today or later"}
	}

	if req.Time.IsZero() {
		return &ValidationError{Field: "time", Message: "time is required"}
	}
	if err := req.Time.Validate(); err != nil {
		return &ValidationError{Field: "time", Message: "invalid time format, expected HH:MM"}
	}
	if !schedule.HasSlot(req.Date, req.Time) {
		return &ValidationError{Field: "time", Message: fmt.Sprintf("unknown time slot %q", req.Time)}
	}

	if req.Guests < domain.MinPartySize || req.Guests > capacity {
		return &ValidationError{
			Field:   "guests",
			Message: fmt.Sprintf("guests must be between %d and %d", domain.MinPartySize, capacity),
		}
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return &ValidationError{
			Field:   "special_requests",
			Message: fmt.Sprintf("special requests must be at most %d characters", domain.MaxSpecialRequestsLength),
		}
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня (сегодня допустимо)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
