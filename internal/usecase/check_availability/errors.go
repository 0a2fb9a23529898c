package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrDateInPast возвращается, когда дата брони уже прошла
	ErrDateInPast = errors.New("check_availability: date is in the past")

	// ErrUnknownTimeSlot возвращается, когда метка времени не входит в расписание
	ErrUnknownTimeSlot = errors.New("check_availability: unknown time slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
