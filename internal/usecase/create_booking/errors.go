package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotCapacityExceeded возвращается, когда слот не вмещает запрошенных гостей
	ErrSlotCapacityExceeded = errors.New("create_booking: slot capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка валидации конкретного поля запроса
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_booking: invalid field %q: %s", e.Field, e.Message)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// CapacityError ошибка вместимости слота. Несет число оставшихся мест,
// чтобы клиент мог показать точное сообщение.
type CapacityError struct {
	ExistingGuests int
	AvailableSpots int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("create_booking: slot capacity exceeded, %d spots available", e.AvailableSpots)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrSlotCapacityExceeded)
func (e *CapacityError) Unwrap() error {
	return ErrSlotCapacityExceeded
}
