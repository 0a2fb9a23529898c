package check_availability

import (
	"time"

	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// Request модель запроса проверки доступности слота
type Request struct {
	Date   time.Time        // Дата брони (без времени)
	Time   types.TimeString // Метка слота, например "19:00"
	Guests int              // Запрошенное число гостей
}

// Response модель ответа с состоянием вместимости слота.
// AvailableSpots может быть <= 0: при гонке двух создающих запросов слот
// уже мог быть переполнен, клиент сам решает, как это отображать.
type Response struct {
	Available       bool
	ExistingGuests  int
	AvailableSpots  int
	RequestedGuests int
}
