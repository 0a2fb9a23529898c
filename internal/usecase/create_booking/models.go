package create_booking

import (
	"time"

	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	Name            string           // Имя гостя
	Email           string           // Email гостя
	Date            time.Time        // Дата брони (без времени), сегодня или позже
	Time            types.TimeString // Метка слота из расписания, например "19:00"
	Guests          int              // Число гостей
	SpecialRequests *string          // Пожелания (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID              int64
	Name            string
	Email           string
	Date            time.Time
	Time            types.TimeString
	Guests          int
	SpecialRequests *string
	Status          string // Всегда "pending" для новой брони

	CreatedAt time.Time
	UpdatedAt time.Time
}
