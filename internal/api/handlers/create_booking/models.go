package create_booking

import (
	"time"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	createBooking "github.com/banksiaoranpark/booking-service/internal/usecase/create_booking"
	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Date            string  `json:"date"` // "2025-10-15"
	Time            string  `json:"time"` // "19:00"
	Guests          int     `json:"guests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Guests          int     `json:"guests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// CapacityErrorResponse тело 409 ответа при переполнении слота
type CapacityErrorResponse struct {
	Error          string `json:"error"`
	ExistingGuests int    `json:"existingGuests"`
	AvailableSpots int    `json:"availableSpots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		Date:            bookingDate,
		Time:            slot,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Email:           resp.Email,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		Guests:          resp.Guests,
		SpecialRequests: resp.SpecialRequests,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
