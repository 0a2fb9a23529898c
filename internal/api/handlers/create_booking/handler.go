package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/banksiaoranpark/booking-service/internal/api/handlers"
	createBooking "github.com/banksiaoranpark/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid booking time, expected HH:MM"
	msgInvalidInput       = "invalid booking request"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate+" / "+msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *createBooking.CapacityError
		var validationErr *createBooking.ValidationError

		switch {
		case errors.As(err, &capacityErr):
			// 409: слот не вмещает запрошенных гостей
			h.logger.Warn("POST /bookings - Slot full: date=%s, time=%s, existing=%d, requested=%d",
				req.Date, req.Time, capacityErr.ExistingGuests, req.Guests)
			handlers.RespondJSON(w, http.StatusConflict, CapacityErrorResponse{
				Error:          fmt.Sprintf("this time slot cannot accommodate %d more guests", req.Guests),
				ExistingGuests: capacityErr.ExistingGuests,
				AvailableSpots: capacityErr.AvailableSpots,
			})

		case errors.As(err, &validationErr):
			// 400 с именем невалидного поля
			h.logger.Warn("POST /bookings - Validation failed: field=%s, message=%s",
				validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, fmt.Sprintf("%s: %s", validationErr.Field, validationErr.Message))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, email=%s", result.ID, req.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
