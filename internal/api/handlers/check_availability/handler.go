package check_availability

import (
	"errors"
	"net/http"

	"github.com/banksiaoranpark/booking-service/internal/api/handlers"
	checkAvailability "github.com/banksiaoranpark/booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidParams   = "invalid query parameters, expected date=YYYY-MM-DD, time=HH:MM, guests=N"
	msgDateInPast      = "the requested date is in the past"
	msgUnknownTimeSlot = "the requested time is not an available booking slot"
	msgInvalidInput    = "invalid availability request"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date, time, guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Собираем запрос из query параметров
	useCaseReq, err := ToUseCaseRequest(query.Get("date"), query.Get("time"), query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrDateInPast):
			h.logger.Warn("GET /availability - Date in past: date=%s", query.Get("date"))
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, checkAvailability.ErrUnknownTimeSlot):
			h.logger.Warn("GET /availability - Unknown time slot: time=%s", query.Get("time"))
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability checked: date=%s, time=%s, available=%t",
		query.Get("date"), query.Get("time"), result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
