package check_availability

import (
	"strconv"
	"time"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	checkAvailability "github.com/banksiaoranpark/booking-service/internal/usecase/check_availability"
	"github.com/banksiaoranpark/booking-service/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available       bool `json:"available"`
	ExistingGuests  int  `json:"existingGuests"`
	AvailableSpots  int  `json:"availableSpots"`
	RequestedGuests int  `json:"requestedGuests"`
}

// ToUseCaseRequest собирает модель use case из query параметров
func ToUseCaseRequest(dateStr, timeStr, guestsStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date:   date,
		Time:   slot,
		Guests: guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:       resp.Available,
		ExistingGuests:  resp.ExistingGuests,
		AvailableSpots:  resp.AvailableSpots,
		RequestedGuests: resp.RequestedGuests,
	}
}
