package check_availability

import (
	"context"
	"fmt"

	"github.com/banksiaoranpark/booking-service/internal/domain"
)

// UseCase use case проверки доступности слота.
// Только чтение, без побочных эффектов: повторный вызов с теми же
// аргументами при неизменной БД возвращает тот же результат.
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     *domain.WeekSchedule
	capacity     int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule *domain.WeekSchedule,
	capacity int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		capacity:     capacity,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, time=%s, guests=%d",
		req.Date.Format(domain.DateFormat), req.Time, req.Guests)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, uc.schedule, uc.capacity, now); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	existingTotal, err := uc.bookingRepo.SumGuestsForSlot(ctx, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to sum guests for slot: %v", err)
		return nil, fmt.Errorf("%w: failed to sum guests: %v", ErrInternal, err)
	}

	slot := &domain.SlotAvailability{
		Date:            req.Date,
		Time:            req.Time,
		Capacity:        uc.capacity,
		ExistingGuests:  existingTotal,
		AvailableSpots:  uc.capacity - existingTotal,
		RequestedGuests: req.Guests,
	}

	resp := &Response{
		Available:       slot.Available(),
		ExistingGuests:  slot.ExistingGuests,
		AvailableSpots:  slot.AvailableSpots,
		RequestedGuests: slot.RequestedGuests,
	}

	uc.logger.Info("CheckAvailability: date=%s, time=%s: existing=%d, available_spots=%d, available=%t",
		req.Date.Format(domain.DateFormat), req.Time, resp.ExistingGuests, resp.AvailableSpots, resp.Available)

	return resp, nil
}
