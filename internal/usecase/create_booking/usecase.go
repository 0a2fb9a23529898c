package create_booking

import (
	"context"
	"fmt"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	"github.com/banksiaoranpark/booking-service/internal/notifications"
)

// UseCase use case создания брони.
// Проверка вместимости и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк слота: два конкурентных запроса на один
// слот не могут оба пройти проверку и вместе превысить вместимость.
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	schedule     *domain.WeekSchedule
	capacity     int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	schedule *domain.WeekSchedule,
	capacity int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		schedule:     schedule,
		capacity:     capacity,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s, guests=%d",
		req.Email, req.Date.Format(domain.DateFormat), req.Time, req.Guests)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.schedule, uc.capacity, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка вместимости и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Активные брони слота с блокировкой строк (FOR UPDATE)
		existing, err := uc.bookingRepo.GetForSlot(txCtx, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		existingTotal := 0
		for _, b := range existing {
			if b.CountsTowardCapacity() {
				existingTotal += b.Guests
			}
		}

		// 2.2. Проверка вместимости слота
		if existingTotal+req.Guests > uc.capacity {
			uc.logger.Warn("CreateBooking: slot full: date=%s, time=%s, existing=%d, requested=%d",
				req.Date.Format(domain.DateFormat), req.Time, existingTotal, req.Guests)
			return &CapacityError{
				ExistingGuests: existingTotal,
				AvailableSpots: uc.capacity - existingTotal,
			}
		}

		// 2.3. Создаем бронь в статусе pending
		booking := &domain.Booking{
			Name:            req.Name,
			Email:           req.Email,
			Date:            req.Date,
			Time:            req.Time,
			Guests:          req.Guests,
			SpecialRequests: req.SpecialRequests,
			Status:          domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 3. Уведомления гостю и ресторану — после коммита, fire-and-forget
	uc.notifier.Enqueue(notifications.Event{
		Kind:     notifications.KindBookingCreated,
		Snapshot: notifications.SnapshotOf(result),
	})

	return &Response{
		ID:              result.ID,
		Name:            result.Name,
		Email:           result.Email,
		Date:            result.Date,
		Time:            result.Time,
		Guests:          result.Guests,
		SpecialRequests: result.SpecialRequests,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
