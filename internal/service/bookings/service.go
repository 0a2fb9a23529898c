package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	bookingRepo "github.com/banksiaoranpark/booking-service/internal/infra/storage/booking"
	"github.com/banksiaoranpark/booking-service/internal/notifications"
	"github.com/banksiaoranpark/booking-service/internal/service/bookings/models"
)

// Service сервис жизненного цикла броней: операции администратора
// поверх созданных гостями заявок
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает брони для календаря администратора.
// Порядок фиксированный: дата по возрастанию, затем метка слота.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает бронь: status=confirmed, confirmed_at=now.
// Отмененную бронь подтвердить нельзя — из cancelled переходов нет.
// Повторное подтверждение допустимо и обновляет confirmed_at.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.getBooking(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		s.logger.Warn("Confirm: booking id=%d is cancelled, cannot confirm", id)
		return nil, ErrBookingCancelled
	}

	confirmedAt := s.timeProvider.Now()
	if err := s.bookingRepo.Confirm(ctx, id, confirmedAt); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	booking.ConfirmedAt = &confirmedAt

	// Письмо гостю о подтверждении — fire-and-forget
	s.notifier.Enqueue(notifications.Event{
		Kind:     notifications.KindBookingConfirmed,
		Snapshot: notifications.SnapshotOf(booking),
	})

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронь: status=cancelled.
// confirmed_at не очищается: поле означает "бронь когда-либо подтверждалась".
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	// Снапшот до мутации: письмо рендерится из состояния на момент отмены
	snapshot := notifications.SnapshotOf(booking)

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled

	s.notifier.Enqueue(notifications.Event{
		Kind:     notifications.KindBookingCancelled,
		Snapshot: snapshot,
		Reason:   req.Reason,
	})

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронь физически. Уведомление ставится в очередь до
// удаления записи (по снапшоту); неудача доставки не мешает удалению.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.getBooking(ctx, "Delete", id)
	if err != nil {
		return err
	}

	s.notifier.Enqueue(notifications.Event{
		Kind:     notifications.KindBookingRemoved,
		Snapshot: notifications.SnapshotOf(booking),
	})

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// getBooking получает бронь с маппингом ошибки "не найдено"
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
