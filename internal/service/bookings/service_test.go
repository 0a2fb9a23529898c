package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	bookingRepo "github.com/banksiaoranpark/booking-service/internal/infra/storage/booking"
	"github.com/banksiaoranpark/booking-service/internal/notifications"
	"github.com/banksiaoranpark/booking-service/internal/service/bookings/models"
	"github.com/banksiaoranpark/booking-service/pkg/ptr"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Confirm(ctx context.Context, id int64, confirmedAt time.Time) error {
	args := m.Called(ctx, id, confirmedAt)
	return args.Error(0)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// captureNotifier собирает поставленные в очередь события
type captureNotifier struct {
	events    []notifications.Event
	onEnqueue func()
}

func (c *captureNotifier) Enqueue(event notifications.Event) {
	c.events = append(c.events, event)
	if c.onEnqueue != nil {
		c.onEnqueue()
	}
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        42,
		Name:      "Jane Citizen",
		Email:     "jane@example.com",
		Date:      time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
		Time:      "19:00",
		Guests:    2,
		Status:    domain.StatusPending,
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Hour),
	}
}

func newTestService(repo *mockBookingRepo, notifier *captureNotifier) *Service {
	svc := NewService(repo, notifier, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := newTestService(repo, &captureNotifier{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirm_SetsConfirmedAt(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &captureNotifier{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	repo.On("Confirm", mock.Anything, int64(42), testNow).Return(nil)

	svc := newTestService(repo, notifier)

	resp, err := svc.Confirm(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, resp.ConfirmedAt)
	assert.Equal(t, testNow.Format(time.RFC3339), *resp.ConfirmedAt)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notifications.KindBookingConfirmed, notifier.events[0].Kind)
	repo.AssertExpectations(t)
}

func TestConfirm_AlreadyConfirmed(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &captureNotifier{}

	earlier := testNow.Add(-24 * time.Hour)
	confirmed := pendingBooking()
	confirmed.Status = domain.StatusConfirmed
	confirmed.ConfirmedAt = &earlier

	repo.On("GetByID", mock.Anything, int64(42)).Return(confirmed, nil)
	repo.On("Confirm", mock.Anything, int64(42), testNow).Return(nil)

	svc := newTestService(repo, notifier)

	// Повторное подтверждение допустимо и обновляет confirmed_at
	resp, err := svc.Confirm(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, testNow.Format(time.RFC3339), *resp.ConfirmedAt)
}

func TestConfirm_CancelledBookingRejected(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &captureNotifier{}

	cancelled := pendingBooking()
	cancelled.Status = domain.StatusCancelled

	repo.On("GetByID", mock.Anything, int64(42)).Return(cancelled, nil)

	svc := newTestService(repo, notifier)

	_, err := svc.Confirm(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingCancelled)

	repo.AssertNotCalled(t, "Confirm")
	assert.Empty(t, notifier.events)
}

func TestCancel_PreservesConfirmedAt(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &captureNotifier{}

	confirmedAt := testNow.Add(-24 * time.Hour)
	confirmed := pendingBooking()
	confirmed.Status = domain.StatusConfirmed
	confirmed.ConfirmedAt = &confirmedAt

	repo.On("GetByID", mock.Anything, int64(42)).Return(confirmed, nil)
	repo.On("Cancel", mock.Anything, int64(42)).Return(nil)

	svc := newTestService(repo, notifier)

	resp, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{Reason: "kitchen flooded"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	// Отмена не стирает отметку о подтверждении
	require.NotNil(t, resp.ConfirmedAt)
	assert.Equal(t, confirmedAt.Format(time.RFC3339), *resp.ConfirmedAt)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notifications.KindBookingCancelled, notifier.events[0].Kind)
	assert.Equal(t, "kitchen flooded", notifier.events[0].Reason)
}

func TestCancel_EmptyReasonPassedThrough(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &captureNotifier{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	repo.On("Cancel", mock.Anything, int64(42)).Return(nil)

	svc := newTestService(repo, notifier)

	_, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{})
	require.NoError(t, err)

	// Пустая причина уходит как есть: текст по умолчанию подставит диспетчер
	require.Len(t, notifier.events, 1)
	assert.Empty(t, notifier.events[0].Reason)
}

func TestDelete_EnqueuesBeforeRemoval(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &captureNotifier{}

	var order []string
	notifier.onEnqueue = func() {
		order = append(order, "enqueue")
	}

	booking := pendingBooking()
	booking.SpecialRequests = ptr.Ptr("window table")

	repo.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	repo.On("Delete", mock.Anything, int64(42)).Run(func(args mock.Arguments) {
		order = append(order, "delete")
	}).Return(nil)

	svc := newTestService(repo, notifier)

	require.NoError(t, svc.Delete(context.Background(), 42))

	// Снапшот для письма снят и поставлен в очередь до удаления записи
	assert.Equal(t, []string{"enqueue", "delete"}, order)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notifications.KindBookingRemoved, notifier.events[0].Kind)
	assert.Equal(t, "window table", notifier.events[0].Snapshot.SpecialRequests)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &captureNotifier{}
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := newTestService(repo, notifier)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, notifier.events)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo, &captureNotifier{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "List")
}

func TestList_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{pendingBooking()}, nil)

	svc := newTestService(repo, &captureNotifier{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(42), resp.Bookings[0].ID)
}
