package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	"github.com/banksiaoranpark/booking-service/internal/notifications"
	"github.com/banksiaoranpark/booking-service/pkg/ptr"
	"github.com/banksiaoranpark/booking-service/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetForSlot(ctx context.Context, date time.Time, slot types.TimeString) ([]*domain.Booking, error) {
	args := m.Called(ctx, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// captureNotifier собирает поставленные в очередь события
type captureNotifier struct {
	events []notifications.Event
}

func (c *captureNotifier) Enqueue(event notifications.Event) {
	c.events = append(c.events, event)
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

// 2025-10-17 — пятница
var (
	testNow  = time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		Name:   "Jane Citizen",
		Email:  "jane@example.com",
		Date:   testDate,
		Time:   "19:00",
		Guests: 2,
	}
}

func newTestUseCase(repo *mockBookingRepo, txMgr *fakeTxManager, notifier *captureNotifier) *UseCase {
	schedule := &domain.WeekSchedule{
		Friday: []types.TimeString{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30"},
	}

	uc := NewUseCase(repo, txMgr, notifier, schedule, domain.DefaultSlotCapacity, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	txMgr := &fakeTxManager{}
	notifier := &captureNotifier{}
	uc := newTestUseCase(repo, txMgr, notifier)

	repo.On("GetForSlot", mock.Anything, testDate, types.TimeString("19:00")).Return([]*domain.Booking{}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusPending && b.Guests == 2
	})).Return(&domain.Booking{
		ID:        42,
		Name:      "Jane Citizen",
		Email:     "jane@example.com",
		Date:      testDate,
		Time:      "19:00",
		Guests:    2,
		Status:    domain.StatusPending,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 1, txMgr.calls)

	// Событие о новой заявке поставлено в очередь после коммита
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notifications.KindBookingCreated, notifier.events[0].Kind)
	assert.Equal(t, int64(42), notifier.events[0].Snapshot.ID)

	repo.AssertExpectations(t)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	repo := &mockBookingRepo{}
	txMgr := &fakeTxManager{}
	notifier := &captureNotifier{}
	uc := newTestUseCase(repo, txMgr, notifier)

	existing := []*domain.Booking{
		{ID: 1, Guests: 2, Status: domain.StatusPending},
		{ID: 2, Guests: 2, Status: domain.StatusConfirmed},
	}
	repo.On("GetForSlot", mock.Anything, testDate, types.TimeString("19:00")).Return(existing, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.ErrorIs(t, err, ErrSlotCapacityExceeded)
	assert.Equal(t, 4, capacityErr.ExistingGuests)
	assert.Equal(t, 1, capacityErr.AvailableSpots)

	repo.AssertNotCalled(t, "Create")
	assert.Empty(t, notifier.events)
}

func TestExecute_CancelledBookingsFreeCapacity(t *testing.T) {
	repo := &mockBookingRepo{}
	txMgr := &fakeTxManager{}
	notifier := &captureNotifier{}
	uc := newTestUseCase(repo, txMgr, notifier)

	// Отмененная бронь на 4 гостей не занимает мест
	existing := []*domain.Booking{
		{ID: 1, Guests: 4, Status: domain.StatusCancelled},
		{ID: 2, Guests: 3, Status: domain.StatusPending},
	}
	repo.On("GetForSlot", mock.Anything, testDate, types.TimeString("19:00")).Return(existing, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{
		ID:     7,
		Guests: 2,
		Date:   testDate,
		Time:   "19:00",
		Status: domain.StatusPending,
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestExecute_ExactFit(t *testing.T) {
	repo := &mockBookingRepo{}
	txMgr := &fakeTxManager{}
	notifier := &captureNotifier{}
	uc := newTestUseCase(repo, txMgr, notifier)

	existing := []*domain.Booking{
		{ID: 1, Guests: 3, Status: domain.StatusConfirmed},
	}
	repo.On("GetForSlot", mock.Anything, testDate, types.TimeString("19:00")).Return(existing, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{
		ID:     8,
		Guests: 2,
		Date:   testDate,
		Time:   "19:00",
		Status: domain.StatusPending,
	}, nil)

	// 3 + 2 == 5: ровно на границе вместимости
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *Request)
		wantField string
	}{
		{
			name:      "empty name",
			mutate:    func(r *Request) { r.Name = "  " },
			wantField: "name",
		},
		{
			name:      "invalid email",
			mutate:    func(r *Request) { r.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "date in past",
			mutate:    func(r *Request) { r.Date = testNow.AddDate(0, 0, -1) },
			wantField: "date",
		},
		{
			name:      "unknown time slot",
			mutate:    func(r *Request) { r.Time = "12:00" },
			wantField: "time",
		},
		{
			name:      "zero guests",
			mutate:    func(r *Request) { r.Guests = 0 },
			wantField: "guests",
		},
		{
			name:      "too many guests",
			mutate:    func(r *Request) { r.Guests = 6 },
			wantField: "guests",
		},
		{
			name: "special requests too long",
			mutate: func(r *Request) {
				long := make([]byte, domain.MaxSpecialRequestsLength+1)
				for i := range long {
					long[i] = 'a'
				}
				r.SpecialRequests = ptr.Ptr(string(long))
			},
			wantField: "special_requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			txMgr := &fakeTxManager{}
			notifier := &captureNotifier{}
			uc := newTestUseCase(repo, txMgr, notifier)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantField, validationErr.Field)

			// До транзакции дело не дошло
			assert.Zero(t, txMgr.calls)
			assert.Empty(t, notifier.events)
		})
	}
}
