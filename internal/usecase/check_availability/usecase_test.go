package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/banksiaoranpark/booking-service/internal/domain"
	"github.com/banksiaoranpark/booking-service/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) SumGuestsForSlot(ctx context.Context, date time.Time, slot types.TimeString) (int, error) {
	args := m.Called(ctx, date, slot)
	return args.Int(0), args.Error(1)
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

func newTestUseCase(repo *mockBookingRepo) *UseCase {
	schedule := &domain.WeekSchedule{
		Friday: []types.TimeString{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30"},
	}

	uc := NewUseCase(repo, schedule, domain.DefaultSlotCapacity, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_SlotAvailable(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("SumGuestsForSlot", mock.Anything, testDate, types.TimeString("19:00")).Return(2, nil)

	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Time: "19:00", Guests: 3})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 2, resp.ExistingGuests)
	assert.Equal(t, 3, resp.AvailableSpots)
	assert.Equal(t, 3, resp.RequestedGuests)
	repo.AssertExpectations(t)
}

func TestExecute_SlotFull(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("SumGuestsForSlot", mock.Anything, testDate, types.TimeString("19:00")).Return(4, nil)

	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Time: "19:00", Guests: 2})
	require.NoError(t, err)

	// 4 + 2 > 5: слот не вмещает, но остаток мест сообщается
	assert.False(t, resp.Available)
	assert.Equal(t, 4, resp.ExistingGuests)
	assert.Equal(t, 1, resp.AvailableSpots)
}

func TestExecute_ExactFit(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("SumGuestsForSlot", mock.Anything, testDate, types.TimeString("19:00")).Return(3, nil)

	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Time: "19:00", Guests: 2})
	require.NoError(t, err)

	// 3 + 2 == 5: ровно на границе вместимости, слот доступен
	assert.True(t, resp.Available)
	assert.Equal(t, 2, resp.AvailableSpots)
}

func TestExecute_DateInPast(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	past := testNow.AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), &Request{Date: past, Time: "19:00", Guests: 2})

	assert.ErrorIs(t, err, ErrDateInPast)
	repo.AssertNotCalled(t, "SumGuestsForSlot")
}

func TestExecute_SameDayAllowed(t *testing.T) {
	repo := &mockBookingRepo{}
	// 2025-10-10 — тоже пятница
	repo.On("SumGuestsForSlot", mock.Anything, testNow, types.TimeString("19:00")).Return(0, nil)

	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testNow, Time: "19:00", Guests: 2})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_UnknownTimeSlot(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, Time: "17:00", Guests: 2})

	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestExecute_ClosedDay(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	// 2025-10-19 — воскресенье, слотов нет
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{Date: sunday, Time: "19:00", Guests: 2})

	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestExecute_InvalidGuests(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, Time: "19:00", Guests: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, Time: "19:00", Guests: 6})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
