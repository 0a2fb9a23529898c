package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/banksiaoranpark/booking-service/pkg/types"
)

func TestBooking_CountsTowardCapacity(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.CountsTowardCapacity())
		})
	}
}

func TestBooking_StatusChecks(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.IsPending())
	assert.False(t, b.IsConfirmed())
	assert.False(t, b.IsCancelled())

	b.Status = StatusConfirmed
	assert.True(t, b.IsConfirmed())

	b.Status = StatusCancelled
	assert.True(t, b.IsCancelled())
}

func TestWeekSchedule_HasSlot(t *testing.T) {
	schedule := &WeekSchedule{
		Friday:   []types.TimeString{"18:00", "18:30", "19:00"},
		Saturday: []types.TimeString{"19:00"},
	}

	// 2025-10-17 — пятница
	friday := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
	assert.True(t, schedule.HasSlot(friday, "18:30"))
	assert.False(t, schedule.HasSlot(friday, "21:00"))

	// Метка сравнивается дословно, "18:30:00" не слот
	assert.False(t, schedule.HasSlot(friday, "18:30:00"))

	// 2025-10-19 — воскресенье, ресторан закрыт
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.False(t, schedule.HasSlot(sunday, "19:00"))
	assert.Empty(t, schedule.SlotsFor(sunday))
}
