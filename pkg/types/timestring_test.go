package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid evening slot", input: "19:00", want: "19:00"},
		{name: "valid half hour", input: "18:30", want: "18:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "non-canonical hour", input: "8:00", wantErr: true},
		{name: "missing minutes", input: "19", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "dinner", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 19, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("19:30"), NewTimeString(moment))
}

func TestTimeString_Comparisons(t *testing.T) {
	early := TimeString("18:00")
	late := TimeString("21:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	slot := TimeString("19:00")

	next, err := slot.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:30"), next)

	// Переход через полночь
	lateSlot := TimeString("23:45")
	wrapped, err := lateSlot.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), wrapped)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("19:00"))
	assert.Equal(t, TimeString("19:00"), ts)

	require.NoError(t, ts.Scan([]byte("20:30")))
	assert.Equal(t, TimeString("20:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
