package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetails() BookingDetails {
	return BookingDetails{
		ID:     42,
		Name:   "Jane Citizen",
		Email:  "jane@example.com",
		Date:   "17/10/2025",
		Time:   "19:00",
		Guests: 2,
	}
}

func TestRenderMessage_BookingReceived(t *testing.T) {
	subject, body, err := renderMessage(TemplateBookingReceived, testDetails(), "")
	require.NoError(t, err)

	assert.Equal(t, "Booking Received - Banksia Oran Park", subject)
	assert.Contains(t, body, "Dear Jane Citizen,")
	assert.Contains(t, body, "Date: 17/10/2025")
	assert.Contains(t, body, "pending confirmation")
}

func TestRenderMessage_AdminNotice(t *testing.T) {
	subject, body, err := renderMessage(TemplateAdminNotice, testDetails(), "")
	require.NoError(t, err)

	assert.Equal(t, "New Booking Request #42 - 17/10/2025", subject)
	assert.Contains(t, body, "Contact: jane@example.com")
}

func TestRenderMessage_Cancelled(t *testing.T) {
	subject, body, err := renderMessage(TemplateBookingCancelled, testDetails(), "kitchen flooded")
	require.NoError(t, err)

	assert.Equal(t, "Booking Cancelled - Banksia Oran Park", subject)
	assert.Contains(t, body, "Reason for cancellation: kitchen flooded")
}

func TestRenderMessage_SpecialRequestsIncludedWhenSet(t *testing.T) {
	d := testDetails()
	d.SpecialRequests = "window table"

	_, body, err := renderMessage(TemplateBookingConfirmed, d, "")
	require.NoError(t, err)
	assert.Contains(t, body, "Special requests: window table")

	_, bare, err := renderMessage(TemplateBookingConfirmed, testDetails(), "")
	require.NoError(t, err)
	assert.NotContains(t, bare, "Special requests:")
}

func TestRenderMessage_UnknownTemplate(t *testing.T) {
	_, _, err := renderMessage(Template("newsletter"), testDetails(), "")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}
