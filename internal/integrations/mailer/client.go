package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент отправки транзакционных писем через MailerSend
type Client struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
	timeout   time.Duration
	log       Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(apiKey, fromName, fromEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		client:    mailersend.NewMailersend(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		timeout:   timeout,
		log:       log,
	}
}

// Send отправляет письмо указанного вида получателю.
// reason используется только шаблоном TemplateBookingCancelled.
func (c *Client) Send(ctx context.Context, template Template, recipient string, details BookingDetails, reason string) error {
	subject, body, err := renderMessage(template, details, reason)
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	message := c.client.Email.NewMessage()
	message.SetFrom(mailersend.From{
		Name:  c.fromName,
		Email: c.fromEmail,
	})
	message.SetRecipients([]mailersend.Recipient{
		{Name: details.Name, Email: recipient},
	})
	message.SetSubject(subject)
	message.SetText(body)

	if _, err := c.client.Email.Send(sendCtx, message); err != nil {
		return fmt.Errorf("%w: template=%s, recipient=%s: %v", ErrSendFailed, template, recipient, err)
	}

	c.log.Info("Email sent: template=%s, recipient=%s, booking_id=%d", template, recipient, details.ID)
	return nil
}

// renderMessage собирает тему и текст письма по шаблону
func renderMessage(template Template, d BookingDetails, reason string) (subject string, body string, err error) {
	switch template {
	case TemplateBookingReceived:
		return "Booking Received - Banksia Oran Park", guestReceivedBody(d), nil
	case TemplateAdminNotice:
		return fmt.Sprintf("New Booking Request #%d - %s", d.ID, d.Date), adminNoticeBody(d), nil
	case TemplateBookingConfirmed:
		return "Booking Confirmed - Banksia Oran Park", confirmedBody(d), nil
	case TemplateBookingCancelled:
		return "Booking Cancelled - Banksia Oran Park", cancelledBody(d, reason), nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownTemplate, template)
	}
}

func guestReceivedBody(d BookingDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", d.Name)
	b.WriteString("Thank you for your booking at Banksia Oran Park! We have received your booking request and will review it shortly.\n\n")
	writeDetails(&b, d)
	b.WriteString("\nYour booking is currently pending confirmation. Our team will review it and send you a final confirmation within 24 hours.\n\n")
	b.WriteString("Please wait for final confirmation before making other arrangements.\n\n")
	b.WriteString("Best regards,\nThe Banksia Oran Park Team\n")
	return b.String()
}

func adminNoticeBody(d BookingDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new booking request #%d is awaiting review.\n\n", d.ID)
	writeDetails(&b, d)
	fmt.Fprintf(&b, "Contact: %s\n", d.Email)
	return b.String()
}

func confirmedBody(d BookingDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", d.Name)
	b.WriteString("Great news! Your booking at Banksia Oran Park has been confirmed.\n\n")
	writeDetails(&b, d)
	b.WriteString("\nWe look forward to welcoming you. If your plans change, please contact us as soon as possible.\n\n")
	b.WriteString("Best regards,\nThe Banksia Oran Park Team\n")
	return b.String()
}

func cancelledBody(d BookingDetails, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", d.Name)
	b.WriteString("We regret to inform you that your booking at Banksia Oran Park has been cancelled.\n\n")
	writeDetails(&b, d)
	if reason != "" {
		fmt.Fprintf(&b, "\nReason for cancellation: %s\n", reason)
	}
	b.WriteString("\nWe sincerely apologize for any inconvenience. If you would like to make a new booking, please visit our booking page or contact us directly.\n\n")
	b.WriteString("Best regards,\nThe Banksia Oran Park Team\n")
	return b.String()
}

func writeDetails(b *strings.Builder, d BookingDetails) {
	fmt.Fprintf(b, "Booking details:\n  Date: %s\n  Time: %s\n  Guests: %d\n", d.Date, d.Time, d.Guests)
	if d.SpecialRequests != "" {
		fmt.Fprintf(b, "  Special requests: %s\n", d.SpecialRequests)
	}
}
