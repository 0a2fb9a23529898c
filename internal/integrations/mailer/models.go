package mailer

// Template вид письма о брони
type Template string

const (
	// TemplateBookingReceived письмо гостю о принятой заявке (ожидает подтверждения)
	TemplateBookingReceived Template = "booking_received"

	// TemplateAdminNotice служебное письмо ресторану о новой заявке
	TemplateAdminNotice Template = "admin_notice"

	// TemplateBookingConfirmed письмо гостю о подтверждении брони
	TemplateBookingConfirmed Template = "booking_confirmed"

	// TemplateBookingCancelled письмо гостю об отмене брони.
	// Используется и при отмене, и при удалении — различается текстом причины.
	TemplateBookingCancelled Template = "booking_cancelled"
)

// BookingDetails данные брони для подстановки в шаблон письма.
// Это плоская копия полей: письмо не должно зависеть от дальнейшей
// судьбы записи в БД.
type BookingDetails struct {
	ID              int64
	Name            string
	Email           string
	Date            string // "02/01/2006" — формат писем сайта
	Time            string // "19:00"
	Guests          int
	SpecialRequests string // пустая строка, если пожеланий нет
}
