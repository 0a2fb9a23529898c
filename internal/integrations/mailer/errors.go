package mailer

import "errors"

var (
	// ErrUnknownTemplate возвращается при неизвестном виде письма
	ErrUnknownTemplate = errors.New("mailer client: unknown template")

	// ErrSendFailed возвращается при ошибке отправки через MailerSend
	ErrSendFailed = errors.New("mailer client: failed to send email")
)
