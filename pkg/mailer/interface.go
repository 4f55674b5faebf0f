package mailer

import "context"

// IMailer defines the interface for sending email.
// Implementations are safe for concurrent use.
type IMailer interface {
	// Send delivers a plain-text email. Returns an error on transport failure.
	Send(ctx context.Context, to, subject, body string) error
}
