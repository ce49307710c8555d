package email

import "artisanhub/internal/logger"

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string // HTML
}

// Provider sends email. Sending is always best-effort from the caller's
// perspective; a failed send never fails the triggering request.
type Provider interface {
	Send(msg *Message) error
}

// NoopProvider logs instead of sending. Used when SMTP is not configured,
// typically in development and tests.
type NoopProvider struct{}

func (p *NoopProvider) Send(msg *Message) error {
	logger.Info("email suppressed (no SMTP configured)", "to", msg.To, "subject", msg.Subject)
	return nil
}
