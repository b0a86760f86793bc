package notify

import (
	"context"
	"fmt"

	"github.com/example/quickcart/pkg/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers through the configured mail relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	email := m.compose(msg)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(email)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s: %w", msg.To, ctx.Err())
	}
}

// compose builds a plain-text message; bodies carry client-supplied text.
func (m *SMTPMailer) compose(msg Message) *gomail.Message {
	email := gomail.NewMessage()
	email.SetHeader("From", m.from)
	email.SetHeader("To", msg.To)
	email.SetHeader("Subject", msg.Subject)
	email.SetBody("text/plain", msg.Body)
	return email
}

// LogMailer is used when no relay is configured; it only records the message.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("Mail relay not configured, dropping email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
