// Package mail wraps the outbound SMTP relay behind a session interface the
// dispatch function can drive and tests can fake.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/glitchowt/backoffice/internal/config"
)

// Message is one outbound email. HTMLBody and PlainBody are sent as
// alternative parts of a single message.
type Message struct {
	To        string
	Subject   string
	PlainBody string
	HTMLBody  string
}

// Session is an open, authenticated connection to the mail relay. It must be
// closed on both success and failure paths.
type Session interface {
	// Send delivers one message over the open session.
	Send(msg Message) error
	// Close tears the session down. Safe to call after a failed Send.
	Close() error
}

// Dialer opens mail sessions. The dispatch function holds a Dialer and opens
// one session per dispatch run.
type Dialer interface {
	Dial(ctx context.Context) (Session, error)
}

// SMTPDialer dials the configured SMTP relay with PLAIN auth.
type SMTPDialer struct {
	cfg config.SMTPConfig
}

// NewSMTPDialer creates a dialer for the configured relay.
func NewSMTPDialer(cfg config.SMTPConfig) *SMTPDialer {
	return &SMTPDialer{cfg: cfg}
}

// Dial connects and authenticates. The returned session reuses the single
// underlying connection for every Send.
func (d *SMTPDialer) Dial(ctx context.Context) (Session, error) {
	client, err := gomail.NewClient(
		d.cfg.Host,
		gomail.WithPort(d.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(d.cfg.Username),
		gomail.WithPassword(d.cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("dial smtp relay: %w", err)
	}
	return &smtpSession{client: client, cfg: d.cfg}, nil
}

type smtpSession struct {
	client *gomail.Client
	cfg    config.SMTPConfig
}

func (s *smtpSession) Send(msg Message) error {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.FromEmail); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.PlainBody)
	m.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)

	if err := s.client.Send(m); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}

func (s *smtpSession) Close() error {
	return s.client.Close()
}
