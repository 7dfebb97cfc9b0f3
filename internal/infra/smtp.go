package infra

import (
	"fmt"
	"net/smtp"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends notice broadcasts through the configured SMTP relay.
type Mailer struct {
	from    string
	addr    string
	auth    smtp.Auth
	breaker *CircuitBreaker
	send    func(e *email.Email, addr string, a smtp.Auth) error
}

func NewMailer(cfg *config.Config) *Mailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &Mailer{
		from:    cfg.NoticeFrom,
		addr:    fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth:    auth,
		breaker: NewCircuitBreaker(),
		send: func(e *email.Email, addr string, a smtp.Auth) error {
			return e.Send(addr, a)
		},
	}
}

// SendNotice emails one notice to one recipient.
func (m *Mailer) SendNotice(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if err := m.breaker.Execute(func() error { return m.send(e, m.addr, m.auth) }); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

// BreakerState exposes the relay breaker for the health endpoint.
func (m *Mailer) BreakerState() CBState { return m.breaker.State() }
