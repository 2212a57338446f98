package infra

import (
	"fmt"
	"net/smtp"

	"github.com/campneus/auditoria-campneus/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for the credentials notification sent when
// an account is created.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
}

// NewMailer returns nil when SMTP is not configured; callers treat a nil
// mailer as "mail disabled".
func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendCredentials mails the initial login credentials to a new user.
func (m *Mailer) SendCredentials(to, username, password string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = "Acesso ao sistema de auditorias"
	e.Text = []byte(fmt.Sprintf(
		"Sua conta foi criada.\n\nUsuário: %s\nSenha: %s\n\nAltere a senha após o primeiro acesso.",
		username, password,
	))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
