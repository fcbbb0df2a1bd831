package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/empleolibre/empleo-api/internal/application/auth"
	"github.com/empleolibre/empleo-api/pkg/config"
)

// Asegura que GomailSender implementa auth.Mailer.
var _ auth.Mailer = (*GomailSender)(nil)

// GomailSender envía correos vía SMTP con gomail (entrega de códigos OTP).
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Send envía un correo de texto plano.
func (s *GomailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
