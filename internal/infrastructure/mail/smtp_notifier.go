// Package mail implementa el puerto Notifier sobre SMTP (gomail).
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/gautamsolar/certportal/internal/application/notify"
	"github.com/gautamsolar/certportal/pkg/config"
)

var _ notify.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía correos vía SMTP con STARTTLS. Cada Send abre y cierra
// la conexión; el volumen del portal no justifica mantenerla viva.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

// NewSMTPNotifier construye el notificador con la configuración SMTP.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Send envía un correo. El llamador trata cualquier error como no fatal.
func (n *SMTPNotifier) Send(to, subject, body string, html bool) error {
	if to == "" {
		return fmt.Errorf("mail: destinatario vacío")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if html {
		m.SetBody("text/html", body)
	} else {
		m.SetBody("text/plain", body)
	}

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar a %s: %w", to, err)
	}
	return nil
}
