// Package notify define el puerto de notificaciones salientes y el helper de
// efectos secundarios best-effort.
package notify

import "github.com/gautamsolar/certportal/pkg/logger"

// Notifier envía un correo. Best-effort: el llamador nunca trata el fallo
// como fatal.
type Notifier interface {
	Send(to, subject, body string, html bool) error
}

// BestEffort ejecuta un efecto secundario (evento de auditoría, email)
// después de que el cambio principal ya quedó persistido. El error se
// registra y se descarta.
func BestEffort(log *logger.Logger, action string, fn func() error) {
	if err := fn(); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("efecto secundario descartado")
	}
}
