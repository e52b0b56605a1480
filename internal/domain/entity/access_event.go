package entity

import "time"

// Tipos de AccessEvent.
const (
	EventNewRegistration = "new_registration"
	EventPasswordReset   = "password_reset"
	EventPortalAccess    = "portal_access"
)

// AccessEvent traza de actividad de una cuenta (registro, login, reset).
// Solo para visibilidad del admin; nunca participa en el control de flujo.
type AccessEvent struct {
	ID        string
	AccountID string
	Kind      string // new_registration, password_reset, portal_access
	Details   string
	Notified  bool // si ya se despachó el email al admin por este evento
	CreatedAt time.Time
}
