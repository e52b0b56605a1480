package entity

import "time"

// RecoveryCodeTTL vigencia de un código de recuperación desde su emisión.
const RecoveryCodeTTL = 10 * time.Minute

// RecoveryCode código de un solo uso para recuperar contraseña.
// Invariante: a lo sumo un código no consumido por cuenta; emitir uno nuevo
// elimina los anteriores no consumidos.
type RecoveryCode struct {
	ID        string
	AccountID string
	Code      string // 6 dígitos, con ceros a la izquierda
	CreatedAt time.Time
	ExpiresAt time.Time
	Consumed  bool
	// ConsumedAt se usa para ligar el token de VerifyCode con el cambio de
	// contraseña posterior; cero si el código sigue activo.
	ConsumedAt time.Time
}

// Expired indica si el código ya no es válido en el instante now
// (now >= ExpiresAt cuenta como expirado).
func (c *RecoveryCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
