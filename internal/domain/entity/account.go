package entity

import "time"

// Valores por defecto cuando el registro no informa company/phone.
const (
	CompanyNotSpecified = "Not specified"
	PhoneNotProvided    = "Not provided"
)

// Account representa una cuenta del portal. Approved=false significa pendiente:
// la cuenta existe pero no puede iniciar sesión hasta que un admin la apruebe.
type Account struct {
	ID           string
	Name         string
	Company      string
	Email        string // único en todo el sistema
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Approved     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
