package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("cuenta no encontrada")
	ErrValidation         = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrPendingApproval    = errors.New("cuenta pendiente de aprobación")
	ErrNoActiveCode       = errors.New("no hay código de recuperación activo")
	ErrCodeExpired        = errors.New("el código de recuperación expiró")
	ErrCodeMismatch       = errors.New("el código de recuperación no coincide")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrUnauthorized       = errors.New("no autorizado")
)
