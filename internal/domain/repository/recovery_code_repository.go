package repository

import "github.com/gautamsolar/certportal/internal/domain/entity"

// RecoveryCodeRepository define el puerto de persistencia para RecoveryCode (DIP).
type RecoveryCodeRepository interface {
	Create(code *entity.RecoveryCode) error
	// GetActiveByAccount devuelve el código no consumido más reciente de la
	// cuenta, o (nil, nil) si no hay ninguno.
	GetActiveByAccount(accountID string) (*entity.RecoveryCode, error)
	// GetConsumedByID devuelve un código ya consumido por su ID, o (nil, nil).
	GetConsumedByID(id string) (*entity.RecoveryCode, error)
	// DeleteActiveByAccount elimina todos los códigos no consumidos de la cuenta.
	DeleteActiveByAccount(accountID string) error
	MarkConsumed(code *entity.RecoveryCode) error
}
