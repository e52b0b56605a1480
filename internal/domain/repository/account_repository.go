package repository

import "github.com/gautamsolar/certportal/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account (DIP).
// Las consultas que no encuentran fila devuelven (nil, nil).
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	Update(account *entity.Account) error
	List() ([]*entity.Account, error)
	// Delete elimina la cuenta; recovery_codes y access_events caen por
	// cascada en el store.
	Delete(id string) error
	Count() (int, error)
	CountApproved() (int, error)
}
