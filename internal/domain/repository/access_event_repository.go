package repository

import "github.com/gautamsolar/certportal/internal/domain/entity"

// AccessEventRepository define el puerto de persistencia para AccessEvent (DIP).
type AccessEventRepository interface {
	Create(event *entity.AccessEvent) error
	List(limit, offset int) ([]*entity.AccessEvent, error)
	// MarkNotified marca como notificados los eventos pendientes de una cuenta
	// para un tipo dado.
	MarkNotified(accountID, kind string) error
	CountPending() (int, error)
}
