package usecase

import (
	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/domain/repository"
)

// DashboardUseCase contadores y actividad para el panel de administración.
type DashboardUseCase struct {
	accounts   repository.AccountRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	events     repository.AccessEventRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(
	accounts repository.AccountRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	events repository.AccessEventRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		accounts:   accounts,
		categories: categories,
		products:   products,
		events:     events,
	}
}

// Stats devuelve los contadores del panel.
func (uc *DashboardUseCase) Stats() (*dto.DashboardResponse, error) {
	accounts, err := uc.accounts.Count()
	if err != nil {
		return nil, err
	}
	approved, err := uc.accounts.CountApproved()
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.Count()
	if err != nil {
		return nil, err
	}
	products, err := uc.products.Count()
	if err != nil {
		return nil, err
	}
	pending, err := uc.events.CountPending()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Accounts:      accounts,
		Approved:      approved,
		Categories:    categories,
		Products:      products,
		PendingEvents: pending,
	}, nil
}

// ListEvents devuelve los eventos de acceso más recientes.
func (uc *DashboardUseCase) ListEvents(limit, offset int) ([]dto.AccessEventResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	events, err := uc.events.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccessEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.AccessEventResponse{
			ID:        e.ID,
			AccountID: e.AccountID,
			Kind:      e.Kind,
			Details:   e.Details,
			Notified:  e.Notified,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}
