package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
)

var _ repository.AccessEventRepository = (*AccessEventRepo)(nil)

// AccessEventRepo implementación del puerto AccessEventRepository sobre PostgreSQL.
type AccessEventRepo struct {
	pool *pgxpool.Pool
}

// NewAccessEventRepository construye el adaptador de persistencia para eventos.
func NewAccessEventRepository(pool *pgxpool.Pool) *AccessEventRepo {
	return &AccessEventRepo{pool: pool}
}

// Create persiste un evento de acceso.
func (r *AccessEventRepo) Create(event *entity.AccessEvent) error {
	query := `
		INSERT INTO access_events (id, account_id, kind, details, notified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		event.ID, event.AccountID, event.Kind, event.Details, event.Notified, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert access event: %w", err)
	}
	return nil
}

// List devuelve eventos con paginación, más recientes primero.
func (r *AccessEventRepo) List(limit, offset int) ([]*entity.AccessEvent, error) {
	query := `
		SELECT id, account_id, kind, details, notified, created_at
		FROM access_events ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list access events: %w", err)
	}
	defer rows.Close()
	var list []*entity.AccessEvent
	for rows.Next() {
		var e entity.AccessEvent
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Details, &e.Notified, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan access event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// MarkNotified marca como notificados los eventos pendientes de una cuenta
// para un tipo dado.
func (r *AccessEventRepo) MarkNotified(accountID, kind string) error {
	query := `
		UPDATE access_events SET notified = TRUE
		WHERE account_id = $1 AND kind = $2 AND NOT notified`
	_, err := r.pool.Exec(context.Background(), query, accountID, kind)
	if err != nil {
		return fmt.Errorf("mark access events notified: %w", err)
	}
	return nil
}

// CountPending total de eventos aún no notificados al admin.
func (r *AccessEventRepo) CountPending() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM access_events WHERE NOT notified`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending access events: %w", err)
	}
	return n, nil
}
