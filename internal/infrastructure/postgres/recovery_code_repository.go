package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
)

var _ repository.RecoveryCodeRepository = (*RecoveryCodeRepo)(nil)

// RecoveryCodeRepo implementación del puerto RecoveryCodeRepository sobre
// PostgreSQL. Acepta el pool o una transacción en curso.
type RecoveryCodeRepo struct {
	db querier
}

// NewRecoveryCodeRepository construye el adaptador atado al pool o a una tx.
func NewRecoveryCodeRepository(db querier) *RecoveryCodeRepo {
	return &RecoveryCodeRepo{db: db}
}

// Create persiste un código nuevo.
func (r *RecoveryCodeRepo) Create(code *entity.RecoveryCode) error {
	query := `
		INSERT INTO recovery_codes (id, account_id, code, created_at, expires_at, consumed)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		code.ID, code.AccountID, code.Code, code.CreatedAt, code.ExpiresAt, code.Consumed,
	)
	if err != nil {
		return fmt.Errorf("insert recovery code: %w", err)
	}
	return nil
}

// GetActiveByAccount devuelve el código no consumido más reciente de la cuenta.
func (r *RecoveryCodeRepo) GetActiveByAccount(accountID string) (*entity.RecoveryCode, error) {
	query := `
		SELECT id, account_id, code, created_at, expires_at, consumed, consumed_at
		FROM recovery_codes
		WHERE account_id = $1 AND NOT consumed
		ORDER BY created_at DESC
		LIMIT 1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, accountID), "get active recovery code")
}

// GetConsumedByID devuelve un código ya consumido por su ID.
func (r *RecoveryCodeRepo) GetConsumedByID(id string) (*entity.RecoveryCode, error) {
	query := `
		SELECT id, account_id, code, created_at, expires_at, consumed, consumed_at
		FROM recovery_codes
		WHERE id = $1 AND consumed`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get consumed recovery code")
}

func (r *RecoveryCodeRepo) scanOne(row pgx.Row, op string) (*entity.RecoveryCode, error) {
	var c entity.RecoveryCode
	var consumedAt *time.Time
	err := row.Scan(&c.ID, &c.AccountID, &c.Code, &c.CreatedAt, &c.ExpiresAt, &c.Consumed, &consumedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if consumedAt != nil {
		c.ConsumedAt = *consumedAt
	}
	return &c, nil
}

// DeleteActiveByAccount elimina todos los códigos no consumidos de la cuenta.
func (r *RecoveryCodeRepo) DeleteActiveByAccount(accountID string) error {
	query := `DELETE FROM recovery_codes WHERE account_id = $1 AND NOT consumed`
	_, err := r.db.Exec(context.Background(), query, accountID)
	if err != nil {
		return fmt.Errorf("delete active recovery codes: %w", err)
	}
	return nil
}

// MarkConsumed marca el código como consumido.
func (r *RecoveryCodeRepo) MarkConsumed(code *entity.RecoveryCode) error {
	query := `UPDATE recovery_codes SET consumed = TRUE, consumed_at = $2 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, code.ID, code.ConsumedAt)
	if err != nil {
		return fmt.Errorf("mark recovery code consumed: %w", err)
	}
	return nil
}
