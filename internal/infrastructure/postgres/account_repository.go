package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gautamsolar/certportal/internal/domain"
	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, name, company, email, phone, password_hash, approved, created_at, updated_at`

// Create persiste una cuenta nueva. Una violación del constraint único de
// email (carrera entre dos registros) se traduce a ErrEmailAlreadyExists.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, name, company, email, phone, password_hash, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		account.ID, account.Name, account.Company, account.Email, account.Phone,
		account.PasswordHash, account.Approved, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get account by id")
}

// GetByEmail obtiene una cuenta por email (comparación exacta).
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, email), "get account by email")
}

func (r *AccountRepo) scanOne(row pgx.Row, op string) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.Name, &a.Company, &a.Email, &a.Phone,
		&a.PasswordHash, &a.Approved, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

// Update actualiza una cuenta.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET name = $2, company = $3, email = $4, phone = $5,
			password_hash = $6, approved = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		account.ID, account.Name, account.Company, account.Email, account.Phone,
		account.PasswordHash, account.Approved, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// List devuelve todas las cuentas, más recientes primero.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Company, &a.Email, &a.Phone,
			&a.PasswordHash, &a.Approved, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina la cuenta; recovery_codes y access_events caen por cascada.
func (r *AccountRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// Count total de cuentas.
func (r *AccountRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM accounts`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// CountApproved total de cuentas aprobadas.
func (r *AccountRepo) CountApproved() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM accounts WHERE approved`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count approved accounts: %w", err)
	}
	return n, nil
}
