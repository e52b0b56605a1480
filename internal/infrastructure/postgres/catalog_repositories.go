package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
)

var (
	_ repository.CategoryRepository         = (*CategoryRepo)(nil)
	_ repository.ProductRepository          = (*ProductRepo)(nil)
	_ repository.DocumentRepository         = (*DocumentRepo)(nil)
	_ repository.CompanyDocumentRepository  = (*CompanyDocumentRepo)(nil)
	_ repository.HomeNotificationRepository = (*HomeNotificationRepo)(nil)
)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// Create persiste una categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.SortOrder, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT id, name, description, sort_order, created_at FROM categories WHERE id = $1`
	var c entity.Category
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return &c, nil
}

// List devuelve las categorías ordenadas por sort_order.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `SELECT id, name, description, sort_order, created_at FROM categories ORDER BY sort_order, created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina la categoría; productos y documentos caen por cascada.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Count total de categorías.
func (r *CategoryRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, wattage, availability, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Wattage, product.Availability,
		product.SortOrder, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, category_id, wattage, availability, sort_order, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.Wattage, &p.Availability, &p.SortOrder, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// ListByCategory devuelve los productos de una categoría ordenados por sort_order.
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, wattage, availability, sort_order, created_at
		FROM products WHERE category_id = $1 ORDER BY sort_order, created_at`
	rows, err := r.pool.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Wattage, &p.Availability, &p.SortOrder, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina el producto y sus documentos (cascada).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Count total de productos.
func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Create persiste un documento de producto.
func (r *DocumentRepo) Create(document *entity.Document) error {
	query := `
		INSERT INTO documents (id, product_id, doc_type, doc_name, download_link, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		document.ID, document.ProductID, document.DocType, document.DocName,
		document.DownloadLink, document.SortOrder, document.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `
		SELECT id, product_id, doc_type, doc_name, download_link, sort_order, created_at
		FROM documents WHERE id = $1`
	var d entity.Document
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.ProductID, &d.DocType, &d.DocName, &d.DownloadLink, &d.SortOrder, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document by id: %w", err)
	}
	return &d, nil
}

// ListByProduct devuelve los documentos de un producto ordenados por sort_order.
func (r *DocumentRepo) ListByProduct(productID string) ([]*entity.Document, error) {
	query := `
		SELECT id, product_id, doc_type, doc_name, download_link, sort_order, created_at
		FROM documents WHERE product_id = $1 ORDER BY sort_order, created_at`
	rows, err := r.pool.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.ProductID, &d.DocType, &d.DocName, &d.DownloadLink, &d.SortOrder, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un documento.
func (r *DocumentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// CompanyDocumentRepo implementación del puerto CompanyDocumentRepository sobre PostgreSQL.
type CompanyDocumentRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyDocumentRepository construye el adaptador para documentos corporativos.
func NewCompanyDocumentRepository(pool *pgxpool.Pool) *CompanyDocumentRepo {
	return &CompanyDocumentRepo{pool: pool}
}

// Create persiste un documento corporativo.
func (r *CompanyDocumentRepo) Create(document *entity.CompanyDocument) error {
	query := `
		INSERT INTO company_documents (id, location, doc_type, doc_name, download_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		document.ID, document.Location, document.DocType, document.DocName,
		document.DownloadLink, document.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento corporativo por ID.
func (r *CompanyDocumentRepo) GetByID(id string) (*entity.CompanyDocument, error) {
	query := `
		SELECT id, location, doc_type, doc_name, download_link, created_at
		FROM company_documents WHERE id = $1`
	var d entity.CompanyDocument
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Location, &d.DocType, &d.DocName, &d.DownloadLink, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company document by id: %w", err)
	}
	return &d, nil
}

// List devuelve todos los documentos corporativos.
func (r *CompanyDocumentRepo) List() ([]*entity.CompanyDocument, error) {
	query := `
		SELECT id, location, doc_type, doc_name, download_link, created_at
		FROM company_documents ORDER BY location, created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list company documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompanyDocument
	for rows.Next() {
		var d entity.CompanyDocument
		if err := rows.Scan(&d.ID, &d.Location, &d.DocType, &d.DocName, &d.DownloadLink, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un documento corporativo.
func (r *CompanyDocumentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM company_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company document: %w", err)
	}
	return nil
}

// HomeNotificationRepo implementación del puerto HomeNotificationRepository sobre PostgreSQL.
type HomeNotificationRepo struct {
	pool *pgxpool.Pool
}

// NewHomeNotificationRepository construye el adaptador para notificaciones de portada.
func NewHomeNotificationRepository(pool *pgxpool.Pool) *HomeNotificationRepo {
	return &HomeNotificationRepo{pool: pool}
}

// Create persiste una notificación.
func (r *HomeNotificationRepo) Create(notification *entity.HomeNotification) error {
	query := `
		INSERT INTO home_notifications (id, title, description, kind, active, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		notification.ID, notification.Title, notification.Description, notification.Kind,
		notification.Active, notification.SortOrder, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert home notification: %w", err)
	}
	return nil
}

// ListActive devuelve las notificaciones activas ordenadas por sort_order.
func (r *HomeNotificationRepo) ListActive() ([]*entity.HomeNotification, error) {
	query := `
		SELECT id, title, description, kind, active, sort_order, created_at
		FROM home_notifications WHERE active ORDER BY sort_order, created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list home notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.HomeNotification
	for rows.Next() {
		var n entity.HomeNotification
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.Kind, &n.Active, &n.SortOrder, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan home notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Delete elimina una notificación.
func (r *HomeNotificationRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM home_notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete home notification: %w", err)
	}
	return nil
}
