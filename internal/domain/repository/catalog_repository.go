package repository

import "github.com/gautamsolar/certportal/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	// Delete elimina la categoría; productos y documentos caen por cascada.
	Delete(id string) error
	Count() (int, error)
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Delete(id string) error
	Count() (int, error)
}

// DocumentRepository define el puerto de persistencia para Document (DIP).
type DocumentRepository interface {
	Create(document *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	ListByProduct(productID string) ([]*entity.Document, error)
	Delete(id string) error
}

// CompanyDocumentRepository define el puerto de persistencia para CompanyDocument (DIP).
type CompanyDocumentRepository interface {
	Create(document *entity.CompanyDocument) error
	GetByID(id string) (*entity.CompanyDocument, error)
	List() ([]*entity.CompanyDocument, error)
	Delete(id string) error
}

// HomeNotificationRepository define el puerto de persistencia para HomeNotification (DIP).
type HomeNotificationRepository interface {
	Create(notification *entity.HomeNotification) error
	ListActive() ([]*entity.HomeNotification, error)
	Delete(id string) error
}
