package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/domain"
	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
)

// CatalogUseCase administración del catálogo: categorías, productos,
// documentos, documentos corporativos y notificaciones de portada.
// Solo accesible con sesión de admin (lo impone el middleware HTTP).
type CatalogUseCase struct {
	categories    repository.CategoryRepository
	products      repository.ProductRepository
	documents     repository.DocumentRepository
	companyDocs   repository.CompanyDocumentRepository
	notifications repository.HomeNotificationRepository
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	documents repository.DocumentRepository,
	companyDocs repository.CompanyDocumentRepository,
	notifications repository.HomeNotificationRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categories:    categories,
		products:      products,
		documents:     documents,
		companyDocs:   companyDocs,
		notifications: notifications,
	}
}

// CreateCategory da de alta una categoría.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (string, error) {
	if in.Name == "" {
		return "", domain.ErrValidation
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		CreatedAt:   time.Now(),
	}
	if err := uc.categories.Create(category); err != nil {
		return "", err
	}
	return category.ID, nil
}

// DeleteCategory elimina la categoría; productos y documentos caen en cascada.
func (uc *CatalogUseCase) DeleteCategory(id string) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(id)
}

// CreateProduct da de alta un producto dentro de una categoría existente.
func (uc *CatalogUseCase) CreateProduct(in dto.CreateProductRequest) (string, error) {
	if in.Wattage == "" || in.CategoryID == "" {
		return "", domain.ErrValidation
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", domain.ErrNotFound
	}
	availability := in.Availability
	if availability == "" {
		availability = entity.AvailabilityAvailable
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		CategoryID:   in.CategoryID,
		Wattage:      in.Wattage,
		Availability: availability,
		SortOrder:    in.SortOrder,
		CreatedAt:    time.Now(),
	}
	if err := uc.products.Create(product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// DeleteProduct elimina el producto y sus documentos.
func (uc *CatalogUseCase) DeleteProduct(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

// CreateDocument da de alta un documento de producto. Si el tipo es "other"
// y viene un nombre, el nombre pasa a ser el tipo.
func (uc *CatalogUseCase) CreateDocument(in dto.CreateDocumentRequest) (string, error) {
	if in.DocType == "" || in.DownloadLink == "" || in.ProductID == "" {
		return "", domain.ErrValidation
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}
	docType, docName := normalizeDocType(in.DocType, in.DocName)
	document := &entity.Document{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		DocType:      docType,
		DocName:      docName,
		DownloadLink: in.DownloadLink,
		SortOrder:    in.SortOrder,
		CreatedAt:    time.Now(),
	}
	if err := uc.documents.Create(document); err != nil {
		return "", err
	}
	return document.ID, nil
}

// DeleteDocument elimina un documento de producto.
func (uc *CatalogUseCase) DeleteDocument(id string) error {
	document, err := uc.documents.GetByID(id)
	if err != nil {
		return err
	}
	if document == nil {
		return domain.ErrNotFound
	}
	return uc.documents.Delete(id)
}

// CreateCompanyDoc da de alta un documento corporativo.
func (uc *CatalogUseCase) CreateCompanyDoc(in dto.CreateCompanyDocRequest) (string, error) {
	if in.Location == "" || in.DocType == "" || in.DownloadLink == "" {
		return "", domain.ErrValidation
	}
	docType, docName := normalizeDocType(in.DocType, in.DocName)
	document := &entity.CompanyDocument{
		ID:           uuid.New().String(),
		Location:     in.Location,
		DocType:      docType,
		DocName:      docName,
		DownloadLink: in.DownloadLink,
		CreatedAt:    time.Now(),
	}
	if err := uc.companyDocs.Create(document); err != nil {
		return "", err
	}
	return document.ID, nil
}

// DeleteCompanyDoc elimina un documento corporativo.
func (uc *CatalogUseCase) DeleteCompanyDoc(id string) error {
	document, err := uc.companyDocs.GetByID(id)
	if err != nil {
		return err
	}
	if document == nil {
		return domain.ErrNotFound
	}
	return uc.companyDocs.Delete(id)
}

// CreateNotification da de alta una notificación de portada.
func (uc *CatalogUseCase) CreateNotification(in dto.CreateNotificationRequest) (string, error) {
	if in.Title == "" {
		return "", domain.ErrValidation
	}
	notification := &entity.HomeNotification{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Kind:        in.Kind,
		Active:      in.Active,
		SortOrder:   in.SortOrder,
		CreatedAt:   time.Now(),
	}
	if err := uc.notifications.Create(notification); err != nil {
		return "", err
	}
	return notification.ID, nil
}

// DeleteNotification elimina una notificación de portada.
func (uc *CatalogUseCase) DeleteNotification(id string) error {
	return uc.notifications.Delete(id)
}

// normalizeDocType aplica la regla del portal: un tipo "other" con nombre
// propio se guarda con el nombre como tipo.
func normalizeDocType(docType, docName string) (string, string) {
	if strings.EqualFold(docType, "other") && docName != "" {
		return docName, ""
	}
	return docType, docName
}
