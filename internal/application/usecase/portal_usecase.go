package usecase

import (
	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/domain"
	"github.com/gautamsolar/certportal/internal/domain/repository"
)

// LoginPath destino al que se reescriben los enlaces de descarga sin sesión.
const LoginPath = "/login"

// PortalUseCase arma la vista pública del portal aplicando la regla de
// gating: el enlace de descarga real solo se expone con sesión iniciada, y la
// decisión depende únicamente del estado de la sesión, nunca de atributos del
// documento.
type PortalUseCase struct {
	categories    repository.CategoryRepository
	products      repository.ProductRepository
	documents     repository.DocumentRepository
	companyDocs   repository.CompanyDocumentRepository
	notifications repository.HomeNotificationRepository
}

// NewPortalUseCase construye el caso de uso del portal.
func NewPortalUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	documents repository.DocumentRepository,
	companyDocs repository.CompanyDocumentRepository,
	notifications repository.HomeNotificationRepository,
) *PortalUseCase {
	return &PortalUseCase{
		categories:    categories,
		products:      products,
		documents:     documents,
		companyDocs:   companyDocs,
		notifications: notifications,
	}
}

// PortalData devuelve el catálogo completo y los documentos corporativos
// agrupados por ubicación, con los enlaces ya resueltos según la sesión.
func (uc *PortalUseCase) PortalData(loggedIn bool) (*dto.PortalDataResponse, error) {
	companyDocs, err := uc.companyDocs.List()
	if err != nil {
		return nil, err
	}
	companyData := make(map[string][]dto.PortalDocument)
	for _, d := range companyDocs {
		companyData[d.Location] = append(companyData[d.Location], dto.PortalDocument{
			ID:            d.ID,
			Type:          d.DocType,
			Name:          d.DisplayName(),
			Link:          companyDocLink(d.ID, loggedIn),
			RequiresLogin: !loggedIn,
		})
	}

	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PortalCategory, 0, len(categories))
	for _, cat := range categories {
		products, err := uc.products.ListByCategory(cat.ID)
		if err != nil {
			return nil, err
		}
		productList := make([]dto.PortalProduct, 0, len(products))
		for _, p := range products {
			docs, err := uc.documents.ListByProduct(p.ID)
			if err != nil {
				return nil, err
			}
			docList := make([]dto.PortalDocument, 0, len(docs))
			for _, d := range docs {
				docList = append(docList, dto.PortalDocument{
					ID:            d.ID,
					Type:          d.DocType,
					Name:          d.DisplayName(),
					Link:          documentLink(d.ID, loggedIn),
					RequiresLogin: !loggedIn,
				})
			}
			productList = append(productList, dto.PortalProduct{
				ID:           p.ID,
				Wattage:      p.Wattage,
				Availability: p.Availability,
				Documents:    docList,
			})
		}
		out = append(out, dto.PortalCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Products:    productList,
		})
	}

	return &dto.PortalDataResponse{
		CompanyDocs: companyData,
		Categories:  out,
		IsLoggedIn:  loggedIn,
	}, nil
}

// Download resuelve el enlace real de un documento de producto.
func (uc *PortalUseCase) Download(docID string) (string, error) {
	document, err := uc.documents.GetByID(docID)
	if err != nil {
		return "", err
	}
	if document == nil {
		return "", domain.ErrNotFound
	}
	return document.DownloadLink, nil
}

// DownloadCompanyDoc resuelve el enlace real de un documento corporativo.
func (uc *PortalUseCase) DownloadCompanyDoc(docID string) (string, error) {
	document, err := uc.companyDocs.GetByID(docID)
	if err != nil {
		return "", err
	}
	if document == nil {
		return "", domain.ErrNotFound
	}
	return document.DownloadLink, nil
}

// ActiveNotifications devuelve las notificaciones activas de la portada.
func (uc *PortalUseCase) ActiveNotifications() ([]dto.NotificationResponse, error) {
	notifications, err := uc.notifications.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Kind:        n.Kind,
		})
	}
	return out, nil
}

func documentLink(id string, loggedIn bool) string {
	if !loggedIn {
		return LoginPath
	}
	return "/download/" + id
}

func companyDocLink(id string, loggedIn bool) string {
	if !loggedIn {
		return LoginPath
	}
	return "/download/company/" + id
}
