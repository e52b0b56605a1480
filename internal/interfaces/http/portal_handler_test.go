package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/application/usecase"
	"github.com/gautamsolar/certportal/internal/domain/entity"
	apphttp "github.com/gautamsolar/certportal/internal/interfaces/http"
	"github.com/gautamsolar/certportal/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del catálogo
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct{ items []*entity.Category }

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.items = append(r.items, c); return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) List() ([]*entity.Category, error) { return r.items, nil }
func (r *fakeCategoryRepo) Delete(id string) error            { return nil }
func (r *fakeCategoryRepo) Count() (int, error)               { return len(r.items), nil }

type fakeProductRepo struct{ items []*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.items = append(r.items, p); return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { return nil }
func (r *fakeProductRepo) Count() (int, error)    { return len(r.items), nil }

type fakeDocumentRepo struct{ items []*entity.Document }

func (r *fakeDocumentRepo) Create(d *entity.Document) error { r.items = append(r.items, d); return nil }
func (r *fakeDocumentRepo) GetByID(id string) (*entity.Document, error) {
	for _, d := range r.items {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (r *fakeDocumentRepo) ListByProduct(productID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.items {
		if d.ProductID == productID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeDocumentRepo) Delete(id string) error { return nil }

type fakeCompanyDocRepo struct{ items []*entity.CompanyDocument }

func (r *fakeCompanyDocRepo) Create(d *entity.CompanyDocument) error {
	r.items = append(r.items, d)
	return nil
}
func (r *fakeCompanyDocRepo) GetByID(id string) (*entity.CompanyDocument, error) {
	for _, d := range r.items {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (r *fakeCompanyDocRepo) List() ([]*entity.CompanyDocument, error) { return r.items, nil }
func (r *fakeCompanyDocRepo) Delete(id string) error                   { return nil }

type fakeNotificationRepo struct{ items []*entity.HomeNotification }

func (r *fakeNotificationRepo) Create(n *entity.HomeNotification) error {
	r.items = append(r.items, n)
	return nil
}
func (r *fakeNotificationRepo) ListActive() ([]*entity.HomeNotification, error) {
	var out []*entity.HomeNotification
	for _, n := range r.items {
		if n.Active {
			out = append(out, n)
		}
	}
	return out, nil
}
func (r *fakeNotificationRepo) Delete(id string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	docID        = "doc-1"
	companyDocID = "cdoc-1"
	realDocLink  = "https://cdn.example.com/datasheet-540.pdf"
	realCompLink = "https://cdn.example.com/iso-9001.pdf"
)

// buildPortalApp arma el portal con un catálogo mínimo: una categoría con un
// producto y un documento, más un documento corporativo.
func buildPortalApp(t *testing.T) (*fiber.App, session.Manager) {
	t.Helper()

	categories := &fakeCategoryRepo{items: []*entity.Category{
		{ID: "cat-1", Name: "Mono PERC", Description: "Serie M10"},
	}}
	products := &fakeProductRepo{items: []*entity.Product{
		{ID: "prod-1", CategoryID: "cat-1", Wattage: "540W", Availability: entity.AvailabilityAvailable},
	}}
	documents := &fakeDocumentRepo{items: []*entity.Document{
		{ID: docID, ProductID: "prod-1", DocType: "Datasheet", DownloadLink: realDocLink},
	}}
	companyDocs := &fakeCompanyDocRepo{items: []*entity.CompanyDocument{
		{ID: companyDocID, Location: "Planta Haridwar", DocType: "ISO 9001", DownloadLink: realCompLink},
	}}

	uc := usecase.NewPortalUseCase(categories, products, documents, companyDocs, &fakeNotificationRepo{})
	sessions := testSessions(t, 60)
	handler := apphttp.NewPortalHandler(uc)

	app := fiber.New()
	app.Get("/api/portal-data", apphttp.OptionalUser(sessions), handler.PortalData)
	app.Get("/download/company/:id", apphttp.OptionalUser(sessions), handler.DownloadCompanyDoc)
	app.Get("/download/:id", apphttp.OptionalUser(sessions), handler.Download)
	return app, sessions
}

func getPortalData(t *testing.T, app *fiber.App, authHeader string) *dto.PortalDataResponse {
	t.Helper()
	resp := doRequest(t, app, "/api/portal-data", authHeader)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.PortalDataResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return &out
}

// ──────────────────────────────────────────────────────────────────────────────
// Portal data: reescritura de enlaces según la sesión
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión todos los enlaces apuntan al login y el enlace real nunca viaja.
func TestPortalData_AnonimoNoVeEnlacesReales(t *testing.T) {
	app, _ := buildPortalApp(t)

	out := getPortalData(t, app, "")

	assert.False(t, out.IsLoggedIn)
	require.Len(t, out.Categories, 1)
	require.Len(t, out.Categories[0].Products, 1)
	require.Len(t, out.Categories[0].Products[0].Documents, 1)

	doc := out.Categories[0].Products[0].Documents[0]
	assert.Equal(t, usecase.LoginPath, doc.Link, "sin sesión el enlace va al login")
	assert.True(t, doc.RequiresLogin)

	comp := out.CompanyDocs["Planta Haridwar"]
	require.Len(t, comp, 1)
	assert.Equal(t, usecase.LoginPath, comp[0].Link)
}

// Con sesión los enlaces apuntan a las rutas de descarga del portal.
func TestPortalData_ConSesionVeRutasDeDescarga(t *testing.T) {
	app, sessions := buildPortalApp(t)

	out := getPortalData(t, app, userToken(t, sessions))

	assert.True(t, out.IsLoggedIn)
	doc := out.Categories[0].Products[0].Documents[0]
	assert.Equal(t, "/download/"+docID, doc.Link)
	assert.False(t, doc.RequiresLogin)

	comp := out.CompanyDocs["Planta Haridwar"]
	require.Len(t, comp, 1)
	assert.Equal(t, "/download/company/"+companyDocID, comp[0].Link)
}

// ──────────────────────────────────────────────────────────────────────────────
// Descargas: la decisión depende solo de la sesión
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión la descarga redirige al login conservando el destino original.
func TestDownload_AnonimoRedirigeAlLogin(t *testing.T) {
	app, _ := buildPortalApp(t)

	resp := doRequest(t, app, "/download/"+docID, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, usecase.LoginPath+"?next=/download/"+docID, resp.Header.Get("Location"),
		"el redirect debe conservar el destino para volver tras el login")
}

func TestDownload_ConSesionRedirigeAlEnlaceReal(t *testing.T) {
	app, sessions := buildPortalApp(t)

	resp := doRequest(t, app, "/download/"+docID, userToken(t, sessions))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, realDocLink, resp.Header.Get("Location"))
}

func TestDownload_DocumentoInexistente(t *testing.T) {
	app, sessions := buildPortalApp(t)

	resp := doRequest(t, app, "/download/no-existe", userToken(t, sessions))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadCompanyDoc_AnonimoRedirigeAlLogin(t *testing.T) {
	app, _ := buildPortalApp(t)

	resp := doRequest(t, app, "/download/company/"+companyDocID, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, usecase.LoginPath+"?next=/download/company/"+companyDocID, resp.Header.Get("Location"))
}

func TestDownloadCompanyDoc_ConSesion(t *testing.T) {
	app, sessions := buildPortalApp(t)

	resp := doRequest(t, app, "/download/company/"+companyDocID, userToken(t, sessions))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, realCompLink, resp.Header.Get("Location"))
}
