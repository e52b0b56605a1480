package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/application/usecase"
	"github.com/gautamsolar/certportal/internal/domain"
)

// CatalogHandler altas y bajas del catálogo; solo admin.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) created(c *fiber.Ctx, id string, err error) error {
	if err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "faltan campos requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso padre no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo crear el recurso"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Success: true, ID: id})
}

func (h *CatalogHandler) deleted(c *fiber.Ctx, err error) error {
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo eliminar el recurso"})
	}
	return c.JSON(dto.OKResponse{Success: true})
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description?, sort_order?"
// @Success      201   {object}  dto.CreatedResponse
// @Router       /api/admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateCategory(in)
	return h.created(c, id, err)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría (cascada a productos y documentos)
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	return h.deleted(c, h.uc.DeleteCategory(c.Params("id")))
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "category_id, wattage, availability?, sort_order?"
// @Success      201   {object}  dto.CreatedResponse
// @Router       /api/admin/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateProduct(in)
	return h.created(c, id, err)
}

// DeleteProduct godoc
// @Summary      Eliminar producto (cascada a documentos)
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	return h.deleted(c, h.uc.DeleteProduct(c.Params("id")))
}

// CreateDocument godoc
// @Summary      Crear documento de producto
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "product_id, doc_type, doc_name?, download_link, sort_order?"
// @Success      201   {object}  dto.CreatedResponse
// @Router       /api/admin/documents [post]
func (h *CatalogHandler) CreateDocument(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateDocument(in)
	return h.created(c, id, err)
}

// DeleteDocument godoc
// @Summary      Eliminar documento de producto
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/admin/documents/{id} [delete]
func (h *CatalogHandler) DeleteDocument(c *fiber.Ctx) error {
	return h.deleted(c, h.uc.DeleteDocument(c.Params("id")))
}

// CreateCompanyDoc godoc
// @Summary      Crear documento corporativo
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyDocRequest  true  "location, doc_type, doc_name?, download_link"
// @Success      201   {object}  dto.CreatedResponse
// @Router       /api/admin/company-docs [post]
func (h *CatalogHandler) CreateCompanyDoc(c *fiber.Ctx) error {
	var in dto.CreateCompanyDocRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateCompanyDoc(in)
	return h.created(c, id, err)
}

// DeleteCompanyDoc godoc
// @Summary      Eliminar documento corporativo
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/admin/company-docs/{id} [delete]
func (h *CatalogHandler) DeleteCompanyDoc(c *fiber.Ctx) error {
	return h.deleted(c, h.uc.DeleteCompanyDoc(c.Params("id")))
}

// CreateNotification godoc
// @Summary      Crear notificación de portada
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "title, description?, kind?, active, sort_order?"
// @Success      201   {object}  dto.CreatedResponse
// @Router       /api/admin/notifications [post]
func (h *CatalogHandler) CreateNotification(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateNotification(in)
	return h.created(c, id, err)
}

// DeleteNotification godoc
// @Summary      Eliminar notificación de portada
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/admin/notifications/{id} [delete]
func (h *CatalogHandler) DeleteNotification(c *fiber.Ctx) error {
	return h.deleted(c, h.uc.DeleteNotification(c.Params("id")))
}
