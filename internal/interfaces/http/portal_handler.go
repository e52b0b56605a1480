package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/application/usecase"
	"github.com/gautamsolar/certportal/internal/domain"
)

// PortalHandler expone el catálogo público y las descargas protegidas.
type PortalHandler struct {
	uc *usecase.PortalUseCase
}

// NewPortalHandler construye el handler del portal.
func NewPortalHandler(uc *usecase.PortalUseCase) *PortalHandler {
	return &PortalHandler{uc: uc}
}

// PortalData godoc
// @Summary      Catálogo completo con enlaces resueltos según la sesión
// @Tags         portal
// @Produce      json
// @Success      200  {object}  dto.PortalDataResponse
// @Router       /api/portal-data [get]
func (h *PortalHandler) PortalData(c *fiber.Ctx) error {
	out, err := h.uc.PortalData(IsLoggedIn(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cargar el portal"})
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Notificaciones activas de la portada
// @Tags         portal
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *PortalHandler) Notifications(c *fiber.Ctx) error {
	out, err := h.uc.ActiveNotifications()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron cargar las notificaciones"})
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar documento de producto (requiere sesión)
// @Tags         portal
// @Param        id  path  string  true  "ID del documento"
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /download/{id} [get]
func (h *PortalHandler) Download(c *fiber.Ctx) error {
	if !IsLoggedIn(c) {
		return c.Redirect(usecase.LoginPath+"?next="+c.OriginalURL(), fiber.StatusFound)
	}
	link, err := h.uc.Download(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la descarga"})
	}
	return c.Redirect(link, fiber.StatusFound)
}

// DownloadCompanyDoc godoc
// @Summary      Descargar documento corporativo (requiere sesión)
// @Tags         portal
// @Param        id  path  string  true  "ID del documento"
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /download/company/{id} [get]
func (h *PortalHandler) DownloadCompanyDoc(c *fiber.Ctx) error {
	if !IsLoggedIn(c) {
		return c.Redirect(usecase.LoginPath+"?next="+c.OriginalURL(), fiber.StatusFound)
	}
	link, err := h.uc.DownloadCompanyDoc(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la descarga"})
	}
	return c.Redirect(link, fiber.StatusFound)
}
