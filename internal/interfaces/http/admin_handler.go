package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gautamsolar/certportal/internal/application/auth"
	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/application/usecase"
	"github.com/gautamsolar/certportal/internal/domain"
)

// AdminHandler maneja las operaciones del panel: cuentas y dashboard.
// Todas las rutas van detrás de RequireAdmin.
type AdminHandler struct {
	authUC      *auth.AuthUseCase
	dashboardUC *usecase.DashboardUseCase
}

// NewAdminHandler construye el handler del panel.
func NewAdminHandler(authUC *auth.AuthUseCase, dashboardUC *usecase.DashboardUseCase) *AdminHandler {
	return &AdminHandler{authUC: authUC, dashboardUC: dashboardUC}
}

// Dashboard godoc
// @Summary      Contadores del panel
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cargar el dashboard"})
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar todas las cuentas
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.authUC.ListAccounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar las cuentas"})
	}
	return c.JSON(out)
}

// ApproveUser godoc
// @Summary      Aprobar una cuenta pendiente
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/approve [post]
func (h *AdminHandler) ApproveUser(c *fiber.Ctx) error {
	out, err := h.authUC.Approve(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo aprobar la cuenta"})
	}
	return c.JSON(out)
}

// RejectUser godoc
// @Summary      Rechazar (eliminar) una cuenta
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) RejectUser(c *fiber.Ctx) error {
	if err := h.authUC.Reject(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo rechazar la cuenta"})
	}
	return c.JSON(dto.OKResponse{Success: true, Message: "cuenta eliminada"})
}

// ListEvents godoc
// @Summary      Actividad reciente (registros, logins, resets)
// @Tags         admin
// @Produce      json
// @Param        limit   query  int  false  "máximo de eventos"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.AccessEventResponse
// @Router       /api/admin/events [get]
func (h *AdminHandler) ListEvents(c *fiber.Ctx) error {
	out, err := h.dashboardUC.ListEvents(c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar los eventos"})
	}
	return c.JSON(out)
}
