package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/application/recovery"
	"github.com/gautamsolar/certportal/internal/domain"
)

// RecoveryHandler maneja el flujo de recuperación de contraseña.
type RecoveryHandler struct {
	uc *recovery.UseCase
}

// NewRecoveryHandler construye el handler de recuperación.
func NewRecoveryHandler(uc *recovery.UseCase) *RecoveryHandler {
	return &RecoveryHandler{uc: uc}
}

// ForgotPassword godoc
// @Summary      Solicitar código de recuperación por email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.OKResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func (h *RecoveryHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RequestReset(c.Context(), in.Email); err != nil {
		if err == domain.ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
		}
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "email no registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo emitir el código"})
	}
	return c.JSON(dto.OKResponse{Success: true, Message: "código enviado al email registrado"})
}

// VerifyCode godoc
// @Summary      Verificar el código recibido
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCodeRequest  true  "email, code"
// @Success      200   {object}  dto.VerifyCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      410   {object}  dto.ErrorResponse
// @Router       /api/auth/verify-otp [post]
func (h *RecoveryHandler) VerifyCode(c *fiber.Ctx) error {
	var in dto.VerifyCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.VerifyCode(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "email no registrado"})
		case domain.ErrNoActiveCode:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_CODE", Message: "no hay código activo, solicite uno nuevo"})
		case domain.ErrCodeExpired:
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "CODE_EXPIRED", Message: "el código expiró, solicite uno nuevo"})
		case domain.ErrCodeMismatch:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CODE_MISMATCH", Message: "código incorrecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo verificar el código"})
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Reemplazar la contraseña con un token de verificación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "email, token, new_password, confirm_password"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *RecoveryHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ResetPassword(c.Context(), in); err != nil {
		switch err {
		case domain.ErrPasswordMismatch:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_MISMATCH", Message: "las contraseñas no coinciden"})
		case domain.ErrValidation:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password mínimo 6 caracteres"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "email no registrado"})
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o vencido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cambiar la contraseña"})
	}
	return c.JSON(dto.OKResponse{Success: true, Message: "contraseña actualizada"})
}
