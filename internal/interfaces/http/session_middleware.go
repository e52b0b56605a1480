package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/pkg/session"
)

// Locals keys para la sesión en Fiber.
const (
	LocalAccountID   = "account_id"
	LocalAccountName = "account_name"
	LocalIsAdmin     = "is_admin"
)

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireUser exige una sesión de usuario válida y carga AccountID y nombre
// en c.Locals.
func RequireUser(sessions session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "se requiere sesión"})
		}
		s, err := sessions.Parse(token)
		if err != nil || s.AccountID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalAccountID, s.AccountID)
		c.Locals(LocalAccountName, s.Name)
		return c.Next()
	}
}

// RequireAdmin exige una sesión con el marcador de administrador.
func RequireAdmin(sessions session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "se requiere sesión de admin"})
		}
		s, err := sessions.Parse(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "sesión inválida o expirada"})
		}
		if !s.Admin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere sesión de admin"})
		}
		c.Locals(LocalIsAdmin, true)
		return c.Next()
	}
}

// OptionalUser carga la sesión de usuario si viene y es válida; nunca corta
// la request. Es la base de la regla de gating del portal.
func OptionalUser(sessions session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if s, err := sessions.Parse(token); err == nil && s.AccountID != "" {
				c.Locals(LocalAccountID, s.AccountID)
				c.Locals(LocalAccountName, s.Name)
			}
		}
		return c.Next()
	}
}

// GetAccountID devuelve el AccountID del contexto (después del middleware de sesión).
func GetAccountID(c *fiber.Ctx) string {
	v := c.Locals(LocalAccountID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAccountName devuelve el nombre de la cuenta del contexto.
func GetAccountName(c *fiber.Ctx) string {
	v := c.Locals(LocalAccountName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsLoggedIn indica si la request lleva una sesión de usuario válida.
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetAccountID(c) != ""
}
