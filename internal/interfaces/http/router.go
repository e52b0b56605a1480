package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gautamsolar/certportal/internal/application/auth"
	"github.com/gautamsolar/certportal/internal/application/recovery"
	"github.com/gautamsolar/certportal/internal/application/usecase"
	"github.com/gautamsolar/certportal/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	RecoveryUC  *recovery.UseCase
	PortalUC    *usecase.PortalUseCase
	CatalogUC   *usecase.CatalogUseCase
	DashboardUC *usecase.DashboardUseCase
	Sessions    session.Manager
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y recuperación (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	recoveryHandler := NewRecoveryHandler(deps.RecoveryUC)
	authGroup.Post("/forgot-password", recoveryHandler.ForgotPassword)
	authGroup.Post("/verify-otp", recoveryHandler.VerifyCode)
	authGroup.Post("/reset-password", recoveryHandler.ResetPassword)

	// Portal (público; la sesión, si viene, decide los enlaces)
	portalHandler := NewPortalHandler(deps.PortalUC)
	api.Get("/portal-data", OptionalUser(deps.Sessions), portalHandler.PortalData)
	api.Get("/notifications", portalHandler.Notifications)

	// Descargas: sin sesión redirigen al login con destino de retorno
	app.Get("/download/company/:id", OptionalUser(deps.Sessions), portalHandler.DownloadCompanyDoc)
	app.Get("/download/:id", OptionalUser(deps.Sessions), portalHandler.Download)

	// Login del panel (público)
	api.Post("/admin/login", authHandler.AdminLogin)

	// Panel de administración (requiere Bearer Token de admin)
	admin := api.Group("/admin", RequireAdmin(deps.Sessions))

	adminHandler := NewAdminHandler(deps.AuthUC, deps.DashboardUC)
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users/:id/approve", adminHandler.ApproveUser)
	admin.Delete("/users/:id", adminHandler.RejectUser)
	admin.Get("/events", adminHandler.ListEvents)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	admin.Post("/categories", catalogHandler.CreateCategory)
	admin.Delete("/categories/:id", catalogHandler.DeleteCategory)
	admin.Post("/products", catalogHandler.CreateProduct)
	admin.Delete("/products/:id", catalogHandler.DeleteProduct)
	admin.Post("/documents", catalogHandler.CreateDocument)
	admin.Delete("/documents/:id", catalogHandler.DeleteDocument)
	admin.Post("/company-docs", catalogHandler.CreateCompanyDoc)
	admin.Delete("/company-docs/:id", catalogHandler.DeleteCompanyDoc)
	admin.Post("/notifications", catalogHandler.CreateNotification)
	admin.Delete("/notifications/:id", catalogHandler.DeleteNotification)
}
