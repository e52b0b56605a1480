package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gautamsolar/certportal/internal/application/auth"
	"github.com/gautamsolar/certportal/internal/application/recovery"
	"github.com/gautamsolar/certportal/internal/application/usecase"
	"github.com/gautamsolar/certportal/internal/infrastructure/mail"
	"github.com/gautamsolar/certportal/internal/infrastructure/postgres"
	httpRouter "github.com/gautamsolar/certportal/internal/interfaces/http"
	"github.com/gautamsolar/certportal/pkg/config"
	"github.com/gautamsolar/certportal/pkg/logger"
	"github.com/gautamsolar/certportal/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	codeRepo := postgres.NewRecoveryCodeRepository(pool)
	eventRepo := postgres.NewAccessEventRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	companyDocRepo := postgres.NewCompanyDocumentRepository(pool)
	notificationRepo := postgres.NewHomeNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions := session.NewJWTManager(session.Config{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpMinutes,
		Issuer:     cfg.Session.Issuer,
	})
	notifier := mail.NewSMTPNotifier(cfg.SMTP)

	authUC := auth.NewAuthUseCase(accountRepo, eventRepo, notifier, sessions, auth.AdminConfig{
		Email:      cfg.Admin.Email,
		Password:   cfg.Admin.Password,
		NotifyAddr: cfg.SMTP.AdminEmail,
	}, log)
	recoveryUC := recovery.NewUseCase(accountRepo, codeRepo, eventRepo, txRunner, notifier, cfg.SMTP.AdminEmail, log)
	portalUC := usecase.NewPortalUseCase(categoryRepo, productRepo, documentRepo, companyDocRepo, notificationRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, productRepo, documentRepo, companyDocRepo, notificationRepo)
	dashboardUC := usecase.NewDashboardUseCase(accountRepo, categoryRepo, productRepo, eventRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cert Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		RecoveryUC:  recoveryUC,
		PortalUC:    portalUC,
		CatalogUC:   catalogUC,
		DashboardUC: dashboardUC,
		Sessions:    sessions,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
