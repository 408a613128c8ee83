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

	"github.com/nomadeprod/backoffice-api/internal/application/auth"
	"github.com/nomadeprod/backoffice-api/internal/application/billing"
	"github.com/nomadeprod/backoffice-api/internal/application/usecase"
	inframail "github.com/nomadeprod/backoffice-api/internal/infrastructure/mail"
	infrapdf "github.com/nomadeprod/backoffice-api/internal/infrastructure/pdf"
	"github.com/nomadeprod/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/nomadeprod/backoffice-api/internal/interfaces/http"
	"github.com/nomadeprod/backoffice-api/pkg/config"
	"github.com/nomadeprod/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Nom d'expéditeur des emails : profil société si renseigné, sinon le
	// nom de l'application.
	senderName := cfg.App.Name
	if profile, err := settingsRepo.Get(); err == nil && profile != nil && profile.SenderName != "" {
		senderName = profile.SenderName
	}
	mailer := inframail.NewGomailSender(cfg.SMTP, senderName)
	if !mailer.Configured() {
		log.Warn().Msg("transport SMTP non configuré, l'envoi de factures répondra 503")
	}

	pdfGenerator := infrapdf.NewMarotoGenerator()

	invoiceUC := billing.NewInvoiceUseCase(
		txRunner, invoiceRepo, employeeRepo, settingsRepo,
		pdfGenerator, mailer, cfg.Billing.InvoicePrefix,
	)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nomade Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:  invoiceUC,
		ProjectUC:  projectUC,
		EmployeeUC: employeeUC,
		ExpenseUC:  expenseUC,
		SettingsUC: settingsUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
