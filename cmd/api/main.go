package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/brunocardsx/sys-Obras/internal/application/analytics"
	"github.com/brunocardsx/sys-Obras/internal/application/auth"
	"github.com/brunocardsx/sys-Obras/internal/application/catalog"
	"github.com/brunocardsx/sys-Obras/internal/application/ledger"
	"github.com/brunocardsx/sys-Obras/internal/infrastructure/postgres"
	httpRouter "github.com/brunocardsx/sys-Obras/internal/interfaces/http"
	"github.com/brunocardsx/sys-Obras/pkg/config"
	"github.com/brunocardsx/sys-Obras/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	projectRepo := postgres.NewProjectRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invoiceUC := ledger.NewInvoiceUseCase(txRunner, invoiceRepo, projectRepo, productRepo)
	projectUC := catalog.NewProjectUseCase(projectRepo, invoiceRepo)
	productUC := catalog.NewProductUseCase(productRepo, invoiceRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, projectRepo)
	authUC := auth.NewUseCase(auth.Config{
		AdminUser:     cfg.Auth.AdminUser,
		AdminPassHash: cfg.Auth.AdminPassHash,
		JWTSecret:     cfg.JWT.Secret,
		ExpMinutes:    cfg.JWT.Expiration,
		Issuer:        cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProjectUC:   projectUC,
		ProductUC:   productUC,
		InvoiceUC:   invoiceUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
