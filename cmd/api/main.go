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
	"github.com/rolexfittings/pipestock-api/internal/application/auth"
	"github.com/rolexfittings/pipestock-api/internal/application/ledger"
	"github.com/rolexfittings/pipestock-api/internal/application/masterdata"
	"github.com/rolexfittings/pipestock-api/internal/application/report"
	infraai "github.com/rolexfittings/pipestock-api/internal/infrastructure/ai"
	"github.com/rolexfittings/pipestock-api/internal/infrastructure/postgres"
	httpRouter "github.com/rolexfittings/pipestock-api/internal/interfaces/http"
	"github.com/rolexfittings/pipestock-api/pkg/config"
	"github.com/rolexfittings/pipestock-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	batchRepo := postgres.NewBatchRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	referenceRepo := postgres.NewReferenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconciliationUC := ledger.NewReconciliationUseCase(txRunner, batchRepo)
	// Cada cambio confirmado publica el snapshot agregado; útil para clientes
	// reactivos y para trazar el estado sin consultar la DB.
	reconciliationUC.Subscribe(func(snap ledger.StockSnapshot) {
		log.Debug().
			Int("batches", len(snap.Batches)).
			Int("aggregate_rows", len(snap.Rows)).
			Msg("stock snapshot actualizado")
	})

	// Servicio de resumen narrado: opcional, solo lectura.
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	reportUC := report.NewUseCase(batchRepo, ledgerRepo, geminiSvc)

	masterDataUC := masterdata.NewUseCase(referenceRepo)
	authUC := auth.NewUseCase(cfg.Auth.AccessCodeHash, auth.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		ExpMinutes: cfg.Auth.JWTExpMinutes,
		Issuer:     cfg.Auth.JWTIssuer,
	})

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
		Title:    "Pipestock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reconciliation: reconciliationUC,
		Report:         reportUC,
		MasterData:     masterDataUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.Auth.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
