package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rolexfittings/pipestock-api/internal/application/auth"
	"github.com/rolexfittings/pipestock-api/internal/application/ledger"
	"github.com/rolexfittings/pipestock-api/internal/application/masterdata"
	"github.com/rolexfittings/pipestock-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reconciliation *ledger.ReconciliationUseCase
	Report         *report.UseCase
	MasterData     *masterdata.UseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Operaciones del libro (protegido)
	ledgerHandler := NewLedgerHandler(deps.Reconciliation, deps.Report)
	inv := protected.Group("/inventory")
	inv.Post("/in", ledgerHandler.Receive)
	inv.Post("/out", ledgerHandler.Issue)
	inv.Post("/adjustments", ledgerHandler.Adjust)
	inv.Post("/transfers", ledgerHandler.Transfer)
	inv.Get("/records", ledgerHandler.ListRecords)
	inv.Put("/records/:id", ledgerHandler.EditRecord)
	inv.Delete("/records/:id", ledgerHandler.DeleteRecord)

	// Lotes (protegido)
	batchHandler := NewBatchHandler(deps.Reconciliation, deps.Report)
	batches := protected.Group("/batches")
	batches.Get("/open", batchHandler.OpenBatches)
	batches.Get("/:id/records", batchHandler.History)
	batches.Put("/:id", batchHandler.Edit)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.Report)
	reports := protected.Group("/reports")
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/stock/export", reportHandler.Export)
	reports.Post("/summary", reportHandler.Summary)

	// Datos maestros (protegido)
	mdHandler := NewMasterDataHandler(deps.MasterData)
	md := protected.Group("/masterdata")
	md.Get("/", mdHandler.FixedLists)
	md.Get("/:kind", mdHandler.List)
	md.Post("/:kind", mdHandler.Add)
}
