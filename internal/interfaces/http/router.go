package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/auth"
	"github.com/jhoicas/Distribuidora-api/internal/application/einvoice"
	"github.com/jhoicas/Distribuidora-api/internal/application/report"
	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC    *stock.LedgerUseCase
	ReportUC   *report.StockReportUseCase
	EInvoiceUC *einvoice.CaptureUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock (protegido). Las escrituras manuales son de admin/bodeguero;
	// la reversa de pedidos, solo de admin.
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/totals", stockHandler.GetTotals)
	stockGroup.Get("/available", stockHandler.GetAvailable)
	stockGroup.Post("/validate", stockHandler.Validate)
	stockGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), stockHandler.RecordMovement)
	stockGroup.Post("/orders/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), stockHandler.RecordOrder)
	stockGroup.Post("/orders/:id/reverse", RequireRole(entity.RoleAdmin), stockHandler.ReverseOrder)
	stockGroup.Get("/summary", stockHandler.Summary)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock/pdf", reportHandler.DownloadStockPDF)

	// Facturación electrónica (protegido)
	einvoices := protected.Group("/einvoice-requests")
	einvoiceHandler := NewEInvoiceHandler(deps.EInvoiceUC)
	einvoices.Post("/", einvoiceHandler.Capture)
	einvoices.Get("/:id", einvoiceHandler.GetByID)
}
