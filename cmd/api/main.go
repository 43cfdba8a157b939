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

	"github.com/jhoicas/Distribuidora-api/internal/application/auth"
	"github.com/jhoicas/Distribuidora-api/internal/application/einvoice"
	"github.com/jhoicas/Distribuidora-api/internal/application/report"
	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/Distribuidora-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Distribuidora-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Distribuidora-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Distribuidora-api/internal/infrastructure/ubl"
	httpRouter "github.com/jhoicas/Distribuidora-api/internal/interfaces/http"
	"github.com/jhoicas/Distribuidora-api/pkg/config"
	"github.com/jhoicas/Distribuidora-api/pkg/logger"

	_ "github.com/jhoicas/Distribuidora-api/docs"
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		lineRepo     repository.OrderLineRepository
		txRepo       repository.StockTransactionRepository
		userRepo     repository.UserRepository
		einvoiceRepo repository.EInvoiceRequestRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		// Modo demo sin PostgreSQL: todo en memoria, nada persiste.
		lineRepo = memory.NewOrderLineStore()
		txRepo = memory.NewStockTransactionStore()
		userRepo = memory.NewUserStore()
		einvoiceRepo = memory.NewEInvoiceRequestStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		lineRepo = postgres.NewOrderLineRepository(pool)
		txRepo = postgres.NewStockTransactionRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		einvoiceRepo = postgres.NewEInvoiceRequestRepository(pool)
	}

	stockUC := stock.NewLedgerUseCase(lineRepo, txRepo, nil, log)
	reportUC := report.NewStockReportUseCase(stockUC, infrapdf.NewMarotoStockReportGenerator())
	einvoiceUC := einvoice.NewCaptureUseCase(einvoiceRepo, ubl.NewRequestXMLBuilder(), nil)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
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
		Title:    "Distribuidora Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:    stockUC,
		ReportUC:   reportUC,
		EInvoiceUC: einvoiceUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
