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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/application/auth"
	"github.com/jhoicas/Alquiler-api/internal/application/documents"
	"github.com/jhoicas/Alquiler-api/internal/application/orders"
	"github.com/jhoicas/Alquiler-api/internal/application/payments"
	"github.com/jhoicas/Alquiler-api/internal/application/returns"
	appsequence "github.com/jhoicas/Alquiler-api/internal/application/sequence"
	"github.com/jhoicas/Alquiler-api/internal/application/stock"
	"github.com/jhoicas/Alquiler-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Alquiler-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Alquiler-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Alquiler-api/internal/interfaces/http"
	"github.com/jhoicas/Alquiler-api/internal/jobs"
	"github.com/jhoicas/Alquiler-api/pkg/config"
	"github.com/jhoicas/Alquiler-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	cashRepo := postgres.NewCashRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	codes := appsequence.NewUseCase(counterRepo, cfg.Billing.CodeWidth)
	taxRate := decimal.NewFromFloat(cfg.Billing.TaxRate)

	orderUC := orders.NewUseCase(orderRepo, productRepo, clientRepo, codes, taxRate, cfg.Billing.DispatchLeadDays)
	paymentUC := payments.NewUseCase(txRunner, cashRepo, codes)
	returnsUC := returns.NewUseCase(txRunner, paymentUC)
	stockUC := stock.NewUseCase(txRunner)
	productUC := usecase.NewProductUseCase(productRepo, codes)
	clientUC := usecase.NewClientUseCase(clientRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	documentUC := documents.NewUseCase(orderRepo, companyRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Barrido diario: marca POR_RETIRAR los pedidos con evento vencido.
	returnsJob := jobs.NewReturnsJob(orderRepo, log)
	scheduler := jobs.NewScheduler(cfg.Scheduler, returnsJob, log)
	scheduler.Start()
	defer scheduler.Stop()

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
		Title:    "Alquiler API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		OrderUC:    orderUC,
		PaymentUC:  paymentUC,
		ReturnsUC:  returnsUC,
		StockUC:    stockUC,
		ProductUC:  productUC,
		ClientUC:   clientUC,
		CompanyUC:  companyUC,
		DocumentUC: documentUC,
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
