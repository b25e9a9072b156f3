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
	"github.com/spf13/afero"

	"github.com/jhoicas/portal-rdp/docs"
	"github.com/jhoicas/portal-rdp/internal/application/auth"
	"github.com/jhoicas/portal-rdp/internal/application/census"
	"github.com/jhoicas/portal-rdp/internal/application/membership"
	"github.com/jhoicas/portal-rdp/internal/application/payments"
	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	infrapdf "github.com/jhoicas/portal-rdp/internal/infrastructure/pdf"
	"github.com/jhoicas/portal-rdp/internal/infrastructure/postgres"
	"github.com/jhoicas/portal-rdp/internal/infrastructure/storage"
	infrastripe "github.com/jhoicas/portal-rdp/internal/infrastructure/stripe"
	httpRouter "github.com/jhoicas/portal-rdp/internal/interfaces/http"
	"github.com/jhoicas/portal-rdp/pkg/config"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// @title                       Portal RDP API
// @version                     1.0
// @description                 Portal multi-empresa de activos de TI: censo de equipos, tickets de soporte y membresías con Stripe.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	internalRepo := postgres.NewInternalUserRepository(pool)
	clientRepo := postgres.NewClientUserRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	requestRepo := postgres.NewEquipmentRequestRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	eventRepo := postgres.NewWebhookEventRepository(pool)
	priceRepo := postgres.NewServicePriceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Responsivas en disco local bajo UPLOAD_DIR
	fileStore := storage.NewFileStore(afero.NewOsFs(), cfg.Storage.UploadDir)

	// Sin STRIPE_SECRET_KEY los endpoints de pago responden 503
	var provider payments.Provider
	if cfg.Stripe.SecretKey != "" {
		provider = infrastripe.New(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, nil)
	} else {
		log.Warn().Msg("STRIPE_SECRET_KEY no configurado: pagos deshabilitados")
	}

	authUC := auth.NewAuthUseCase(internalRepo, clientRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(internalRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, clientRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, clientRepo, internalRepo)
	catalogUC := usecase.NewCatalogUseCase(priceRepo, documentRepo, companyRepo, employeeRepo, infrapdf.NewResponsivaGenerator(), fileStore)
	censusUC := census.NewUseCase(txRunner, fileStore, employeeRepo, equipmentRepo, requestRepo, log)
	paymentsUC := payments.NewUseCase(provider, paymentRepo, eventRepo, payments.Config{
		Currency:   cfg.Stripe.Currency,
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
	}, log)
	membershipSvc := membership.NewService(paymentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.Storage.MaxBytes(),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CompanyUC:  companyUC,
		EmployeeUC: employeeUC,
		TicketUC:   ticketUC,
		CatalogUC:  catalogUC,
		CensusUC:   censusUC,
		PaymentsUC: paymentsUC,
		Membership: membershipSvc,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
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
