package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/analytics"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/usecase"
	infraamqp "github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/amqp"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/mail"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/memory"
	infrapdf "github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/pdf"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/postgres"
	infraredis "github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/redis"
	httpRouter "github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/interfaces/http"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/config"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/logger"
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

	// Precios y totales viajan como números JSON, no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sesiones y contadores del limitador: Redis si está configurado, memoria si no.
	var (
		sessions       auth.SessionStore = memory.NewSessionStore()
		limiterStorage fiber.Storage
		rdb            *goredis.Client
	)
	if cfg.Redis.URL != "" {
		rdb, err = infraredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessions = infraredis.NewSessionStore(rdb)
		limiterStorage = infraredis.NewStorage(rdb)
	} else {
		log.Warn().Msg("REDIS_URL vacío: sesiones y límite de peticiones en memoria")
	}

	var events ports.EventPublisher = ports.NopPublisher{}
	if cfg.AMQP.URL != "" {
		publisher, err := infraamqp.NewPublisher(cfg.AMQP.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer publisher.Close()
		events = publisher

		if cfg.SMTP.Enabled() {
			consumer := infraamqp.NewContactConsumer(cfg.AMQP.URL, mail.NewMailer(cfg.SMTP))
			go func() {
				if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
					log.Error().Err(err).Msg("consumidor de contacto finalizado")
				}
			}()
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.SessionConfig{
		Secret: cfg.Session.Secret,
		Issuer: cfg.Session.Issuer,
		TTL:    time.Duration(cfg.Session.TTLMinutes) * time.Minute,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, subcategoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, events)
	createSaleUC := billing.NewCreateSaleUseCase(txRunner, events)
	invoicePDFUC := billing.NewPDFUseCase(saleRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	invoiceReportUC := billing.NewInvoiceReportUseCase(saleRepo)
	statsUC := analytics.NewStatsUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger())
	if cfg.HTTP.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.HTTP.AllowOrigins,
			AllowCredentials: true,
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Supermercado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		SupplierUC:    supplierUC,
		ContactUC:     contactUC,
		CreateSaleUC:  createSaleUC,
		InvoicePDF:    invoicePDFUC,
		InvoiceReport: invoiceReportUC,
		StatsUC:       statsUC,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		RateLimit: httpRouter.RateLimit{
			Max:    cfg.RateLimit.Max,
			Window: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		},
		LimiterStorage: limiterStorage,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
