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
	"github.com/swaggo/swag"

	"github.com/jhoicas/Compras-api/docs"
	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/lookup"
	"github.com/jhoicas/Compras-api/internal/application/orders"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
	"github.com/jhoicas/Compras-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Compras-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Compras-api/internal/interfaces/http"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// @title                       Compras API
// @version                     1.0
// @description                 API de compras, ventas e inventario con costo promedio ponderado.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	policy, err := orders.ParseEditPolicy(cfg.Orders.EditPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("ORDER_EDIT_POLICY")
	}

	ctx := context.Background()

	var (
		repos    orders.TxRepos
		txRunner orders.TxRunner
		userRepo repository.UserRepository
	)
	switch cfg.App.StoreDriver {
	case "memory":
		store := memory.NewStore()
		repos, txRunner, userRepo = store.Repos(), store, store.Users()
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("aplicar esquema")
			}
			log.Info().Msg("esquema aplicado")
		}
		repos, txRunner, userRepo = postgres.Repos(pool), postgres.NewTxRunner(pool), postgres.NewUserRepository(pool)
	}

	var m *metrics.Metrics
	settings := orders.Settings{
		EditPolicy: policy,
		Documents:  infrapdf.NewOrderDocumentRenderer(cfg.App.Name),
		Logger:     log.Component("orders"),
	}
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Prefix)
		settings.Recorder = m
	}

	checker := lookup.NewChecker(repos.Suppliers, repos.Customers, repos.Products, repos.PurchaseOrders, repos.SaleOrders)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers, checker)
	customerUC := usecase.NewCustomerUseCase(repos.Customers, checker)
	productUC := usecase.NewProductUseCase(repos.Products, checker)
	userUC := usecase.NewUserUseCase(userRepo)
	purchaseUC := orders.NewPurchaseUseCase(txRunner, repos.PurchaseOrders, checker, settings)
	saleUC := orders.NewSaleUseCase(txRunner, repos.SaleOrders, checker, settings)
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

	// OpenAPI registrado por el paquete docs; la UI en /docs solo si existe el archivo.
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger UI deshabilitada, archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplierUC: supplierUC,
		CustomerUC: customerUC,
		ProductUC:  productUC,
		UserUC:     userUC,
		PurchaseUC: purchaseUC,
		SaleUC:     saleUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		AppName:    cfg.App.Name,
		Logger:     log.Component("http"),
		Metrics:    m,
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
