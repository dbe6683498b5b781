package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/orders"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC *usecase.SupplierUseCase
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	UserUC     *usecase.UserUseCase
	PurchaseUC *orders.PurchaseUseCase
	SaleUC     *orders.SaleUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	AppName    string
	Logger     zerolog.Logger
	// Metrics es opcional; nil deshabilita /metrics y la instrumentación HTTP.
	Metrics *metrics.Metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenido a " + deps.AppName, "docs": "/docs"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	// Escrituras: bodega mueve proveedores, productos y compras; ventas mueve clientes y ventas.
	stock := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	sales := RequireRole(entity.RoleAdmin, entity.RoleVendedor)

	// Suppliers
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	protected.Post("/supps", stock, supplierHandler.Create)
	protected.Get("/supps", supplierHandler.List)
	protected.Get("/supp/:taxid", supplierHandler.Get)
	protected.Patch("/supp/:taxid", stock, supplierHandler.Update)
	protected.Delete("/supp/:taxid", stock, supplierHandler.Delete)

	// Products (anidados bajo proveedor)
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Post("/supp/:taxid/prod", stock, productHandler.Create)
	protected.Get("/supp/:taxid/prods", productHandler.ListBySupplier)
	protected.Get("/supp/:taxid/prod/:port_number", productHandler.Get)
	protected.Patch("/supp/:taxid/prod/:port_number", stock, productHandler.Update)
	protected.Delete("/supp/:taxid/prod/:port_number", stock, productHandler.Delete)
	protected.Get("/prods", productHandler.List)

	// Purchase orders
	poHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	protected.Post("/pos", stock, poHandler.Create)
	protected.Get("/pos", poHandler.List)
	protected.Get("/po_id/:id", poHandler.Get)
	protected.Get("/po_id/:id/pdf", poHandler.Document)
	protected.Patch("/po_id/:id", stock, poHandler.Update)
	protected.Delete("/po_id/:id", stock, poHandler.Delete)
	protected.Get("/po/:order_id", poHandler.GetByOrderID)
	protected.Patch("/po/:order_id", stock, poHandler.UpdateByOrderID)
	protected.Delete("/po/:order_id", stock, poHandler.DeleteByOrderID)

	// Customers
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	protected.Post("/custs", sales, customerHandler.Create)
	protected.Get("/custs", customerHandler.List)
	protected.Get("/cust/:taxid", customerHandler.Get)
	protected.Patch("/cust/:taxid", sales, customerHandler.Update)
	protected.Delete("/cust/:taxid", sales, customerHandler.Delete)

	// Sale orders
	soHandler := NewSaleOrderHandler(deps.SaleUC)
	protected.Post("/sos", sales, soHandler.Create)
	protected.Get("/sos", soHandler.List)
	protected.Get("/so_id/:id", soHandler.Get)
	protected.Get("/so_id/:id/pdf", soHandler.Document)
	protected.Patch("/so_id/:id", sales, soHandler.Update)
	protected.Delete("/so_id/:id", sales, soHandler.Delete)
	protected.Get("/so/:order_id", soHandler.GetByOrderID)
	protected.Patch("/so/:order_id", sales, soHandler.UpdateByOrderID)
	protected.Delete("/so/:order_id", sales, soHandler.DeleteByOrderID)
}
