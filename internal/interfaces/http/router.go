package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/analytics"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/usecase"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// RateLimit límite de peticiones por IP en los formularios públicos.
type RateLimit struct {
	Max    int
	Window time.Duration
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	ContactUC     *usecase.ContactUseCase
	CreateSaleUC  *billing.CreateSaleUseCase
	InvoicePDF    *billing.PDFUseCase
	InvoiceReport *billing.InvoiceReportUseCase
	StatsUC       *analytics.StatsUseCase

	Cookie    CookieConfig
	RateLimit RateLimit
	// LimiterStorage nil = contadores en memoria del proceso.
	LimiterStorage fiber.Storage
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.AuthUC, deps.Cookie.Name))

	limited := newLimiter(deps.RateLimit, deps.LimiterStorage)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	app.Post("/registro", limited, authHandler.Register)
	app.Post("/login", limited, authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/obtener-usuario", authHandler.Me)

	// Catálogo (público)
	catalog := NewCatalogHandler(deps.ProductUC, deps.CategoryUC, deps.SupplierUC)
	app.Get("/productos", catalog.Products)
	app.Get("/categorias", catalog.Categories)
	app.Get("/subcategorias", catalog.Subcategories)
	app.Get("/proveedores", catalog.Suppliers)

	contactHandler := NewContactHandler(deps.ContactUC)
	app.Post("/contacto", limited, contactHandler.Submit)

	// Ventas (sesión obligatoria; el caso de uso responde 401 sin ella)
	saleHandler := NewSaleHandler(deps.CreateSaleUC)
	invoiceHandler := NewInvoiceHandler(deps.InvoicePDF, deps.InvoiceReport)
	app.Post("/crear-venta", saleHandler.Create)
	app.Get("/generar-factura/:id_venta", invoiceHandler.DownloadPDF)

	// Admin
	admin := app.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/estadisticas", NewDashboardHandler(deps.StatsUC).Stats)
	admin.Get("/facturas", invoiceHandler.List)

	productHandler := NewProductHandler(deps.ProductUC)
	admin.Get("/productos", productHandler.List)
	admin.Post("/producto", productHandler.Create)
	admin.Get("/producto/:id", productHandler.GetByID)
	admin.Put("/producto/:id", productHandler.Update)
	admin.Delete("/producto/:id", productHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	admin.Get("/categorias", catalog.Categories)
	admin.Post("/categoria", categoryHandler.Create)
	admin.Get("/categoria/:id", categoryHandler.GetByID)
	admin.Put("/categoria/:id", categoryHandler.Update)
	admin.Delete("/categoria/:id", categoryHandler.Delete)

	admin.Get("/subcategorias", catalog.Subcategories)
	admin.Get("/subcategorias/:id_categoria", categoryHandler.SubcategoriesByCategory)
	admin.Post("/subcategoria", categoryHandler.CreateSubcategory)
	admin.Get("/subcategoria/:id", categoryHandler.GetSubcategory)
	admin.Put("/subcategoria/:id", categoryHandler.UpdateSubcategory)
	admin.Delete("/subcategoria/:id", categoryHandler.DeleteSubcategory)

	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	admin.Get("/proveedores", catalog.Suppliers)
	admin.Post("/proveedor", supplierHandler.Create)
	admin.Get("/proveedor/:id", supplierHandler.GetByID)
	admin.Put("/proveedor/:id", supplierHandler.Update)
	admin.Delete("/proveedor/:id", supplierHandler.Delete)

	admin.Get("/contactos", contactHandler.List)
	admin.Get("/contacto/:id", contactHandler.GetByID)
	admin.Put("/contacto/:id/estado", contactHandler.UpdateStatus)
}

func newLimiter(rl RateLimit, storage fiber.Storage) fiber.Handler {
	cfg := limiter.Config{
		Max:        rl.Max,
		Expiration: rl.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "Demasiadas solicitudes, intenta más tarde",
			})
		},
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return limiter.New(cfg)
}
