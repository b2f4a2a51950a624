package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/usecase"
)

// CatalogHandler listados públicos del catálogo (sin sesión).
type CatalogHandler struct {
	products   *usecase.ProductUseCase
	categories *usecase.CategoryUseCase
	suppliers  *usecase.SupplierUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products *usecase.ProductUseCase, categories *usecase.CategoryUseCase, suppliers *usecase.SupplierUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, categories: categories, suppliers: suppliers}
}

// Products godoc
// @Summary      Productos con categoría, subcategoría y proveedor
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /productos [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	out, err := h.products.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /categorias [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	out, err := h.categories.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Subcategories godoc
// @Summary      Subcategorías con el nombre de su categoría
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.SubcategoryListResponse
// @Router       /subcategorias [get]
func (h *CatalogHandler) Subcategories(c *fiber.Ctx) error {
	out, err := h.categories.ListSubcategories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Proveedores
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /proveedores [get]
func (h *CatalogHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.suppliers.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
