package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/usecase"
)

// CategoryHandler CRUD admin de categorías y subcategorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener categoría
// @Tags         admin-categorias
// @Produce      json
// @Param        id   path  int  true  "id_categoria"
// @Success      200  {object}  dto.CategoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/categoria/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         admin-categorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "nombre"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/categoria [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         admin-categorias
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id_categoria"
// @Param        body  body  dto.CategoryRequest  true  "nombre"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/categoria/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CategoryRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Falla con 409 si tiene subcategorías.
// @Tags         admin-categorias
// @Produce      json
// @Param        id   path  int  true  "id_categoria"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/categoria/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SubcategoriesByCategory godoc
// @Summary      Subcategorías de una categoría
// @Tags         admin-categorias
// @Produce      json
// @Param        id_categoria  path  int  true  "id_categoria"
// @Success      200  {object}  dto.SubcategoryListResponse
// @Router       /admin/subcategorias/{id_categoria} [get]
func (h *CategoryHandler) SubcategoriesByCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id_categoria")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListSubcategoriesByCategory(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetSubcategory godoc
// @Summary      Obtener subcategoría
// @Tags         admin-subcategorias
// @Produce      json
// @Param        id   path  int  true  "id_subcategoria"
// @Success      200  {object}  dto.SubcategoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/subcategoria/{id} [get]
func (h *CategoryHandler) GetSubcategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetSubcategory(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateSubcategory godoc
// @Summary      Crear subcategoría
// @Tags         admin-subcategorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubcategoryRequest  true  "nombre, id_categoria"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/subcategoria [post]
func (h *CategoryHandler) CreateSubcategory(c *fiber.Ctx) error {
	var in dto.SubcategoryRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateSubcategory(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateSubcategory godoc
// @Summary      Actualizar subcategoría
// @Tags         admin-subcategorias
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "id_subcategoria"
// @Param        body  body  dto.SubcategoryRequest  true  "nombre, id_categoria"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/subcategoria/{id} [put]
func (h *CategoryHandler) UpdateSubcategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.SubcategoryRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateSubcategory(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteSubcategory godoc
// @Summary      Eliminar subcategoría
// @Tags         admin-subcategorias
// @Produce      json
// @Param        id   path  int  true  "id_subcategoria"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/subcategoria/{id} [delete]
func (h *CategoryHandler) DeleteSubcategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.DeleteSubcategory(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
