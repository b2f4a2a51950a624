package usecase

import (
	"context"
	"fmt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías y subcategorías.
type CategoryUseCase struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, subcategories repository.SubcategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, subcategories: subcategories}
}

// ── Categorías ───────────────────────────────────────────────────────────────

func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Success: true, Categorias: out}, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryItemResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: Categoría no encontrada", domain.ErrNotFound)
	}
	return &dto.CategoryItemResponse{Success: true, Categoria: toCategoryResponse(c)}, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.MessageResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	c := &entity.Category{Name: in.Nombre, Description: in.Descripcion}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return created("Categoría creada exitosamente", c.ID), nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.MessageResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if err := uc.categories.Update(ctx, &entity.Category{ID: id, Name: in.Nombre, Description: in.Descripcion}); err != nil {
		return nil, err
	}
	return ok("Categoría actualizada exitosamente"), nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.categories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return ok("Categoría eliminada exitosamente"), nil
}

// ── Subcategorías ────────────────────────────────────────────────────────────

// ListSubcategories todas las subcategorías con el nombre de su categoría.
func (uc *CategoryUseCase) ListSubcategories(ctx context.Context) (*dto.SubcategoryListResponse, error) {
	list, err := uc.subcategories.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSubcategoryList(list), nil
}

// ListSubcategoriesByCategory subcategorías de una categoría.
func (uc *CategoryUseCase) ListSubcategoriesByCategory(ctx context.Context, categoryID int64) (*dto.SubcategoryListResponse, error) {
	list, err := uc.subcategories.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toSubcategoryList(list), nil
}

func (uc *CategoryUseCase) GetSubcategory(ctx context.Context, id int64) (*dto.SubcategoryItemResponse, error) {
	s, err := uc.subcategories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: Subcategoría no encontrada", domain.ErrNotFound)
	}
	return &dto.SubcategoryItemResponse{Success: true, Subcategoria: toSubcategoryResponse(s)}, nil
}

func (uc *CategoryUseCase) CreateSubcategory(ctx context.Context, in dto.SubcategoryRequest) (*dto.MessageResponse, error) {
	if in.Nombre == "" || in.IDCategoria <= 0 {
		return nil, fmt.Errorf("%w: nombre e id_categoria son requeridos", domain.ErrInvalidInput)
	}
	s := &entity.Subcategory{Name: in.Nombre, CategoryID: in.IDCategoria}
	if err := uc.subcategories.Create(ctx, s); err != nil {
		return nil, err
	}
	return created("Subcategoría creada exitosamente", s.ID), nil
}

func (uc *CategoryUseCase) UpdateSubcategory(ctx context.Context, id int64, in dto.SubcategoryRequest) (*dto.MessageResponse, error) {
	if in.Nombre == "" || in.IDCategoria <= 0 {
		return nil, fmt.Errorf("%w: nombre e id_categoria son requeridos", domain.ErrInvalidInput)
	}
	if err := uc.subcategories.Update(ctx, &entity.Subcategory{ID: id, Name: in.Nombre, CategoryID: in.IDCategoria}); err != nil {
		return nil, err
	}
	return ok("Subcategoría actualizada exitosamente"), nil
}

func (uc *CategoryUseCase) DeleteSubcategory(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.subcategories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return ok("Subcategoría eliminada exitosamente"), nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{IDCategoria: c.ID, Nombre: c.Name, Descripcion: c.Description}
}

func toSubcategoryResponse(s *entity.Subcategory) dto.SubcategoryResponse {
	return dto.SubcategoryResponse{
		IDSubcategoria:  s.ID,
		Nombre:          s.Name,
		IDCategoria:     s.CategoryID,
		CategoriaNombre: s.CategoryName,
	}
}

func toSubcategoryList(list []*entity.Subcategory) *dto.SubcategoryListResponse {
	out := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSubcategoryResponse(s))
	}
	return &dto.SubcategoryListResponse{Success: true, Subcategorias: out}
}
