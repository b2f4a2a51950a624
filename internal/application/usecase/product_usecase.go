package usecase

import (
	"context"
	"fmt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// ProductUseCase casos de uso de productos: listado público y CRUD de administración.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos con subcategoría, categoría y proveedor.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return &dto.ProductListResponse{Success: true, Productos: out}, nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductItemResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: Producto no encontrado", domain.ErrNotFound)
	}
	return &dto.ProductItemResponse{Success: true, Producto: toProductResponse(p)}, nil
}

// Create agrega un producto al catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.MessageResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return created("Producto creado exitosamente", p.ID), nil
}

// Update reemplaza los datos de un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.MessageResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return ok("Producto actualizado exitosamente"), nil
}

// Delete elimina un producto. Si tiene ventas asociadas el repositorio devuelve conflicto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return ok("Producto eliminado exitosamente"), nil
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if !in.Precio.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return &entity.Product{
		Name:          in.Nombre,
		Price:         in.Precio,
		Brand:         in.Marca,
		SubcategoryID: in.IDSubcategoria,
		SupplierID:    in.IDProveedor,
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		IDProducto:     p.ID,
		Nombre:         p.Name,
		Precio:         p.Price,
		Marca:          p.Brand,
		IDSubcategoria: p.SubcategoryID,
		Subcategoria:   p.SubcategoryName,
		IDCategoria:    p.CategoryID,
		Categoria:      p.CategoryName,
		IDProveedor:    p.SupplierID,
		Proveedor:      p.SupplierName,
	}
}
