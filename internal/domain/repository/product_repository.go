package repository

import (
	"context"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// List y GetByID devuelven la vista con subcategoría, categoría y proveedor.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
