package repository

import (
	"context"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

// SubcategoryRepository define el puerto de persistencia para Subcategory.
type SubcategoryRepository interface {
	Create(ctx context.Context, sub *entity.Subcategory) error
	GetByID(ctx context.Context, id int64) (*entity.Subcategory, error)
	List(ctx context.Context) ([]*entity.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Subcategory, error)
	Update(ctx context.Context, sub *entity.Subcategory) error
	Delete(ctx context.Context, id int64) error
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id int64) error
}
