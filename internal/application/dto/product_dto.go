package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada de creación/actualización de producto (admin).
type ProductRequest struct {
	Nombre         string          `json:"nombre" validate:"required,max=150"`
	Precio         decimal.Decimal `json:"precio" validate:"gt=0"`
	Marca          *string         `json:"marca" validate:"omitempty,max=100"`
	IDSubcategoria *int64          `json:"id_subcategoria" validate:"omitempty,gt=0"`
	IDProveedor    *int64          `json:"id_proveedor" validate:"omitempty,gt=0"`
}

// ProductResponse producto con nombres de subcategoría, categoría y proveedor.
type ProductResponse struct {
	IDProducto     int64           `json:"id_producto"`
	Nombre         string          `json:"nombre"`
	Precio         decimal.Decimal `json:"precio"`
	Marca          *string         `json:"marca"`
	IDSubcategoria *int64          `json:"id_subcategoria"`
	Subcategoria   *string         `json:"subcategoria"`
	IDCategoria    *int64          `json:"id_categoria"`
	Categoria      *string         `json:"categoria"`
	IDProveedor    *int64          `json:"id_proveedor"`
	Proveedor      *string         `json:"proveedor"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Success   bool              `json:"success"`
	Productos []ProductResponse `json:"productos"`
}

// ProductItemResponse un producto.
type ProductItemResponse struct {
	Success  bool            `json:"success"`
	Producto ProductResponse `json:"producto"`
}
