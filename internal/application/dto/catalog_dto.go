package dto

// CategoryRequest entrada de categoría (admin).
type CategoryRequest struct {
	Nombre      string  `json:"nombre" validate:"required,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=255"`
}

// CategoryResponse salida de categoría.
type CategoryResponse struct {
	IDCategoria int64   `json:"id_categoria"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// CategoryListResponse listado de categorías.
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Categorias []CategoryResponse `json:"categorias"`
}

// CategoryItemResponse una categoría.
type CategoryItemResponse struct {
	Success   bool             `json:"success"`
	Categoria CategoryResponse `json:"categoria"`
}

// SubcategoryRequest entrada de subcategoría (admin).
type SubcategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	IDCategoria int64  `json:"id_categoria" validate:"required,gt=0"`
}

// SubcategoryResponse salida de subcategoría.
type SubcategoryResponse struct {
	IDSubcategoria  int64   `json:"id_subcategoria"`
	Nombre          string  `json:"nombre"`
	IDCategoria     int64   `json:"id_categoria"`
	CategoriaNombre *string `json:"categoria_nombre,omitempty"`
}

// SubcategoryListResponse listado de subcategorías.
type SubcategoryListResponse struct {
	Success       bool                  `json:"success"`
	Subcategorias []SubcategoryResponse `json:"subcategorias"`
}

// SubcategoryItemResponse una subcategoría.
type SubcategoryItemResponse struct {
	Success      bool                `json:"success"`
	Subcategoria SubcategoryResponse `json:"subcategoria"`
}

// SupplierRequest entrada de proveedor (admin).
type SupplierRequest struct {
	Nombre    string  `json:"nombre" validate:"required,max=100"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=20"`
}

// SupplierResponse salida de proveedor.
type SupplierResponse struct {
	IDProveedor int64   `json:"id_proveedor"`
	Nombre      string  `json:"nombre"`
	Direccion   *string `json:"direccion"`
	Telefono    *string `json:"telefono"`
}

// SupplierListResponse listado de proveedores.
type SupplierListResponse struct {
	Success     bool               `json:"success"`
	Proveedores []SupplierResponse `json:"proveedores"`
}

// SupplierItemResponse un proveedor.
type SupplierItemResponse struct {
	Success   bool             `json:"success"`
	Proveedor SupplierResponse `json:"proveedor"`
}
