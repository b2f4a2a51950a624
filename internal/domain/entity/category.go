package entity

// Category agrupa subcategorías (tabla categoria).
type Category struct {
	ID          int64
	Name        string
	Description *string
}

// Subcategory pertenece a una Category (tabla subcategoria).
type Subcategory struct {
	ID           int64
	Name         string
	CategoryID   int64
	CategoryName *string // solo en lecturas con JOIN
}

// Supplier proveedor de productos (tabla proveedor).
type Supplier struct {
	ID      int64
	Name    string
	Address *string
	Phone   *string
}
