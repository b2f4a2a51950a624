package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo (tabla producto).
// Los campos *Name y CategoryID solo se llenan en lecturas con JOIN.
type Product struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	Brand         *string
	SubcategoryID *int64
	SupplierID    *int64

	SubcategoryName *string
	CategoryID      *int64
	CategoryName    *string
	SupplierName    *string
}
