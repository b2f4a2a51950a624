package repository

import (
	"context"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
// Las escrituras deben ejecutarse dentro de la transacción de la venta.
type SaleRepository interface {
	// NextInvoiceNumber reserva el siguiente número de factura (secuencia de BD).
	NextInvoiceNumber(ctx context.Context) (int64, error)
	// Create inserta la cabecera y llena ID y Date.
	Create(ctx context.Context, sale *entity.Sale) error
	CreateDetail(ctx context.Context, detail *entity.SaleDetail) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	GetDetails(ctx context.Context, saleID int64) ([]*entity.SaleDetail, error)
	// List devuelve todas las ventas, más recientes primero.
	List(ctx context.Context) ([]*entity.Sale, error)
	// DetailsBySales devuelve las líneas agrupadas por id de venta.
	DetailsBySales(ctx context.Context, saleIDs []int64) (map[int64][]*entity.SaleDetail, error)
}
