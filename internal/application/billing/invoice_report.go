package billing

import (
	"context"
	"fmt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// InvoiceReportUseCase listado de facturas con sus productos para el panel admin.
type InvoiceReportUseCase struct {
	saleRepo repository.SaleRepository
}

// NewInvoiceReportUseCase construye el caso de uso.
func NewInvoiceReportUseCase(saleRepo repository.SaleRepository) *InvoiceReportUseCase {
	return &InvoiceReportUseCase{saleRepo: saleRepo}
}

// ListInvoices devuelve todas las ventas (más recientes primero) con sus líneas.
// Las líneas se cargan en una sola consulta adicional.
func (uc *InvoiceReportUseCase) ListInvoices(ctx context.Context) (*dto.InvoiceListResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("facturas: listar ventas: %w", err)
	}
	ids := make([]int64, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	bySale, err := uc.saleRepo.DetailsBySales(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("facturas: listar detalles: %w", err)
	}

	out := make([]dto.InvoiceSummaryResponse, 0, len(sales))
	for _, s := range sales {
		lines := bySale[s.ID]
		products := make([]dto.InvoiceLineResponse, 0, len(lines))
		for _, d := range lines {
			products = append(products, dto.InvoiceLineResponse{
				Nombre:         valueOr(d.ProductName, DeletedProductName),
				Cantidad:       d.Quantity,
				PrecioUnitario: d.UnitPrice,
				Subtotal:       d.Subtotal,
			})
		}
		out = append(out, dto.InvoiceSummaryResponse{
			IDVenta:    s.ID,
			Factura:    s.InvoiceCode,
			Fecha:      s.Date,
			Subtotal:   s.Subtotal,
			IVA:        s.Tax,
			Total:      s.Total,
			MetodoPago: s.PaymentMethod,
			Cliente:    s.CustomerName,
			Productos:  products,
		})
	}
	return &dto.InvoiceListResponse{Success: true, Facturas: out}, nil
}
