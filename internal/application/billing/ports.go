package billing

import (
	"context"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// SaleTxRunner ejecuta fn dentro de una transacción con un SaleRepository atado a ella.
// Si fn devuelve error se hace rollback de la cabecera y de todas las líneas.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}

// InvoicePDFGenerator dibuja un InvoiceDocument ya resuelto.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}
