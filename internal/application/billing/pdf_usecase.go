package billing

import (
	"context"
	"fmt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// PDFUseCase regenera la factura de una venta ya persistida.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator}
}

// BuildDocument carga la venta y sus líneas y arma el contenido lógico.
// Retorna domain.ErrNotFound si la venta no existe.
func (uc *PDFUseCase) BuildDocument(ctx context.Context, saleID int64) (*InvoiceDocument, error) {
	doc, _, err := uc.load(ctx, saleID)
	return doc, err
}

// DownloadInvoicePDF genera el PDF de la venta.
//
// Retorna:
//   - (pdfBytes, filename, nil)    si todo sale bien.
//   - domain.ErrUnauthenticated    sin sesión.
//   - domain.ErrNotFound           si la venta no existe o pertenece a otro cliente.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, sess *auth.Session, saleID int64) ([]byte, string, error) {
	if sess == nil {
		return nil, "", domain.ErrUnauthenticated
	}
	doc, owner, err := uc.load(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	if !sess.IsAdmin() && (owner == nil || *owner != sess.UserID) {
		return nil, "", errSaleNotFound()
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	return pdfBytes, doc.FileName, nil
}

func (uc *PDFUseCase) load(ctx context.Context, saleID int64) (*InvoiceDocument, *int64, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, nil, fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, nil, errSaleNotFound()
	}
	details, err := uc.saleRepo.GetDetails(ctx, saleID)
	if err != nil {
		return nil, nil, fmt.Errorf("pdf: obtener detalles: %w", err)
	}
	return BuildInvoiceDocument(sale, details), sale.UserID, nil
}

// Un cliente no distingue una venta ajena de una inexistente.
func errSaleNotFound() error {
	return fmt.Errorf("%w: Venta no encontrada", domain.ErrNotFound)
}
