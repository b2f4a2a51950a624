package billing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// CreateSaleUseCase registra una venta (cabecera + líneas) en una sola transacción.
//
// El precio unitario se toma del carrito: es el precio vigente cuando el cliente
// agregó el producto y queda guardado en cada línea.
type CreateSaleUseCase struct {
	txRunner SaleTxRunner
	events   ports.EventPublisher
}

// NewCreateSaleUseCase construye el caso de uso. events puede ser nil.
func NewCreateSaleUseCase(txRunner SaleTxRunner, events ports.EventPublisher) *CreateSaleUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	return &CreateSaleUseCase{txRunner: txRunner, events: events}
}

// CreateSale valida el carrito, calcula subtotal/IVA/total y persiste la venta.
//
// Errores:
//   - domain.ErrUnauthenticated  sin sesión.
//   - domain.ErrInvalidInput     carrito vacío o línea incompleta/inválida.
//   - domain.ErrConflict         código de factura repetido.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, sess *auth.Session, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	lines, err := parseCart(in.Items)
	if err != nil {
		return nil, err
	}

	subtotal, tax, total := entity.ComputeTotals(lines)
	method := strings.TrimSpace(in.MetodoPago)
	if method == "" {
		method = entity.DefaultPaymentMethod
	}
	userID := sess.UserID
	sale := &entity.Sale{
		UserID:        &userID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: method,
	}

	err = uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		seq, err := saleRepo.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		sale.InvoiceCode = entity.InvoiceCode(seq)
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for i := range lines {
			lines[i].SaleID = sale.ID
			if err := saleRepo.CreateDetail(ctx, &lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := ports.SaleCreatedEvent{
		SaleID:      sale.ID,
		InvoiceCode: sale.InvoiceCode,
		UserID:      sale.UserID,
		Total:       sale.Total,
		Date:        saleDate(sale.Date),
	}
	if err := uc.events.PublishSaleCreated(ctx, ev); err != nil {
		log.Warn().Err(err).Str("factura", sale.InvoiceCode).Msg("ventas: no se pudo publicar venta.creada")
	}

	return &dto.CreateSaleResponse{
		Success:  true,
		Message:  "Venta creada exitosamente",
		IDVenta:  sale.ID,
		Factura:  sale.InvoiceCode,
		Subtotal: subtotal,
		IVA:      tax,
		Total:    total,
	}, nil
}

// parseCart convierte el carrito en líneas de venta. Primero verifica que todas las
// líneas traigan los tres campos y después convierte valores.
func parseCart(items []dto.CartItemRequest) ([]entity.SaleDetail, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: El carrito está vacío", domain.ErrInvalidInput)
	}
	for _, it := range items {
		if it.IDProducto.Empty() {
			return nil, fmt.Errorf("%w: Falta id_producto en un producto del carrito", domain.ErrInvalidInput)
		}
		if it.Cantidad.Empty() || it.PrecioUnitario.Empty() {
			return nil, fmt.Errorf("%w: Falta cantidad o precio en el producto %s", domain.ErrInvalidInput, *it.IDProducto)
		}
	}

	lines := make([]entity.SaleDetail, 0, len(items))
	for _, it := range items {
		productID, err := it.IDProducto.Int64()
		if err != nil || productID <= 0 {
			return nil, fmt.Errorf("%w: id_producto inválido: %s", domain.ErrInvalidInput, *it.IDProducto)
		}
		qty, errQty := it.Cantidad.Int64()
		price, errPrice := it.PrecioUnitario.Decimal()
		if errQty != nil || errPrice != nil || qty < 1 || qty > math.MaxInt32 || !price.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: Cantidad o precio inválido en el producto %d", domain.ErrInvalidInput, productID)
		}
		lines = append(lines, entity.SaleDetail{
			ProductID: productID,
			Quantity:  int(qty),
			UnitPrice: price,
			Subtotal:  price.Mul(decimal.NewFromInt(qty)),
		})
	}
	return lines, nil
}

// saleDate evita publicar una fecha cero si el repositorio no devolvió la de la BD.
func saleDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
