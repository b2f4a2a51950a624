package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tasa fija de IVA aplicada a toda venta.
var TaxRate = decimal.RequireFromString("0.12")

// DefaultPaymentMethod se usa cuando el carrito no indica método de pago.
const DefaultPaymentMethod = "Efectivo"

// Sale cabecera de una venta (tabla venta).
type Sale struct {
	ID            int64
	InvoiceCode   string // F000001
	UserID        *int64
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Date          time.Time

	CustomerName *string // JOIN usuario.nombre
}

// SaleDetail línea de una venta (tabla detalle_venta).
type SaleDetail struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal

	ProductName  *string // JOIN producto.nombre
	ProductBrand *string // JOIN producto.marca
}

// InvoiceCode formatea el número secuencial como código de factura.
func InvoiceCode(seq int64) string {
	return fmt.Sprintf("F%06d", seq)
}

// ComputeTotals devuelve subtotal, IVA y total para las líneas dadas.
// El IVA se redondea a 2 decimales y el total es exactamente subtotal + IVA.
func ComputeTotals(lines []SaleDetail) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal)
	}
	tax = subtotal.Mul(TaxRate).Round(2)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}
