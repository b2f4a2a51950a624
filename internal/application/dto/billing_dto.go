package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemRequest línea del carrito. Los valores pueden llegar como número o cadena.
type CartItemRequest struct {
	IDProducto     *Numeric `json:"id_producto"`
	Cantidad       *Numeric `json:"cantidad"`
	PrecioUnitario *Numeric `json:"precio_unitario"`
}

// CreateSaleRequest entrada de POST /crear-venta.
type CreateSaleRequest struct {
	Items      []CartItemRequest `json:"items"`
	MetodoPago string            `json:"metodo_pago"`
}

// CreateSaleResponse salida de la venta creada.
type CreateSaleResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	IDVenta  int64           `json:"id_venta"`
	Factura  string          `json:"factura"`
	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
}

// InvoiceLineResponse producto dentro de una factura del listado admin.
type InvoiceLineResponse struct {
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// InvoiceSummaryResponse factura del listado admin con sus productos.
type InvoiceSummaryResponse struct {
	IDVenta    int64                 `json:"id_venta"`
	Factura    string                `json:"factura"`
	Fecha      time.Time             `json:"fecha"`
	Subtotal   decimal.Decimal       `json:"subtotal"`
	IVA        decimal.Decimal       `json:"iva"`
	Total      decimal.Decimal       `json:"total"`
	MetodoPago string                `json:"metodo_pago"`
	Cliente    *string               `json:"cliente"`
	Productos  []InvoiceLineResponse `json:"productos"`
}

// InvoiceListResponse salida de GET /admin/facturas.
type InvoiceListResponse struct {
	Success  bool                     `json:"success"`
	Facturas []InvoiceSummaryResponse `json:"facturas"`
}
