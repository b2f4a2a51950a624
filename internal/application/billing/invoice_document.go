package billing

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// Textos fijos de la factura.
const (
	InvoiceTitle          = "FACTURA DE VENTA"
	DefaultCustomerName   = "Cliente General"
	DefaultBrand          = "N/A"
	DeletedProductName    = "Producto eliminado"
	invoiceDateLayout     = "02/01/2006 15:04"
	invoiceFooterThanks   = "Gracias por su compra"
	invoiceFooterSoftware = "Sistema de Ventas"
)

// InvoiceColumns cabecera de la tabla de productos.
var InvoiceColumns = []string{"Producto", "Marca", "Cant.", "Precio Unit.", "Total"}

// moneyPrinter agrupa miles con coma y usa punto decimal, como se escriben los quetzales.
var moneyPrinter = message.NewPrinter(language.English)

// LabeledValue par etiqueta/valor de los bloques de información y totales.
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// InvoiceLine fila de la tabla de productos, ya formateada.
type InvoiceLine struct {
	Product   string `json:"producto"`
	Brand     string `json:"marca"`
	Quantity  string `json:"cantidad"`
	UnitPrice string `json:"precio_unitario"`
	Total     string `json:"total"`
}

// InvoiceDocument contenido lógico de la factura. No depende del motor de PDF:
// dos construcciones a partir de la misma venta guardada son iguales.
type InvoiceDocument struct {
	Title       string         `json:"titulo"`
	InvoiceCode string         `json:"factura"`
	Info        []LabeledValue `json:"info"`
	Columns     []string       `json:"columnas"`
	Lines       []InvoiceLine  `json:"lineas"`
	Totals      []LabeledValue `json:"totales"`
	Footer      []string       `json:"pie"`
	FileName    string         `json:"archivo"`
}

// BuildInvoiceDocument arma la factura a partir de la venta y sus líneas persistidas.
// Solo formatea valores; no recalcula importes.
func BuildInvoiceDocument(sale *entity.Sale, details []*entity.SaleDetail) *InvoiceDocument {
	customer := DefaultCustomerName
	if sale.CustomerName != nil && *sale.CustomerName != "" {
		customer = *sale.CustomerName
	}

	lines := make([]InvoiceLine, 0, len(details))
	for _, d := range details {
		lines = append(lines, InvoiceLine{
			Product:   valueOr(d.ProductName, DeletedProductName),
			Brand:     valueOr(d.ProductBrand, DefaultBrand),
			Quantity:  strconv.Itoa(d.Quantity),
			UnitPrice: FormatQuetzales(d.UnitPrice),
			Total:     FormatQuetzales(d.Subtotal),
		})
	}

	return &InvoiceDocument{
		Title:       InvoiceTitle,
		InvoiceCode: sale.InvoiceCode,
		Info: []LabeledValue{
			{Label: "Factura:", Value: sale.InvoiceCode},
			{Label: "Fecha:", Value: sale.Date.Format(invoiceDateLayout)},
			{Label: "Método de Pago:", Value: sale.PaymentMethod},
			{Label: "Cliente:", Value: customer},
		},
		Columns: append([]string(nil), InvoiceColumns...),
		Lines:   lines,
		Totals: []LabeledValue{
			{Label: "Subtotal:", Value: FormatQuetzales(sale.Subtotal)},
			{Label: "IVA (12%):", Value: FormatQuetzales(sale.Tax)},
			{Label: "TOTAL:", Value: FormatQuetzales(sale.Total)},
		},
		Footer:   []string{invoiceFooterThanks, invoiceFooterSoftware},
		FileName: "Factura_" + sale.InvoiceCode + ".pdf",
	}
}

// FormatQuetzales formatea un importe como Q1,234.50.
// Solo la parte entera pasa por el printer; los centavos salen del decimal.
func FormatQuetzales(d decimal.Decimal) string {
	fixed := d.Round(2).Abs().StringFixed(2)
	intPart, cents := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = moneyPrinter.Sprintf("%d", n)
	}

	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "Q" + grouped + "." + cents
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
