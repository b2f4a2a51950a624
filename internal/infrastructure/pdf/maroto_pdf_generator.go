// Package pdf dibuja la factura de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  FACTURA DE VENTA                                 F000123   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Factura / Fecha / Método de Pago / Cliente                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Marca | Cant. | Precio Unit. | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA (12%) / TOTAL                      │
//	│  Gracias por su compra · Sistema de Ventas                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorBrand = &props.Color{Red: 0x66, Green: 0x7e, Blue: 0xea} // #667eea
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Anchos de la tabla de productos (suman 12).
var lineColumnSizes = []int{4, 2, 1, 2, 3}

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateInvoicePDF dibuja el documento y devuelve los bytes del PDF.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, doc *billing.InvoiceDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento vacío")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(doc.Title+" "+doc.InvoiceCode, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc))
	m.AddRows(line.NewRow(2, props.Line{Color: colorBrand, Thickness: 0.6}))
	m.AddRows(infoRows(doc.Info)...)
	m.AddRows(row.New(4))

	m.AddRows(tableHeaderRow(doc.Columns))
	m.AddRows(tableLineRows(doc.Lines)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorBrand, Thickness: 0.3}))

	m.AddRows(totalsRows(doc.Totals)...)
	m.AddRows(row.New(8))
	m.AddRows(footerRows(doc.Footer)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(doc *billing.InvoiceDocument) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 18, Color: colorBrand, Top: 2,
		})),
		col.New(4).Add(text.New(doc.InvoiceCode, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 4,
		})),
	)
}

func infoRows(info []billing.LabeledValue) []core.Row {
	rows := make([]core.Row, 0, len(info))
	for _, kv := range info {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(kv.Label, props.Text{Style: fontstyle.Bold, Size: 10})),
			col.New(9).Add(text.New(kv.Value, props.Text{Size: 10})),
		))
	}
	return rows
}

// tableHeaderRow cabecera con fondo de marca y texto blanco.
func tableHeaderRow(columns []string) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, label := range columns {
		cols = append(cols, col.New(columnSize(i)).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: columnAlign(i),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorBrand})
}

func tableLineRows(lines []billing.InvoiceLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		values := []string{l.Product, l.Brand, l.Quantity, l.UnitPrice, l.Total}
		cols := make([]core.Col, 0, len(values))
		for i, v := range values {
			cols = append(cols, col.New(columnSize(i)).Add(text.New(v, props.Text{
				Size: 9, Align: columnAlign(i), Top: 1, Left: 1, Right: 1,
			})))
		}
		rows = append(rows, row.New(7).Add(cols...))
	}
	return rows
}

// totalsRows bloque alineado a la derecha; la última fila (TOTAL) va resaltada.
func totalsRows(totals []billing.LabeledValue) []core.Row {
	rows := make([]core.Row, 0, len(totals))
	for i, kv := range totals {
		style := props.Text{Size: 10, Align: align.Right, Right: 1}
		labelStyle := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2}
		if i == len(totals)-1 {
			style.Style, style.Size, style.Color = fontstyle.Bold, 12, colorBrand
			labelStyle.Size, labelStyle.Color = 12, colorBrand
		}
		rows = append(rows, row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New(kv.Label, labelStyle)),
			col.New(3).Add(text.New(kv.Value, style)),
		))
	}
	return rows
}

func footerRows(footer []string) []core.Row {
	rows := make([]core.Row, 0, len(footer))
	for _, s := range footer {
		rows = append(rows, row.New(5).Add(col.New(12).Add(text.New(s, props.Text{
			Size: 9, Align: align.Center, Color: colorGray,
		}))))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func columnSize(i int) int {
	if i < len(lineColumnSizes) {
		return lineColumnSizes[i]
	}
	return 1
}

// columnAlign texto a la izquierda, cantidades centradas, importes a la derecha.
func columnAlign(i int) align.Type {
	switch {
	case i < 2:
		return align.Left
	case i == 2:
		return align.Center
	default:
		return align.Right
	}
}
