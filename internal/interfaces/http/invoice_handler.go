package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
)

// InvoiceHandler descarga de facturas PDF y listado admin.
type InvoiceHandler struct {
	pdf    *billing.PDFUseCase
	report *billing.InvoiceReportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(pdf *billing.PDFUseCase, report *billing.InvoiceReportUseCase) *InvoiceHandler {
	return &InvoiceHandler{pdf: pdf, report: report}
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Description  El cliente solo puede descargar sus propias ventas; el admin cualquiera. Una venta ajena responde 404.
// @Tags         ventas
// @Produce      application/pdf
// @Param        id_venta  path  int  true  "id de la venta"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /generar-factura/{id_venta} [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id_venta")
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), GetSession(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}

// List godoc
// @Summary      Listar facturas con sus productos
// @Tags         admin-facturas
// @Produce      json
// @Success      200  {object}  dto.InvoiceListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/facturas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.report.ListInvoices(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
