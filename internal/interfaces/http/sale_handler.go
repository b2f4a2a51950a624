package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
)

// SaleHandler registro de ventas desde el carrito.
type SaleHandler struct {
	uc *billing.CreateSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *billing.CreateSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta
// @Description  Guarda la venta con sus líneas en una transacción. El IVA es 12% del subtotal.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "items, metodo_pago"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /crear-venta [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateSale(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
