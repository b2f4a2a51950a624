package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/analytics"
)

// DashboardHandler contadores del panel admin.
type DashboardHandler struct {
	uc *analytics.StatsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas del panel
// @Description  Productos, clientes, número de facturas y total vendido.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/estadisticas [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
