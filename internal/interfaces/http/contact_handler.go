package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/usecase"
)

// ContactHandler formulario público de contacto y bandeja del admin.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar mensaje de contacto
// @Tags         contacto
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "nombre, email, telefono, mensaje"
// @Success      201   {object}  dto.ContactCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /contacto [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Mensajes de contacto, más recientes primero
// @Tags         admin-contactos
// @Produce      json
// @Success      200  {object}  dto.ContactListResponse
// @Router       /admin/contactos [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener mensaje de contacto
// @Tags         admin-contactos
// @Produce      json
// @Param        id   path  int  true  "id_contacto"
// @Success      200  {object}  dto.ContactItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/contacto/{id} [get]
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del mensaje
// @Description  Estados: pendiente, leido, resuelto.
// @Tags         admin-contactos
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "id_contacto"
// @Param        body  body  dto.ContactStatusRequest  true  "estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/contacto/{id}/estado [put]
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ContactStatusRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in.Estado)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
