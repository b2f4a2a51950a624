package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
)

// Mensaje genérico para errores no clasificados; el detalle queda en el log.
const internalErrorMessage = "Error interno del servidor"

type errorClass struct {
	sentinel error
	status   int
	code     string
	fallback string
}

// errorClasses orden de prueba: el primero que coincide con errors.Is gana.
var errorClasses = []errorClass{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT", "Entrada inválida"},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHENTICATED", "No hay sesión activa"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "Credenciales inválidas"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "Acceso no autorizado"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND", "Usuario no encontrado"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "Recurso no encontrado"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", "Conflicto con el estado actual"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "Recurso duplicado"},
}

// writeError responde con el sobre {success:false, code, message} y el status del error de dominio.
func writeError(c *fiber.Ctx, err error) error {
	for _, ec := range errorClasses {
		if errors.Is(err, ec.sentinel) {
			return c.Status(ec.status).JSON(dto.ErrorResponse{
				Code:    ec.code,
				Message: detail(err, ec.sentinel, ec.fallback),
			})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: internalErrorMessage,
	})
}

// detail extrae lo que sigue a "<sentinela>: " en errores envueltos con fmt.Errorf("%w: ...").
func detail(err, sentinel error, fallback string) string {
	text := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(text, prefix); i >= 0 {
		if d := strings.TrimSpace(text[i+len(prefix):]); d != "" {
			return d
		}
	}
	return fallback
}

// ErrorHandler para fiber.Config: rutas inexistentes, body demasiado grande y errores
// devueltos por handlers quedan con el mismo sobre.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: httpCode(fe.Code), Message: fe.Message})
	}
	return writeError(c, err)
}

func httpCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	}
	if status >= 500 {
		return "INTERNAL"
	}
	return "BAD_REQUEST"
}
