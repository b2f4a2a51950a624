package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
)

// LocalSession clave de c.Locals con la *auth.Session de la petición.
const LocalSession = "session"

// SessionResolver valida un token de sesión. auth.AuthUseCase lo implementa.
type SessionResolver interface {
	ResolveToken(ctx context.Context, token string) (*auth.Session, error)
}

// SessionMiddleware carga la sesión si la petición trae token (cookie o Bearer).
// Nunca rechaza: las rutas protegidas usan RequireSession o RequireRole.
func SessionMiddleware(resolver SessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c, cookieName)
		if token == "" {
			return c.Next()
		}
		sess, err := resolver.ResolveToken(c.UserContext(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				log.Warn().Err(err).Msg("sesión: no se pudo resolver el token")
			}
			return c.Next()
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// tokenFromRequest prioriza la cookie; si no hay, acepta "Authorization: Bearer <token>".
func tokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if tok := strings.TrimSpace(c.Cookies(cookieName)); tok != "" {
		return tok
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireSession responde 401 si no hay sesión activa.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "No hay sesión activa"})
		}
		return c.Next()
	}
}

// RequireRole exige sesión (401) y uno de los roles indicados (403).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "No hay sesión activa"})
		}
		for _, r := range roles {
			if sess.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Acceso no autorizado"})
	}
}

// GetSession devuelve la sesión de la petición o nil.
func GetSession(c *fiber.Ctx) *auth.Session {
	sess, _ := c.Locals(LocalSession).(*auth.Session)
	return sess
}

// GetRole rol de la sesión; "" sin sesión.
func GetRole(c *fiber.Ctx) string {
	if sess := GetSession(c); sess != nil {
		return sess.Role
	}
	return ""
}
