package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
)

// CookieConfig cookie donde viaja el token de sesión.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler maneja registro, login, logout y la sesión actual.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "usuario, contrasena, nombre"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /registro [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Abre una sesión y deja el token en la cookie de sesión (también en el cuerpo).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, contrasena"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindAndValidate(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.uc.SessionTTL()),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		if err := h.uc.Logout(c.UserContext(), sess.ID); err != nil {
			return writeError(c, err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Success: true, Message: "Sesión cerrada exitosamente"})
}

// Me godoc
// @Summary      Usuario de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionUserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /obtener-usuario [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "No hay sesión activa"})
	}
	return c.JSON(dto.SessionUserResponse{
		Success:   true,
		Usuario:   sess.Username,
		UsuarioID: sess.UserID,
		Rol:       sess.Role,
	})
}
