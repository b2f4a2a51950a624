package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	apphttp "github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/interfaces/http"
)

// fakeResolver acepta tokens con la forma "tok-<rol>".
type fakeResolver struct{}

func (fakeResolver) ResolveToken(_ context.Context, token string) (*auth.Session, error) {
	switch token {
	case "tok-admin":
		return &auth.Session{ID: "s1", UserID: 1, Username: "ana", Role: "admin"}, nil
	case "tok-cliente":
		return &auth.Session{ID: "s2", UserID: 2, Username: "beto", Role: "cliente"}, nil
	}
	return nil, domain.ErrUnauthenticated
}

func buildProtectedApp(roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.SessionMiddleware(fakeResolver{}, testCookie))
	app.Get("/protegida", apphttp.RequireRole(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"rol": apphttp.GetRole(c)})
	})
	app.Get("/sesion", apphttp.RequireSession(), func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetSession(c).Username)
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string, setup func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── RequireRole ──

func TestRequireRole_AdminConCookiePasa(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := get(t, app, "/protegida", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "tok-admin"})
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_BearerTambienSirve(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := get(t, app, "/protegida", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer tok-admin")
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_ClienteRecibe403(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := get(t, app, "/protegida", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "tok-cliente"})
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "Acceso no autorizado", body.Message)
	assert.False(t, body.Success)
}

func TestRequireRole_SinSesionRecibe401(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := get(t, app, "/protegida", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, resp).Code)
}

func TestRequireRole_TokenInvalidoEsComoSinSesion(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := get(t, app, "/protegida", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "basura"})
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── RequireSession ──

func TestRequireSession_CualquierRolPasa(t *testing.T) {
	app := buildProtectedApp()
	resp := get(t, app, "/sesion", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "tok-cliente"})
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
