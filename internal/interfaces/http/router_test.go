package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// ── contacto ──

func TestContacto_EnvioPublicoYCambioDeEstado(t *testing.T) {
	env := newTestEnv(t, 100)
	env.users.add(t, "admin", "admin123", "admin")
	token := env.login(t, "admin", "admin123")

	resp := env.call(t, http.MethodPost, "/contacto",
		`{"nombre":"Luis","email":"luis@example.com","mensaje":"Hola"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ContactCreatedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "¡Mensaje enviado exitosamente! Te contactaremos pronto.", created.Message)

	upd := env.call(t, http.MethodPut, "/admin/contacto/1/estado", `{"estado":"leido"}`, token)
	assert.Equal(t, http.StatusOK, upd.StatusCode)
	assert.Equal(t, entity.ContactStatusRead, env.contacts.rows[1].Status)
}

func TestContacto_EstadoFueraDelConjunto400SinCambios(t *testing.T) {
	env := newTestEnv(t, 100)
	env.users.add(t, "admin", "admin123", "admin")
	token := env.login(t, "admin", "admin123")
	env.call(t, http.MethodPost, "/contacto", `{"nombre":"Luis","email":"luis@example.com","mensaje":"Hola"}`, "")

	resp := env.call(t, http.MethodPut, "/admin/contacto/1/estado", `{"estado":"archivado"}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Estado inválido", decodeError(t, resp).Message)
	assert.Equal(t, entity.ContactStatusPending, env.contacts.rows[1].Status)
}

func TestContacto_EmailInvalido400(t *testing.T) {
	env := newTestEnv(t, 100)
	resp := env.call(t, http.MethodPost, "/contacto", `{"nombre":"Luis","email":"no-es-correo","mensaje":"Hola"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.contacts.rows)
}

// ── ventas ──

func TestCrearVenta_SinSesion401(t *testing.T) {
	env := newTestEnv(t, 100)
	resp := env.call(t, http.MethodPost, "/crear-venta",
		`{"items":[{"id_producto":1,"cantidad":1,"precio_unitario":1000}],"metodo_pago":"efectivo"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, resp).Code)
}

func TestGenerarFactura_SinSesion401(t *testing.T) {
	env := newTestEnv(t, 100)
	resp := env.call(t, http.MethodGet, "/generar-factura/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── admin ──

func TestAdmin_ClienteNoPuedeCrearProducto(t *testing.T) {
	env := newTestEnv(t, 100)
	env.users.add(t, "beto", "clave", "cliente")
	token := env.login(t, "beto", "clave")

	resp := env.call(t, http.MethodPost, "/admin/producto", `{"nombre":"Arroz","precio":3500}`, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, env.products.rows)
}

func TestAdmin_CrudDeProducto(t *testing.T) {
	env := newTestEnv(t, 100)
	env.users.add(t, "admin", "admin123", "admin")
	token := env.login(t, "admin", "admin123")

	resp := env.call(t, http.MethodPost, "/admin/producto", `{"nombre":"Arroz","precio":3500.50}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, env.products.rows, 1)
	assert.True(t, env.products.rows[1].Price.Equal(decimal.RequireFromString("3500.50")))

	upd := env.call(t, http.MethodPut, "/admin/producto/1", `{"nombre":"Arroz Diana","precio":3600}`, token)
	assert.Equal(t, http.StatusOK, upd.StatusCode)
	assert.Equal(t, "Arroz Diana", env.products.rows[1].Name)

	public := env.call(t, http.MethodGet, "/productos", "", "")
	require.Equal(t, http.StatusOK, public.StatusCode)
	var list dto.ProductListResponse
	require.NoError(t, json.NewDecoder(public.Body).Decode(&list))
	require.Len(t, list.Productos, 1)

	del := env.call(t, http.MethodDelete, "/admin/producto/1", "", token)
	assert.Equal(t, http.StatusOK, del.StatusCode)

	missing := env.call(t, http.MethodDelete, "/admin/producto/1", "", token)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestAdmin_PrecioNoPositivo400(t *testing.T) {
	env := newTestEnv(t, 100)
	env.users.add(t, "admin", "admin123", "admin")
	token := env.login(t, "admin", "admin123")

	resp := env.call(t, http.MethodPost, "/admin/producto", `{"nombre":"Arroz","precio":0}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.products.rows)
}

func TestAdmin_IDNoNumerico400(t *testing.T) {
	env := newTestEnv(t, 100)
	env.users.add(t, "admin", "admin123", "admin")
	token := env.login(t, "admin", "admin123")

	resp := env.call(t, http.MethodGet, "/admin/producto/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── límites y rutas ──

func TestLimiter_Responde429TrasElMaximo(t *testing.T) {
	env := newTestEnv(t, 2)
	body := `{"usuario":"nadie","contrasena":"x"}`
	for i := 0; i < 2; i++ {
		resp := env.call(t, http.MethodPost, "/login", body, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
	resp := env.call(t, http.MethodPost, "/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decodeError(t, resp).Code)

	// Otras rutas no comparten el contador.
	other := env.call(t, http.MethodGet, "/productos", "", "")
	assert.Equal(t, http.StatusOK, other.StatusCode)
}

func TestRutaInexistente_SobreUniforme(t *testing.T) {
	env := newTestEnv(t, 100)
	resp := env.call(t, http.MethodGet, "/no-existe", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeError(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
