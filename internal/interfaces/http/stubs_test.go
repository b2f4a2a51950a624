package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/analytics"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/usecase"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/infrastructure/memory"
	apphttp "github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/interfaces/http"
)

const testCookie = "sesion"

// ── usuarios ──

type memUsers struct {
	rows map[string]*entity.User
	next int64
}

func newMemUsers() *memUsers { return &memUsers{rows: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.rows[u.Username]; ok {
		return domain.ErrConflict
	}
	m.next++
	u.ID = m.next
	cp := *u
	m.rows[u.Username] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range m.rows {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := m.rows[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	for _, u := range m.rows {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrNotFound
}

// add crea un usuario con contraseña bcrypt de costo mínimo.
func (m *memUsers) add(t *testing.T, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, m.Create(context.Background(), &entity.User{
		Username: username, PasswordHash: string(hash), Role: role, Name: username,
	}))
}

// ── productos ──

type memProducts struct {
	rows map[int64]*entity.Product
	next int64
}

func newMemProducts() *memProducts { return &memProducts{rows: map[int64]*entity.Product{}} }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.next++
	p.ID = m.next
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.rows))
	for i := int64(1); i <= m.next; i++ {
		if p, ok := m.rows[i]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProducts) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// ── contactos ──

type memContacts struct {
	rows map[int64]*entity.ContactMessage
	next int64
}

func newMemContacts() *memContacts {
	return &memContacts{rows: map[int64]*entity.ContactMessage{}}
}

func (m *memContacts) Create(_ context.Context, msg *entity.ContactMessage) error {
	m.next++
	msg.ID = m.next
	msg.Date = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	cp := *msg
	m.rows[msg.ID] = &cp
	return nil
}

func (m *memContacts) GetByID(_ context.Context, id int64) (*entity.ContactMessage, error) {
	msg, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *msg
	return &cp, nil
}

func (m *memContacts) List(context.Context) ([]*entity.ContactMessage, error) {
	out := make([]*entity.ContactMessage, 0, len(m.rows))
	for i := m.next; i >= 1; i-- {
		if msg, ok := m.rows[i]; ok {
			cp := *msg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memContacts) UpdateStatus(_ context.Context, id int64, status string) error {
	msg, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	msg.Status = status
	return nil
}

// ── app de prueba ──

type testEnv struct {
	app      *fiber.App
	users    *memUsers
	products *memProducts
	contacts *memContacts
}

// newTestEnv arma el router completo con repos en memoria. Las rutas que
// dependen de PostgreSQL (ventas, estadísticas) quedan sin repositorio.
func newTestEnv(t *testing.T, limit int) *testEnv {
	t.Helper()
	env := &testEnv{users: newMemUsers(), products: newMemProducts(), contacts: newMemContacts()}
	authUC := auth.NewAuthUseCase(env.users, memory.NewSessionStore(), auth.SessionConfig{
		Secret: "test-secret", Issuer: "supermercado-test", TTL: time.Hour,
	})
	env.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     usecase.NewProductUseCase(env.products),
		CategoryUC:    usecase.NewCategoryUseCase(nil, nil),
		SupplierUC:    usecase.NewSupplierUseCase(nil),
		ContactUC:     usecase.NewContactUseCase(env.contacts, nil),
		CreateSaleUC:  billing.NewCreateSaleUseCase(nil, nil),
		InvoicePDF:    billing.NewPDFUseCase(nil, nil),
		InvoiceReport: billing.NewInvoiceReportUseCase(nil),
		StatsUC:       analytics.NewStatsUseCase(nil),
		Cookie:        apphttp.CookieConfig{Name: testCookie},
		RateLimit:     apphttp.RateLimit{Max: limit, Window: time.Minute},
	})
	return env
}

// call lanza la petición; body puede ser nil. cookie vacía = sin sesión.
func (e *testEnv) call(t *testing.T, method, path, body, cookie string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login devuelve el valor de la cookie de sesión.
func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	resp := e.call(t, http.MethodPost, "/login", `{"usuario":"`+username+`","contrasena":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			return ck.Value
		}
	}
	t.Fatal("login sin cookie de sesión")
	return ""
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
