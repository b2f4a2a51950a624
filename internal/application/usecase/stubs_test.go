package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// ── productos ──

type memProducts struct {
	rows   map[int64]*entity.Product
	nextID int64
	inUse  map[int64]bool // productos con ventas asociadas
}

func newMemProducts() *memProducts {
	return &memProducts{rows: map[int64]*entity.Product{}, inUse: map[int64]bool{}}
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
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
	for _, p := range m.rows {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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
	if m.inUse[id] {
		return domain.ErrConflict
	}
	delete(m.rows, id)
	return nil
}

// ── categorías ──

type memCategories struct {
	rows   map[int64]*entity.Category
	nextID int64
}

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	if m.rows == nil {
		m.rows = map[int64]*entity.Category{}
	}
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	if c, ok := m.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCategories) List(context.Context) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range m.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategories) Update(_ context.Context, c *entity.Category) error {
	if _, ok := m.rows[c.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memCategories) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memSubcategories struct {
	rows   map[int64]*entity.Subcategory
	nextID int64
}

func (m *memSubcategories) Create(_ context.Context, s *entity.Subcategory) error {
	if m.rows == nil {
		m.rows = map[int64]*entity.Subcategory{}
	}
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSubcategories) GetByID(_ context.Context, id int64) (*entity.Subcategory, error) {
	if s, ok := m.rows[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *memSubcategories) List(ctx context.Context) ([]*entity.Subcategory, error) {
	return m.ListByCategory(ctx, 0)
}

// ListByCategory con categoryID 0 devuelve todas.
func (m *memSubcategories) ListByCategory(_ context.Context, categoryID int64) ([]*entity.Subcategory, error) {
	out := []*entity.Subcategory{}
	for _, s := range m.rows {
		if categoryID == 0 || s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memSubcategories) Update(_ context.Context, s *entity.Subcategory) error {
	if _, ok := m.rows[s.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rows[s.ID] = s
	return nil
}

func (m *memSubcategories) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// ── proveedores ──

type memSuppliers struct {
	rows   map[int64]*entity.Supplier
	nextID int64
}

func (m *memSuppliers) Create(_ context.Context, s *entity.Supplier) error {
	if m.rows == nil {
		m.rows = map[int64]*entity.Supplier{}
	}
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSuppliers) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	if s, ok := m.rows[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *memSuppliers) List(context.Context) ([]*entity.Supplier, error) {
	out := []*entity.Supplier{}
	for _, s := range m.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memSuppliers) Update(_ context.Context, s *entity.Supplier) error {
	if _, ok := m.rows[s.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rows[s.ID] = s
	return nil
}

func (m *memSuppliers) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// ── contacto ──

type memContacts struct {
	rows          map[int64]*entity.ContactMessage
	nextID        int64
	statusUpdates int
	now           time.Time
}

func newMemContacts() *memContacts {
	return &memContacts{
		rows: map[int64]*entity.ContactMessage{},
		now:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (m *memContacts) Create(_ context.Context, c *entity.ContactMessage) error {
	m.nextID++
	c.ID = m.nextID
	c.Date = m.now.Add(time.Duration(m.nextID) * time.Minute)
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memContacts) GetByID(_ context.Context, id int64) (*entity.ContactMessage, error) {
	if c, ok := m.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

// List más recientes primero.
func (m *memContacts) List(context.Context) ([]*entity.ContactMessage, error) {
	out := []*entity.ContactMessage{}
	for _, c := range m.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memContacts) UpdateStatus(_ context.Context, id int64, status string) error {
	m.statusUpdates++
	c, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	return nil
}

type recordingPublisher struct {
	ports.NopPublisher
	contacts []ports.ContactReceivedEvent
	err      error
}

func (r *recordingPublisher) PublishContactReceived(_ context.Context, ev ports.ContactReceivedEvent) error {
	r.contacts = append(r.contacts, ev)
	return r.err
}
