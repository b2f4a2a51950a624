package billing_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// ── almacén en memoria con semántica transaccional ───────────────────────────

// memSales guarda ventas confirmadas. La secuencia avanza aunque la transacción
// haga rollback, igual que nextval en PostgreSQL.
type memSales struct {
	mu      sync.Mutex
	seq     int64
	nextID  int64
	sales   map[int64]*entity.Sale
	details map[int64][]*entity.SaleDetail

	failProductID int64 // CreateDetail falla para este producto (simula FK)
}

func newMemSales() *memSales {
	return &memSales{sales: map[int64]*entity.Sale{}, details: map[int64][]*entity.SaleDetail{}}
}

func (m *memSales) count() (sales, details int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.details {
		details += len(d)
	}
	return len(m.sales), details
}

// txSales acumula escrituras hasta commit.
type txSales struct {
	store   *memSales
	sales   []*entity.Sale
	details []*entity.SaleDetail
}

var _ repository.SaleRepository = (*txSales)(nil)

func (t *txSales) NextInvoiceNumber(context.Context) (int64, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.seq++
	return t.store.seq, nil
}

func (t *txSales) Create(_ context.Context, s *entity.Sale) error {
	t.store.mu.Lock()
	t.store.nextID++
	s.ID = t.store.nextID
	t.store.mu.Unlock()
	s.Date = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	cp := *s
	t.sales = append(t.sales, &cp)
	return nil
}

func (t *txSales) CreateDetail(_ context.Context, d *entity.SaleDetail) error {
	if d.ProductID == t.store.failProductID {
		return fmt.Errorf("%w: el producto %d no existe", domain.ErrInvalidInput, d.ProductID)
	}
	cp := *d
	t.details = append(t.details, &cp)
	return nil
}

func (t *txSales) commit() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, s := range t.sales {
		t.store.sales[s.ID] = s
	}
	for _, d := range t.details {
		t.store.details[d.SaleID] = append(t.store.details[d.SaleID], d)
	}
}

func (t *txSales) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	s, ok := t.store.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (t *txSales) GetDetails(_ context.Context, saleID int64) ([]*entity.SaleDetail, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return append([]*entity.SaleDetail(nil), t.store.details[saleID]...), nil
}

func (t *txSales) List(context.Context) ([]*entity.Sale, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	out := make([]*entity.Sale, 0, len(t.store.sales))
	for _, s := range t.store.sales {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (t *txSales) DetailsBySales(_ context.Context, ids []int64) (map[int64][]*entity.SaleDetail, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	out := make(map[int64][]*entity.SaleDetail, len(ids))
	for _, id := range ids {
		if d, ok := t.store.details[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

// reader repositorio de solo lectura fuera de transacción.
func (m *memSales) reader() repository.SaleRepository { return &txSales{store: m} }

// ── TxRunner falso ───────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store     *memSales
	commits   int
	rollbacks int
}

var _ billing.SaleTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunSale(ctx context.Context, fn func(repository.SaleRepository) error) error {
	tx := &txSales{store: r.store}
	if err := fn(tx); err != nil {
		r.rollbacks++
		return err
	}
	tx.commit()
	r.commits++
	return nil
}

// ── publicador de eventos ────────────────────────────────────────────────────

type recordingPublisher struct {
	sales []ports.SaleCreatedEvent
	fail  bool
}

func (p *recordingPublisher) PublishSaleCreated(_ context.Context, ev ports.SaleCreatedEvent) error {
	if p.fail {
		return errors.New("broker caído")
	}
	p.sales = append(p.sales, ev)
	return nil
}

func (p *recordingPublisher) PublishContactReceived(context.Context, ports.ContactReceivedEvent) error {
	return nil
}
