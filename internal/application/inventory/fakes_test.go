package inventory_test

import (
	"context"
	"errors"
	"sync"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos del backend. Simulan el contrato remoto
// (Find devuelve nil, nil cuando no hay fila) y permiten inyectar fallos por
// operación para ejercitar la secuencia no atómica.
// ──────────────────────────────────────────────────────────────────────────────

var errBackendDown = errors.New("backend caído")

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "fatal"})
}

func int64Ptr(v int64) *int64 { return &v }

// ── Productos ─────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]*entity.Product

	failUpdateStock bool
	stockWrites     []int // historial de UpdateGlobalStock
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.ID = int64(len(r.products) + 1)
	r.products[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateGlobalStock(_ context.Context, productID int64, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdateStock {
		return errBackendDown
	}
	p, ok := r.products[productID]
	if !ok {
		return errBackendDown
	}
	p.CurrentGlobalStock = stock
	r.stockWrites = append(r.stockWrites, stock)
	return nil
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	stores map[int64]*entity.Store
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{stores: map[int64]*entity.Store{}}
	for _, s := range stores {
		cp := *s
		r.stores[s.ID] = &cp
	}
	return r
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStoreRepo) List(_ context.Context) ([]entity.Store, error) {
	out := make([]entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeStoreRepo) Create(_ context.Context, s *entity.Store) (*entity.Store, error) {
	cp := *s
	cp.ID = int64(len(r.stores) + 1)
	r.stores[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeStoreRepo) Update(_ context.Context, s *entity.Store) error {
	cp := *s
	r.stores[s.ID] = &cp
	return nil
}

// ── Relaciones producto-tienda ────────────────────────────────────────────────

type fakeRelationRepo struct {
	mu        sync.Mutex
	relations []*entity.ProductStore
	nextID    int64

	failUpdate bool
	created    int
	updated    int
}

func newFakeRelationRepo(relations ...*entity.ProductStore) *fakeRelationRepo {
	r := &fakeRelationRepo{nextID: 100}
	for _, rel := range relations {
		cp := *rel
		r.relations = append(r.relations, &cp)
	}
	return r
}

func (r *fakeRelationRepo) List(_ context.Context) ([]entity.ProductStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.ProductStore, 0, len(r.relations))
	for _, rel := range r.relations {
		out = append(out, *rel)
	}
	return out, nil
}

func (r *fakeRelationRepo) ListByProduct(_ context.Context, productID int64) ([]entity.ProductStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ProductStore
	for _, rel := range r.relations {
		if rel.ProductID == productID {
			out = append(out, *rel)
		}
	}
	return out, nil
}

func (r *fakeRelationRepo) Find(_ context.Context, productID, storeID int64) (*entity.ProductStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rel := range r.relations {
		if rel.ProductID == productID && rel.StoreID == storeID {
			cp := *rel
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRelationRepo) Create(_ context.Context, ps *entity.ProductStore) (*entity.ProductStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ps
	cp.ID = r.nextID
	r.nextID++
	r.relations = append(r.relations, &cp)
	r.created++
	out := cp
	return &out, nil
}

func (r *fakeRelationRepo) Update(_ context.Context, ps *entity.ProductStore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate {
		return errBackendDown
	}
	for i, rel := range r.relations {
		if rel.ID == ps.ID {
			cp := *ps
			r.relations[i] = &cp
			r.updated++
			return nil
		}
	}
	return errBackendDown
}

// stockAt devuelve el stock actual de la fila (producto, tienda), -1 si no hay fila.
func (r *fakeRelationRepo) stockAt(productID, storeID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rel := range r.relations {
		if rel.ProductID == productID && rel.StoreID == storeID {
			return rel.CurrentStock
		}
	}
	return -1
}

// ── Lotes ─────────────────────────────────────────────────────────────────────

type fakeBatchRepo struct {
	mu      sync.Mutex
	batches map[int64]*entity.ProductBatch
	nextID  int64

	// Simula un lote borrado por otro cliente entre el snapshot y el ajuste.
	vanished map[int64]bool
}

func newFakeBatchRepo(batches ...*entity.ProductBatch) *fakeBatchRepo {
	r := &fakeBatchRepo{batches: map[int64]*entity.ProductBatch{}, nextID: 1000}
	for _, b := range batches {
		cp := *b
		r.batches[b.ID] = &cp
	}
	return r
}

func (r *fakeBatchRepo) GetByID(_ context.Context, id int64) (*entity.ProductBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok || r.vanished[id] {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBatchRepo) List(_ context.Context) ([]entity.ProductBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.ProductBatch, 0, len(r.batches))
	for _, b := range r.batches {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBatchRepo) ListByProduct(_ context.Context, productID int64) ([]entity.ProductBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ProductBatch
	for _, b := range r.batches {
		if b.ProductID == productID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) Create(_ context.Context, b *entity.ProductBatch) (*entity.ProductBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	cp.ID = r.nextID
	r.nextID++
	r.batches[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeBatchRepo) Update(_ context.Context, b *entity.ProductBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.batches[b.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.batches, id)
	return nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []entity.InventoryMovement
	nextID    int64

	failCreate bool
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 500}
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return nil, errBackendDown
	}
	cp := *m
	cp.ID = r.nextID
	r.nextID++
	r.movements = append(r.movements, cp)
	out := cp
	return &out, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID int64) ([]entity.InventoryMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.InventoryMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.movements)
}
