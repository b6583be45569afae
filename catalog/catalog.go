// Package catalog mirrors the remote product collection into a local
// cache and performs CRUD against it. A failed fetch never empties the
// storefront: the cache falls back to a built-in sample list and the
// Status accessor reports the degraded state.
package catalog

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/AndresWalter/petzone--template/models"
)

// ProductStore is the remote product collection (remote.Client in
// production, a fake in tests).
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, input models.ProductInput) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type Status string

const (
	// StatusEmpty means no fetch has completed yet.
	StatusEmpty Status = "empty"
	// StatusReady means the cache mirrors the remote collection.
	StatusReady Status = "ready"
	// StatusDegraded means the last fetch failed and the cache holds
	// the built-in fallback list.
	StatusDegraded Status = "degraded"
)

type Manager struct {
	store ProductStore

	mu       sync.RWMutex
	products []models.Product
	status   Status

	inFlight int32
	group    singleflight.Group
}

func New(store ProductStore) *Manager {
	return &Manager{store: store, status: StatusEmpty}
}

// Refresh replaces the cache with the remote collection. On transport
// failure it swaps in the fallback list instead of surfacing an error;
// the returned Status tells callers which one they got. Overlapping
// calls coalesce into a single remote request.
func (m *Manager) Refresh(ctx context.Context) Status {
	atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)

	m.group.Do("refresh", func() (interface{}, error) {
		products, err := m.store.ListProducts(ctx)

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			log.Printf("⚠️ Product fetch failed, serving fallback catalog: %v", err)
			m.products = fallbackProducts()
			m.status = StatusDegraded
			return nil, nil
		}
		m.products = products
		m.status = StatusReady
		return nil, nil
	})

	return m.Status()
}

// Create POSTs the input and appends the server-assigned record to the
// cache. The cache is untouched on failure. Input validation is the
// caller's job.
func (m *Manager) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)

	created, err := m.store.CreateProduct(ctx, input)
	if err != nil {
		return models.Product{}, err
	}

	m.mu.Lock()
	m.products = append(m.products, created)
	m.mu.Unlock()
	return created, nil
}

// Update PUTs the input and replaces the matching cache entry.
func (m *Manager) Update(ctx context.Context, id string, input models.ProductInput) (models.Product, error) {
	atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)

	updated, err := m.store.UpdateProduct(ctx, id, input)
	if err != nil {
		return models.Product{}, err
	}

	m.mu.Lock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i] = updated
			break
		}
	}
	m.mu.Unlock()
	return updated, nil
}

// Delete removes the remote record, then the cache entry.
func (m *Manager) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)

	if err := m.store.DeleteProduct(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	return nil
}

// Products returns a copy of the cached catalog.
func (m *Manager) Products() []models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Get looks up one cached product by ID.
func (m *Manager) Get(id string) (models.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Loading reports whether any catalog operation is in flight. One
// coarse flag covers all operation types, which is what the single
// loading indicator in the UI consumes.
func (m *Manager) Loading() bool {
	return atomic.LoadInt32(&m.inFlight) > 0
}
