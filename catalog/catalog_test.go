package catalog

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresWalter/petzone--template/models"
)

type fakeStore struct {
	mu        sync.Mutex
	products  []models.Product
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls int32
	listGate  chan struct{} // when set, List blocks until closed
	nextID    int
}

func (f *fakeStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	atomic.AddInt32(&f.listCalls, 1)
	if f.listGate != nil {
		<-f.listGate
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeStore) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	if f.createErr != nil {
		return models.Product{}, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	created := models.Product{
		ID:          string(rune('0' + f.nextID)),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
	}
	f.products = append(f.products, created)
	return created, nil
}

func (f *fakeStore) UpdateProduct(ctx context.Context, id string, input models.ProductInput) (models.Product, error) {
	if f.updateErr != nil {
		return models.Product{}, f.updateErr
	}
	return models.Product{ID: id, Name: input.Name, Price: input.Price, Description: input.Description, Image: input.Image}, nil
}

func (f *fakeStore) DeleteProduct(ctx context.Context, id string) error {
	return f.deleteErr
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRefreshReplacesCache(t *testing.T) {
	store := &fakeStore{products: []models.Product{
		{ID: "1", Name: "Collar", Price: price("9.50")},
		{ID: "2", Name: "Cama", Price: price("35.00")},
	}}
	m := New(store)
	assert.Equal(t, StatusEmpty, m.Status())

	status := m.Refresh(context.Background())
	assert.Equal(t, StatusReady, status)
	assert.Len(t, m.Products(), 2)

	// A second refresh replaces, not appends.
	status = m.Refresh(context.Background())
	assert.Equal(t, StatusReady, status)
	assert.Len(t, m.Products(), 2)
}

func TestRefreshFailureServesFallback(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	m := New(store)

	status := m.Refresh(context.Background())

	assert.Equal(t, StatusDegraded, status)
	products := m.Products()
	require.Len(t, products, 4)
	for _, p := range products {
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Price.GreaterThan(decimal.Zero))
	}
}

func TestRefreshRecoversFromDegraded(t *testing.T) {
	store := &fakeStore{listErr: errors.New("timeout")}
	m := New(store)
	m.Refresh(context.Background())
	require.Equal(t, StatusDegraded, m.Status())

	store.listErr = nil
	store.products = []models.Product{{ID: "1", Name: "Collar", Price: price("9.50")}}

	status := m.Refresh(context.Background())
	assert.Equal(t, StatusReady, status)
	assert.Len(t, m.Products(), 1)
}

func TestOverlappingRefreshesCoalesce(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{listGate: gate}
	m := New(store)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Refresh(context.Background())
	}()

	// Wait until the first refresh is parked inside the remote call.
	for atomic.LoadInt32(&store.listCalls) == 0 {
		runtime.Gosched()
	}
	assert.True(t, m.Loading())

	// Pile more refreshes onto the in-flight request.
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Refresh(context.Background())
		}()
	}
	time.Sleep(100 * time.Millisecond)

	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&store.listCalls))
	assert.False(t, m.Loading())
}

func TestCreateAppendsOnSuccessOnly(t *testing.T) {
	store := &fakeStore{}
	m := New(store)

	created, err := m.Create(context.Background(), models.ProductInput{Name: "Correa", Price: price("15.00")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, m.Products(), 1)

	store.createErr = errors.New("HTTP error: 500")
	_, err = m.Create(context.Background(), models.ProductInput{Name: "Otro"})
	require.Error(t, err)
	assert.Len(t, m.Products(), 1, "cache must be unchanged on failure")
}

func TestUpdateReplacesMatchingEntry(t *testing.T) {
	store := &fakeStore{products: []models.Product{
		{ID: "1", Name: "Collar", Price: price("9.50")},
		{ID: "2", Name: "Cama", Price: price("35.00")},
	}}
	m := New(store)
	m.Refresh(context.Background())

	updated, err := m.Update(context.Background(), "2", models.ProductInput{Name: "Cama XL", Price: price("49.00")})
	require.NoError(t, err)
	assert.Equal(t, "Cama XL", updated.Name)

	got, ok := m.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Cama XL", got.Name)
	assert.True(t, got.Price.Equal(price("49.00")))

	store.updateErr = errors.New("HTTP error: 404")
	_, err = m.Update(context.Background(), "1", models.ProductInput{Name: "x"})
	require.Error(t, err)
	got, _ = m.Get("1")
	assert.Equal(t, "Collar", got.Name, "cache must be unchanged on failure")
}

func TestDeleteRemovesEntryOnSuccessOnly(t *testing.T) {
	store := &fakeStore{products: []models.Product{
		{ID: "1", Name: "Collar", Price: price("9.50")},
	}}
	m := New(store)
	m.Refresh(context.Background())

	store.deleteErr = errors.New("HTTP error: 500")
	require.Error(t, m.Delete(context.Background(), "1"))
	assert.Len(t, m.Products(), 1)

	store.deleteErr = nil
	require.NoError(t, m.Delete(context.Background(), "1"))
	assert.Empty(t, m.Products())
	_, ok := m.Get("1")
	assert.False(t, ok)
}
