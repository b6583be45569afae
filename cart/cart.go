// Package cart owns the shopping cart: an ordered list of
// (product ID, quantity) lines persisted to the local store on every
// mutation, exactly as the web client kept it in localStorage.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/AndresWalter/petzone--template/localstore"
	"github.com/AndresWalter/petzone--template/models"
)

// StorageKey is the local store key the cart lives under.
const StorageKey = "petzone-cart"

type Manager struct {
	store localstore.Store

	mu    sync.Mutex
	lines []models.CartLine
}

// New restores the cart from the local store. A missing or corrupt
// payload yields an empty cart, never an error.
func New(store localstore.Store) *Manager {
	m := &Manager{store: store}
	m.restore()
	return m
}

func (m *Manager) restore() {
	raw, ok, err := m.store.Get(StorageKey)
	if err != nil {
		log.Printf("❌ Failed to read saved cart: %v", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), &m.lines); err != nil {
		log.Printf("⚠️ Discarding corrupt cart payload: %v", err)
		m.lines = nil
	}
}

// persist writes the full line list. Callers hold m.mu.
func (m *Manager) persist() {
	raw, err := json.Marshal(m.lines)
	if err != nil {
		log.Printf("❌ Failed to serialize cart: %v", err)
		return
	}
	if err := m.store.Set(StorageKey, string(raw)); err != nil {
		log.Printf("❌ Failed to save cart: %v", err)
	}
}

// Add inserts a line with quantity 1, or increments the existing line
// for the same product. It never fails.
func (m *Manager) Add(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			m.lines[i].Quantity++
			m.persist()
			return
		}
	}
	m.lines = append(m.lines, models.CartLine{ProductID: productID, Quantity: 1})
	m.persist()
}

// Remove deletes the line for productID. Absent IDs are a no-op.
func (m *Manager) Remove(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(productID)
}

func (m *Manager) removeLocked(productID string) {
	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			m.persist()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line. No upper bound is enforced.
func (m *Manager) UpdateQuantity(productID string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(productID)
		return
	}
	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			m.lines[i].Quantity = quantity
			m.persist()
			return
		}
	}
}

// Clear empties the cart.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.persist()
}

// Lines returns a copy of the cart in insertion order.
func (m *Manager) Lines() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// Count is the total quantity across all lines.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, line := range m.lines {
		count += line.Quantity
	}
	return count
}
