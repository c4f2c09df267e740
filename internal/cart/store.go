package cart

import (
	"context"
	"sync"
)

// Store persists the full item list of one user's cart. Load returns
// an empty slice for users without a persisted cart.
type Store interface {
	Load(ctx context.Context, userID uint) ([]Item, error)
	Save(ctx context.Context, userID uint, items []Item) error
	Delete(ctx context.Context, userID uint) error
}

// MemoryStore keeps carts in a map. Used by tests and as a fallback
// when redis is not configured.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[uint][]Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uint][]Item)}
}

func (m *MemoryStore) Load(ctx context.Context, userID uint) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]Item, len(m.carts[userID]))
	copy(items, m.carts[userID])
	return items, nil
}

func (m *MemoryStore) Save(ctx context.Context, userID uint, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := make([]Item, len(items))
	copy(saved, items)
	m.carts[userID] = saved
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, userID)
	return nil
}
