package app

import (
	"context"
	"sync"
)

// StoreFactory builds the snapshot store backing one shopper's cart.
type StoreFactory func(userID string) SnapshotStore

// Manager hands out one cart per shopper, loading each from its snapshot
// store on first use. Safe for concurrent use across request handlers.
type Manager struct {
	mu      sync.Mutex
	factory StoreFactory
	open    map[string]*Store
}

func NewManager(factory StoreFactory) *Manager {
	return &Manager{
		factory: factory,
		open:    make(map[string]*Store),
	}
}

func (m *Manager) ForUser(ctx context.Context, userID string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cart, ok := m.open[userID]; ok {
		return cart, nil
	}

	cart, err := Open(ctx, m.factory(userID))
	if err != nil {
		return nil, err
	}
	m.open[userID] = cart
	return cart, nil
}
