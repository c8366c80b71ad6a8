// Package memstore keeps cart snapshots in process memory. It backs
// tests and dev setups that run without Redis or a writable disk.
package memstore

import (
	"context"
	"sync"

	"github.com/mandihub/mandi/internal/cart/domain"
)

type Store struct {
	mu      sync.Mutex
	snap    domain.Snapshot
	written bool
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.written {
		return nil, nil
	}
	return s.snap.Clone(), nil
}

func (s *Store) Save(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	s.written = true
	return nil
}

func (s *Store) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	s.written = false
	return nil
}
