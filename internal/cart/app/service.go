package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mandihub/mandi/internal/cart/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Store is one shopper's cart. It owns the in-memory line list and writes
// the full snapshot through its SnapshotStore before any mutation
// returns, so a reload never observes a state that was not persisted.
// A failed persist leaves the in-memory state unchanged as well.
type Store struct {
	mu    sync.Mutex
	lines domain.Snapshot
	store SnapshotStore
}

// Open loads the persisted snapshot (empty if none) and returns a live
// cart bound to the given store.
func Open(ctx context.Context, store SnapshotStore) (*Store, error) {
	snap, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}
	return &Store{lines: snap, store: store}, nil
}

// Add increments the quantity of a product by delta, appending a new line
// if the product is not yet carted. Browsing flows always add 1.
func (s *Store) Add(ctx context.Context, productID string, delta int64) error {
	if delta < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.lines.Clone()
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity += delta
			found = true
			break
		}
	}
	if !found {
		next = append(next, domain.Line{ProductID: productID, Quantity: delta})
	}

	return s.commit(ctx, next)
}

// SetQuantity replaces the quantity of an already-carted product.
// Quantities below 1 are rejected, not clamped; callers that want the
// line gone must use Remove. Setting a product that is not in the cart
// appends it.
func (s *Store) SetQuantity(ctx context.Context, productID string, qty int64) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.lines.Clone()
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		next = append(next, domain.Line{ProductID: productID, Quantity: qty})
	}

	return s.commit(ctx, next)
}

// Remove drops a product's line. Removing an absent product is a no-op
// that still succeeds.
func (s *Store) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(domain.Snapshot, 0, len(s.lines))
	for _, ln := range s.lines {
		if ln.ProductID != productID {
			next = append(next, ln)
		}
	}
	if len(next) == len(s.lines) {
		return nil
	}

	return s.commit(ctx, next)
}

// Clear empties the cart and deletes the persisted snapshot.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	s.lines = nil
	return nil
}

// Snapshot returns a copy of the current lines in insertion order.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines.Clone()
}

func (s *Store) commit(ctx context.Context, next domain.Snapshot) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persist cart snapshot: %w", err)
	}
	s.lines = next
	return nil
}
