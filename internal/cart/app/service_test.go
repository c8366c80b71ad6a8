package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mandihub/mandi/internal/cart/domain"
)

// saveCountingStore wraps an in-memory snapshot store and counts writes,
// so tests can assert that every mutation persisted synchronously.
type saveCountingStore struct {
	snap    domain.Snapshot
	saves   int
	deletes int
	failOn  int // fail the nth save (1-based), 0 = never
}

func (s *saveCountingStore) Load(context.Context) (domain.Snapshot, error) {
	return s.snap.Clone(), nil
}

func (s *saveCountingStore) Save(_ context.Context, snap domain.Snapshot) error {
	s.saves++
	if s.failOn != 0 && s.saves == s.failOn {
		return errors.New("disk full")
	}
	s.snap = snap.Clone()
	return nil
}

func (s *saveCountingStore) Delete(context.Context) error {
	s.deletes++
	s.snap = nil
	return nil
}

func TestStoreMutations(t *testing.T) {
	ctx := context.Background()
	store := &saveCountingStore{}
	cart, err := Open(ctx, store)
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, "p1", 1))
	require.NoError(t, cart.Add(ctx, "p2", 1))
	require.NoError(t, cart.Add(ctx, "p1", 1))
	require.NoError(t, cart.SetQuantity(ctx, "p2", 5))

	snap := cart.Snapshot()
	require.Equal(t, domain.Snapshot{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 5},
	}, snap)

	// One persisted write per mutation.
	require.Equal(t, 4, store.saves)

	require.NoError(t, cart.Remove(ctx, "p1"))
	require.Equal(t, domain.Snapshot{{ProductID: "p2", Quantity: 5}}, cart.Snapshot())

	require.NoError(t, cart.Clear(ctx))
	require.Empty(t, cart.Snapshot())
	require.Equal(t, 1, store.deletes)
}

func TestStoreRejectsQuantityBelowOne(t *testing.T) {
	ctx := context.Background()
	store := &saveCountingStore{}
	cart, err := Open(ctx, store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(ctx, "p1", 2))

	before := cart.Snapshot()
	saves := store.saves

	require.ErrorIs(t, cart.SetQuantity(ctx, "p1", 0), ErrInvalidQuantity)
	require.ErrorIs(t, cart.SetQuantity(ctx, "p1", -1), ErrInvalidQuantity)
	require.ErrorIs(t, cart.Add(ctx, "p1", 0), ErrInvalidQuantity)

	// Rejected mutations change nothing and write nothing.
	require.Equal(t, before, cart.Snapshot())
	require.Equal(t, saves, store.saves)
}

func TestStoreRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := &saveCountingStore{}
	cart, err := Open(ctx, store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(ctx, "p1", 1))

	saves := store.saves
	require.NoError(t, cart.Remove(ctx, "ghost"))
	require.Equal(t, saves, store.saves)
}

func TestStoreFailedPersistLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &saveCountingStore{failOn: 2}
	cart, err := Open(ctx, store)
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, "p1", 1))
	err = cart.Add(ctx, "p2", 1)
	require.Error(t, err)

	// Neither memory nor the store saw the failed write.
	require.Equal(t, domain.Snapshot{{ProductID: "p1", Quantity: 1}}, cart.Snapshot())
	require.Equal(t, domain.Snapshot{{ProductID: "p1", Quantity: 1}}, store.snap)
}

func TestStoreReloadReproducesState(t *testing.T) {
	ctx := context.Background()
	store := &saveCountingStore{}

	cart, err := Open(ctx, store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(ctx, "p3", 1))
	require.NoError(t, cart.Add(ctx, "p1", 4))
	require.NoError(t, cart.Remove(ctx, "p3"))
	require.NoError(t, cart.Add(ctx, "p2", 2))

	reloaded, err := Open(ctx, store)
	require.NoError(t, err)
	require.Equal(t, cart.Snapshot(), reloaded.Snapshot())
}
