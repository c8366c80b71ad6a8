package app

import (
	"context"

	"github.com/mandihub/mandi/internal/cart/domain"
)

// SnapshotStore is the durable surface the cart persists itself to after
// every mutation. Load on a store that has never been written returns an
// empty snapshot and no error.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
	Delete(ctx context.Context) error
}
