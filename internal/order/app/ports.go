package app

import (
	"context"
	"time"

	"github.com/mandihub/mandi/internal/order/domain"
)

type OrderRepo interface {
	// CreateOrderTx persists the order header and all of its items as a
	// single all-or-nothing unit.
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt time.Time) error
	// ListForActor returns orders where the actor is either side, newest
	// first.
	ListForActor(ctx context.Context, actorID string) ([]domain.Order, error)
	ListItems(ctx context.Context, orderID string) ([]domain.Item, error)
}
