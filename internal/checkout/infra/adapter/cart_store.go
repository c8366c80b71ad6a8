package adapter

import (
	"context"

	cartapp "github.com/mandihub/mandi/internal/cart/app"
	checkoutdomain "github.com/mandihub/mandi/internal/checkout/domain"
)

// CartStoreAdapter presents one shopper's cart to checkout.
type CartStoreAdapter struct {
	cart *cartapp.Store
}

func NewCartStoreAdapter(cart *cartapp.Store) *CartStoreAdapter {
	return &CartStoreAdapter{cart: cart}
}

func (a *CartStoreAdapter) Snapshot() []checkoutdomain.Line {
	snap := a.cart.Snapshot()
	lines := make([]checkoutdomain.Line, 0, len(snap))
	for _, ln := range snap {
		lines = append(lines, checkoutdomain.Line{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
		})
	}
	return lines
}

func (a *CartStoreAdapter) Clear(ctx context.Context) error {
	return a.cart.Clear(ctx)
}
