package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mandihub/mandi/internal/checkout/domain"
	"github.com/mandihub/mandi/pkg/metrics"
)

// CartStore is the shopper's cart as checkout needs it: a point-in-time
// snapshot to convert, and a clear that runs only after every vendor
// group succeeded.
type CartStore interface {
	Snapshot() []domain.Line
	Clear(ctx context.Context) error
}

// CatalogReader resolves carted product IDs into authoritative records
// as of checkout time. Missing IDs are dropped, not errors.
type CatalogReader interface {
	Resolve(ctx context.Context, ids []string) ([]domain.Product, error)
}

// OrderWriter persists one vendor group as an order with its items, all
// or nothing, and returns the created order's ID.
type OrderWriter interface {
	CreateOrder(ctx context.Context, req OrderRequest) (string, error)
}

// ProfileStore carries the opportunistic delivery-address update.
type ProfileStore interface {
	GetAddress(ctx context.Context, userID string) (string, error)
	UpdateAddress(ctx context.Context, userID, address string) error
}

type OrderRequest struct {
	SellerID        string
	VendorID        string
	DeliveryAddress string
	Currency        string
	Items           []OrderItem
}

type OrderItem struct {
	ProductID string
	Quantity  int64
	UnitPrice int64
}

type Service struct {
	catalog  CatalogReader
	orders   OrderWriter
	profiles ProfileStore
	log      *slog.Logger
	metrics  *metrics.Checkout
}

func NewService(catalog CatalogReader, orders OrderWriter, profiles ProfileStore, log *slog.Logger, m *metrics.Checkout) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog:  catalog,
		orders:   orders,
		profiles: profiles,
		log:      log,
		metrics:  m,
	}
}

// Checkout converts the shopper's cart into one pending order per vendor
// present in the cart, processing vendor groups sequentially in cart
// order, and returns the created order IDs in that order.
//
// Each group commits independently; there is no cross-group transaction
// and no rollback of groups that already committed. When some groups
// fail after others succeeded the cart is kept and a
// *PartialCheckoutError names both sides. The cart is cleared only after
// every group succeeded.
//
// Stock is neither re-checked nor decremented here; concurrent
// checkouts can oversell a depleted product. That matches the observed
// marketplace behavior and is deliberate (see DESIGN.md).
func (s *Service) Checkout(ctx context.Context, sellerID string, cart CartStore, deliveryAddress string) ([]string, error) {
	start := time.Now()
	ids, err := s.checkout(ctx, sellerID, cart, deliveryAddress)
	if s.metrics != nil {
		s.metrics.ObserveDuration(start)
		s.metrics.AddOrders(len(ids))
	}
	s.observe(err)
	return ids, err
}

func (s *Service) checkout(ctx context.Context, sellerID string, cart CartStore, deliveryAddress string) ([]string, error) {
	deliveryAddress = strings.TrimSpace(deliveryAddress)
	if deliveryAddress == "" {
		return nil, ErrInvalidAddress
	}

	snapshot := cart.Snapshot()
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}

	productIDs := make([]string, 0, len(snapshot))
	for _, ln := range snapshot {
		productIDs = append(productIDs, ln.ProductID)
	}

	products, err := s.catalog.Resolve(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}
	if len(products) == 0 {
		// Everything the shopper carted has vanished from the catalog.
		return nil, ErrEmptyCart
	}

	s.saveAddress(ctx, sellerID, deliveryAddress)

	groups := Split(snapshot, products)

	var (
		orderIDs  []string
		succeeded []string
		failed    []string
		firstErr  error
	)
	for _, group := range groups {
		id, err := s.orders.CreateOrder(ctx, orderRequest(sellerID, deliveryAddress, group))
		if err != nil {
			s.log.Error("vendor group order failed",
				slog.String("seller_id", sellerID),
				slog.String("vendor_id", group.VendorID),
				slog.Any("err", err))
			failed = append(failed, group.VendorID)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		orderIDs = append(orderIDs, id)
		succeeded = append(succeeded, group.VendorID)
	}

	if len(failed) > 0 {
		if len(succeeded) == 0 {
			// Nothing persisted: a clean storage failure, safe to retry
			// the whole checkout.
			return nil, fmt.Errorf("create orders: %w", firstErr)
		}
		return orderIDs, &PartialCheckoutError{
			SucceededVendorIDs: succeeded,
			FailedVendorIDs:    failed,
			OrderIDs:           orderIDs,
		}
	}

	if err := cart.Clear(ctx); err != nil {
		// Orders are durable; a stale cart is recoverable by the shopper.
		s.log.Warn("cart clear after checkout failed",
			slog.String("seller_id", sellerID),
			slog.Any("err", err))
	}

	return orderIDs, nil
}

// saveAddress opportunistically persists a changed delivery address onto
// the shopper's profile for future checkouts. Best-effort: this is the
// one place a failure is logged and swallowed rather than surfaced.
func (s *Service) saveAddress(ctx context.Context, sellerID, address string) {
	stored, err := s.profiles.GetAddress(ctx, sellerID)
	if err == nil && stored == address {
		return
	}
	if err != nil {
		s.log.Warn("profile address read failed",
			slog.String("seller_id", sellerID), slog.Any("err", err))
		return
	}
	if err := s.profiles.UpdateAddress(ctx, sellerID, address); err != nil {
		s.log.Warn("profile address update failed",
			slog.String("seller_id", sellerID), slog.Any("err", err))
	}
}

func (s *Service) observe(err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case err == nil:
		s.metrics.Observe("success")
	case isPartial(err):
		s.metrics.Observe("partial")
	default:
		s.metrics.Observe("failure")
	}
}

func isPartial(err error) bool {
	var pe *PartialCheckoutError
	return errors.As(err, &pe)
}

func orderRequest(sellerID, address string, group domain.VendorGroup) OrderRequest {
	items := make([]OrderItem, 0, len(group.Lines))
	for _, ln := range group.Lines {
		items = append(items, OrderItem{
			ProductID: ln.Product.ID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.Product.Price.Amount,
		})
	}
	return OrderRequest{
		SellerID:        sellerID,
		VendorID:        group.VendorID,
		DeliveryAddress: address,
		Currency:        group.Total.Currency,
		Items:           items,
	}
}
