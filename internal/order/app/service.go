package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mandihub/mandi/internal/order/domain"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("order not found")
	ErrUnauthorized      = errors.New("actor is not the order's vendor")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service struct {
	repo OrderRepo
	now  func() time.Time
}

func NewService(repo OrderRepo) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder validates and persists one vendor group's order. The
// header and every item commit atomically or not at all.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if strings.TrimSpace(req.SellerID) == "" || strings.TrimSpace(req.VendorID) == "" {
		return domain.Order{}, fmt.Errorf("%w: seller and vendor are required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return domain.Order{}, fmt.Errorf("%w: delivery address is required", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: order has no items", ErrInvalidInput)
	}

	items := make([]domain.Item, 0, len(req.Items))
	var total int64

	for i, it := range req.Items {
		if it.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, it.Quantity)
		}
		if it.UnitPrice < 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: unit price cannot be negative, got %d", ErrInvalidInput, i, it.UnitPrice)
		}

		subtotal := it.UnitPrice * it.Quantity
		items = append(items, domain.Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  subtotal,
		})
		total += subtotal
	}

	return s.repo.CreateOrderTx(ctx, domain.Order{
		SellerID:        req.SellerID,
		VendorID:        req.VendorID,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		Currency:        req.Currency,
		TotalAmount:     total,
		Status:          domain.StatusPending,
		Items:           items,
	})
}

// UpdateStatus moves an order through the lifecycle machine on behalf of
// actorID. Only the order's vendor may transition it, and only the
// pending state has outgoing edges; everything else fails without a
// write. Totals, address and items are never touched.
func (s *Service) UpdateStatus(ctx context.Context, actorID, orderID string, next domain.Status) (domain.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if actorID != order.VendorID {
		return domain.Order{}, ErrUnauthorized
	}
	if !order.Status.CanTransitionTo(next) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	updatedAt := s.now()
	if err := s.repo.UpdateStatus(ctx, orderID, next, updatedAt); err != nil {
		return domain.Order{}, err
	}

	order.Status = next
	order.UpdatedAt = updatedAt
	return order, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// ListForActor returns the actor's orders, as buyer or as supplier,
// newest first.
func (s *Service) ListForActor(ctx context.Context, actorID string) ([]domain.Order, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListForActor(ctx, actorID)
}

func (s *Service) Items(ctx context.Context, orderID string) ([]domain.Item, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListItems(ctx, orderID)
}
