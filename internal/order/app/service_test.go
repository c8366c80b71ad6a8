package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mandihub/mandi/internal/order/domain"
)

type fakeOrderRepo struct {
	orders  map[string]domain.Order
	updates int
}

func newFakeRepo(orders ...domain.Order) *fakeOrderRepo {
	m := make(map[string]domain.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m}
}

func (f *fakeOrderRepo) CreateOrderTx(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = "created"
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) Get(_ context.Context, id string) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.Status, updatedAt time.Time) error {
	o, ok := f.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	f.orders[id] = o
	f.updates++
	return nil
}

func (f *fakeOrderRepo) ListForActor(_ context.Context, actorID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.SellerID == actorID || o.VendorID == actorID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListItems(_ context.Context, orderID string) ([]domain.Item, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	return o.Items, nil
}

func pendingOrder() domain.Order {
	return domain.Order{
		ID:              "ord-1",
		SellerID:        "seller-1",
		VendorID:        "vendor-1",
		DeliveryAddress: "12 Market St",
		Currency:        "INR",
		TotalAmount:     100,
		Status:          domain.StatusPending,
	}
}

func TestUpdateStatusByVendor(t *testing.T) {
	repo := newFakeRepo(pendingOrder())
	svc := NewService(repo)

	got, err := svc.UpdateStatus(context.Background(), "vendor-1", "ord-1", domain.StatusDelivered)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDelivered, got.Status)
	require.False(t, got.UpdatedAt.IsZero())

	// Order fields other than status/updated_at stay put.
	require.Equal(t, int64(100), got.TotalAmount)
	require.Equal(t, "12 Market St", got.DeliveryAddress)
	require.Equal(t, 1, repo.updates)
}

func TestUpdateStatusWrongActor(t *testing.T) {
	repo := newFakeRepo(pendingOrder())
	svc := NewService(repo)

	for _, actor := range []string{"seller-1", "someone-else", ""} {
		_, err := svc.UpdateStatus(context.Background(), actor, "ord-1", domain.StatusDelivered)
		require.ErrorIs(t, err, ErrUnauthorized, "actor %q", actor)
	}

	require.Equal(t, 0, repo.updates)
	require.Equal(t, domain.StatusPending, repo.orders["ord-1"].Status)
}

func TestUpdateStatusOutOfTerminalState(t *testing.T) {
	for _, terminal := range []domain.Status{domain.StatusDelivered, domain.StatusCancelled} {
		order := pendingOrder()
		order.Status = terminal
		repo := newFakeRepo(order)
		svc := NewService(repo)

		for _, next := range []domain.Status{domain.StatusDelivered, domain.StatusCancelled, domain.StatusPending} {
			_, err := svc.UpdateStatus(context.Background(), "vendor-1", "ord-1", next)
			require.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", terminal, next)
		}
		require.Equal(t, 0, repo.updates)
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.UpdateStatus(context.Background(), "vendor-1", "ghost", domain.StatusDelivered)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderComputesTotals(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	order, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		SellerID:        "seller-1",
		VendorID:        "vendor-1",
		DeliveryAddress: "12 Market St",
		Currency:        "INR",
		Items: []domain.ItemRequest{
			{ProductID: "p1", Quantity: 2, UnitPrice: 50},
			{ProductID: "p2", Quantity: 3, UnitPrice: 10},
		},
	})
	require.NoError(t, err)

	require.Equal(t, domain.StatusPending, order.Status)
	require.Equal(t, int64(130), order.TotalAmount)
	require.Len(t, order.Items, 2)
	require.Equal(t, int64(100), order.Items[0].Subtotal)
	require.Equal(t, int64(30), order.Items[1].Subtotal)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	base := domain.CreateOrderRequest{
		SellerID:        "seller-1",
		VendorID:        "vendor-1",
		DeliveryAddress: "12 Market St",
		Currency:        "INR",
		Items:           []domain.ItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: 10}},
	}

	t.Run("no items", func(t *testing.T) {
		req := base
		req.Items = nil
		_, err := svc.CreateOrder(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := base
		req.Items = []domain.ItemRequest{{ProductID: "p1", Quantity: 0, UnitPrice: 10}}
		_, err := svc.CreateOrder(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price", func(t *testing.T) {
		req := base
		req.Items = []domain.ItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: -1}}
		_, err := svc.CreateOrder(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("blank address", func(t *testing.T) {
		req := base
		req.DeliveryAddress = "  "
		_, err := svc.CreateOrder(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
