package adapter

import (
	"context"

	checkoutapp "github.com/mandihub/mandi/internal/checkout/app"
	orderapp "github.com/mandihub/mandi/internal/order/app"
	orderdomain "github.com/mandihub/mandi/internal/order/domain"
)

type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) CreateOrder(ctx context.Context, req checkoutapp.OrderRequest) (string, error) {
	items := make([]orderdomain.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orderdomain.ItemRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order, err := w.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		SellerID:        req.SellerID,
		VendorID:        req.VendorID,
		DeliveryAddress: req.DeliveryAddress,
		Currency:        req.Currency,
		Items:           items,
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}
