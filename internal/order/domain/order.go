package domain

import (
	"fmt"
	"time"
)

// Status is the order lifecycle state. Orders start pending; delivered
// and cancelled are both terminal, so the full machine is
// pending -> delivered and pending -> cancelled.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusDelivered, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// CanTransitionTo reports whether the machine permits moving to next.
// Re-entering the current state is not permitted either: repeating a
// terminal transition is an error, not a silent no-op.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusDelivered || next == StatusCancelled
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order is one vendor's share of a checkout. SellerID is the buyer,
// VendorID the supplier; exactly one vendor per order. TotalAmount is
// the sum of item subtotals in minor units and never changes after
// creation, regardless of later catalog repricing.
type Order struct {
	ID              string
	SellerID        string
	VendorID        string
	DeliveryAddress string
	Currency        string
	TotalAmount     int64
	Status          Status
	Items           []Item
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Item captures one cart line at checkout time. UnitPrice is frozen at
// the price read during checkout and Subtotal == UnitPrice * Quantity.
type Item struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice int64
	Subtotal  int64
}

type CreateOrderRequest struct {
	SellerID        string
	VendorID        string
	DeliveryAddress string
	Currency        string
	Items           []ItemRequest
}

type ItemRequest struct {
	ProductID string
	Quantity  int64
	UnitPrice int64
}
