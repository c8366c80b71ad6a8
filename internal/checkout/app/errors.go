package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAddress means the delivery address was empty after
	// trimming. Nothing was written.
	ErrInvalidAddress = errors.New("delivery address is required")

	// ErrEmptyCart means the cart had no lines, or every carted product
	// vanished from the catalog before checkout. Nothing was written.
	ErrEmptyCart = errors.New("cart is empty")
)

// PartialCheckoutError reports a checkout where some vendor groups
// persisted and others did not. Succeeded groups are NOT rolled back and
// the cart is left intact so the shopper can retry. A retry will create
// duplicate orders for the vendors listed in SucceededVendorIDs, so
// callers must reconcile before retrying.
type PartialCheckoutError struct {
	SucceededVendorIDs []string
	FailedVendorIDs    []string
	// OrderIDs are the orders that were durably created, in group order.
	OrderIDs []string
}

func (e *PartialCheckoutError) Error() string {
	return fmt.Sprintf("checkout partially failed: succeeded vendors [%s], failed vendors [%s]",
		strings.Join(e.SucceededVendorIDs, ", "),
		strings.Join(e.FailedVendorIDs, ", "))
}
