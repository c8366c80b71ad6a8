package domain

import (
	"errors"
	"strings"
	"time"
)

// Money is an amount in integer minor units (paise for INR). Currency
// totals are always computed on Amount, never on a floating decimal.
type Money struct {
	Currency string
	Amount   int64
}

// Product is a vendor's raw-material listing. Read-only to checkout:
// price and stock reflect the latest committed catalog state, not the
// state at add-to-cart time.
type Product struct {
	ID            string
	Name          string
	Price         Money
	StockQuantity int64
	Unit          string
	VendorID      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var ErrInvalidProduct = errors.New("invalid product")

// Validate enforces the record invariants before anything loosely shaped
// from a remote store is allowed into the domain.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Join(ErrInvalidProduct, errors.New("name is empty"))
	}
	if strings.TrimSpace(p.VendorID) == "" {
		return errors.Join(ErrInvalidProduct, errors.New("vendor id is empty"))
	}
	if p.Price.Amount < 0 {
		return errors.Join(ErrInvalidProduct, errors.New("price is negative"))
	}
	if p.StockQuantity < 0 {
		return errors.Join(ErrInvalidProduct, errors.New("stock quantity is negative"))
	}
	return nil
}
