package domain

// Money is an amount in integer minor units. Group totals are summed on
// Amount only; no floating point enters the money path.
type Money struct {
	Currency string
	Amount   int64
}

// Line is one cart entry as checkout sees it.
type Line struct {
	ProductID string
	Quantity  int64
}

// Product is the checkout-local view of a catalog record, captured at
// resolve time.
type Product struct {
	ID       string
	Name     string
	Unit     string
	VendorID string
	Price    Money
	Stock    int64
}

// GroupLine pairs a resolved product with the carted quantity.
type GroupLine struct {
	Product  Product
	Quantity int64
}

// VendorGroup is one vendor's share of the cart, the unit of atomicity
// for order creation. Lines keep cart order; Total is the sum of
// price * quantity over the group.
type VendorGroup struct {
	VendorID string
	Lines    []GroupLine
	Total    Money
}
