package domain

// Line is one carted product and the quantity the shopper wants of it.
type Line struct {
	ProductID string
	Quantity  int64
}
