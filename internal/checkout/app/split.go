package app

import "github.com/mandihub/mandi/internal/checkout/domain"

// Split partitions resolved cart lines by owning vendor and computes the
// per-vendor total. Pure: no I/O, and the same inputs always produce the
// same groups in the same order.
//
// Groups appear in the order their vendor first occurs in the cart, and
// lines keep cart order within a group. Cart lines whose product did not
// resolve are skipped; a vanished product must not block checkout of the
// lines that survive.
func Split(lines []domain.Line, products []domain.Product) []domain.VendorGroup {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var groups []domain.VendorGroup
	index := make(map[string]int)

	for _, ln := range lines {
		p, ok := byID[ln.ProductID]
		if !ok {
			continue
		}

		i, ok := index[p.VendorID]
		if !ok {
			i = len(groups)
			index[p.VendorID] = i
			groups = append(groups, domain.VendorGroup{
				VendorID: p.VendorID,
				Total:    domain.Money{Currency: p.Price.Currency},
			})
		}

		groups[i].Lines = append(groups[i].Lines, domain.GroupLine{
			Product:  p,
			Quantity: ln.Quantity,
		})
		groups[i].Total.Amount += p.Price.Amount * ln.Quantity
	}

	return groups
}
