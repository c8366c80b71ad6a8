package adapter

import (
	"context"

	catalogapp "github.com/mandihub/mandi/internal/catalog/app"
	checkoutdomain "github.com/mandihub/mandi/internal/checkout/domain"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Resolve(ctx context.Context, ids []string) ([]checkoutdomain.Product, error) {
	products, err := r.svc.Resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]checkoutdomain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, checkoutdomain.Product{
			ID:       p.ID,
			Name:     p.Name,
			Unit:     p.Unit,
			VendorID: p.VendorID,
			Price: checkoutdomain.Money{
				Currency: p.Price.Currency,
				Amount:   p.Price.Amount,
			},
			Stock: p.StockQuantity,
		})
	}
	return out, nil
}
