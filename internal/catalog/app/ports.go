package app

import (
	"context"

	"github.com/mandihub/mandi/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	// SelectByIDs returns the products that exist among ids; missing IDs
	// are simply absent from the result.
	SelectByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	List(ctx context.Context, vendorID string, limit int) ([]domain.Product, error)
}
