package app

import (
	"context"
	"errors"
	"strings"

	"github.com/mandihub/mandi/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, vendorID, name, unit, currency string, amount, stock int64) (domain.Product, error) {
	p := domain.Product{
		Name:          strings.TrimSpace(name),
		Unit:          strings.TrimSpace(unit),
		VendorID:      strings.TrimSpace(vendorID),
		StockQuantity: stock,
		Price: domain.Money{
			Currency: strings.TrimSpace(currency),
			Amount:   amount,
		},
	}
	if p.Price.Currency == "" {
		return domain.Product{}, ErrInvalidInput
	}
	if err := p.Validate(); err != nil {
		return domain.Product{}, errors.Join(ErrInvalidInput, err)
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// Resolve maps carted product IDs to their authoritative records as of
// now. IDs that no longer exist are dropped silently; the caller decides
// what to do about vanished lines. An empty input resolves to an empty
// result without touching the store.
func (s *Service) Resolve(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil, nil
	}

	return s.repo.SelectByIDs(ctx, unique)
}

func (s *Service) ListProducts(ctx context.Context, vendorID string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, strings.TrimSpace(vendorID), limit)
}
