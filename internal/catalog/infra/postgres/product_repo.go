package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mandihub/mandi/internal/catalog/app"
	"github.com/mandihub/mandi/internal/catalog/domain"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, name, price_amount, currency, stock_quantity, unit, vendor_id, created_at, updated_at`

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	vendorUUID, err := uuid.Parse(p.VendorID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid vendor UUID: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (id, name, price_amount, currency, stock_quantity, unit, vendor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		uuid.New(), p.Name, p.Price.Amount, p.Price.Currency, p.StockQuantity, p.Unit, vendorUUID,
	)
	return scanProduct(row)
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	prodUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrInvalidInput
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = $1`, prodUUID)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) SelectByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	uuids := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			// Malformed IDs cannot match anything; treat like missing.
			continue
		}
		uuids = append(uuids, u)
	}
	if len(uuids) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, pq.Array(uuids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) List(ctx context.Context, vendorID string, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1`
	args := []any{limit}

	if vendorID != "" {
		vendorUUID, err := uuid.Parse(vendorID)
		if err != nil {
			return nil, app.ErrInvalidInput
		}
		query = `SELECT ` + productColumns + ` FROM products WHERE vendor_id = $2 ORDER BY created_at DESC LIMIT $1`
		args = append(args, vendorUUID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var (
		p        domain.Product
		id       uuid.UUID
		vendorID uuid.UUID
	)
	err := row.Scan(&id, &p.Name, &p.Price.Amount, &p.Price.Currency,
		&p.StockQuantity, &p.Unit, &vendorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id.String()
	p.VendorID = vendorID.String()
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
