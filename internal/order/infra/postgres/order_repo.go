package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mandihub/mandi/internal/order/app"
	"github.com/mandihub/mandi/internal/order/domain"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	sellerUUID, err := uuid.Parse(order.SellerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("invalid seller UUID: %w", err)
	}
	vendorUUID, err := uuid.Parse(order.VendorID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("invalid vendor UUID: %w", err)
	}

	var created domain.Order

	err = r.execTX(ctx, func(tx *sql.Tx) error {
		orderUUID := uuid.New()

		row := tx.QueryRowContext(ctx, `
			INSERT INTO orders (id, seller_id, vendor_id, delivery_address, currency, total_amount, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`,
			orderUUID, sellerUUID, vendorUUID, order.DeliveryAddress,
			order.Currency, order.TotalAmount, string(order.Status),
		)

		var id uuid.UUID
		var createdAt, updatedAt time.Time
		if err := row.Scan(&id, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		items := make([]domain.Item, 0, len(order.Items))
		var sum int64

		for i, item := range order.Items {
			if item.Subtotal != item.UnitPrice*item.Quantity {
				return fmt.Errorf("item %d: subtotal mismatch", i)
			}
			sum += item.Subtotal

			productUUID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("item %d: invalid product UUID: %w", i, err)
			}

			itemUUID := uuid.New()
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				itemUUID, id, productUUID, item.Quantity, item.UnitPrice, item.Subtotal,
			)
			if err != nil {
				return fmt.Errorf("insert item %d: %w", i, err)
			}

			items = append(items, domain.Item{
				ID:        itemUUID.String(),
				OrderID:   id.String(),
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.Subtotal,
			})
		}

		if sum != order.TotalAmount {
			return fmt.Errorf("order total %d does not match item sum %d", order.TotalAmount, sum)
		}

		created = order
		created.ID = id.String()
		created.Items = items
		created.CreatedAt = createdAt
		created.UpdatedAt = updatedAt
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

const orderColumns = `id, seller_id, vendor_id, delivery_address, currency, total_amount, status, created_at, updated_at`

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	orderUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderUUID)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	return order, err
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt time.Time) error {
	orderUUID, err := uuid.Parse(id)
	if err != nil {
		return app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		orderUUID, string(status), updatedAt)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return app.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) ListForActor(ctx context.Context, actorID string) ([]domain.Order, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, app.ErrInvalidInput
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE seller_id = $1 OR vendor_id = $1
		ORDER BY created_at DESC`, actorUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, rows.Err()
}

func (r *OrderRepo) ListItems(ctx context.Context, orderID string) ([]domain.Item, error) {
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, app.ErrNotFound
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, subtotal
		FROM order_items WHERE order_id = $1`, orderUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		var (
			item      domain.Item
			id        uuid.UUID
			oID       uuid.UUID
			productID uuid.UUID
		)
		if err := rows.Scan(&id, &oID, &productID, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		item.ID = id.String()
		item.OrderID = oID.String()
		item.ProductID = productID.String()
		out = append(out, item)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (domain.Order, error) {
	var (
		order    domain.Order
		id       uuid.UUID
		sellerID uuid.UUID
		vendorID uuid.UUID
		status   string
	)
	err := row.Scan(&id, &sellerID, &vendorID, &order.DeliveryAddress,
		&order.Currency, &order.TotalAmount, &status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	order.ID = id.String()
	order.SellerID = sellerID.String()
	order.VendorID = vendorID.String()
	order.Status, err = domain.ParseStatus(status)
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
