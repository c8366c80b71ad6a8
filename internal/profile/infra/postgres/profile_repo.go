package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mandihub/mandi/internal/profile/app"
	"github.com/mandihub/mandi/internal/profile/domain"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, userID string) (domain.Profile, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Profile{}, app.ErrInvalidInput
	}

	var (
		p    domain.Profile
		id   uuid.UUID
		role string
	)
	err = r.db.QueryRowContext(ctx, `
		SELECT user_id, name, role, address, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userUUID,
	).Scan(&id, &p.Name, &role, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, err
	}

	p.UserID = id.String()
	p.Role, err = domain.ParseRole(role)
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepo) UpdateAddress(ctx context.Context, userID, address string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return app.ErrInvalidInput
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET address = $2, updated_at = $3 WHERE user_id = $1`,
		userUUID, address, time.Now().UTC())
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
