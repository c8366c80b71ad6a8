package app

import (
	"context"

	"github.com/mandihub/mandi/internal/profile/domain"
)

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (domain.Profile, error)
	UpdateAddress(ctx context.Context, userID, address string) error
}
