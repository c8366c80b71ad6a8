package app

import (
	"context"
	"errors"
	"strings"

	"github.com/mandihub/mandi/internal/profile/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

type Service struct {
	repo ProfileRepo
}

func NewService(repo ProfileRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID string) (domain.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Profile{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, userID)
}

// UpdateAddress stores a shopper's delivery address for future
// checkouts. The address must be non-empty after trimming.
func (s *Service) UpdateAddress(ctx context.Context, userID, address string) error {
	address = strings.TrimSpace(address)
	if strings.TrimSpace(userID) == "" || address == "" {
		return ErrInvalidInput
	}
	return s.repo.UpdateAddress(ctx, userID, address)
}
