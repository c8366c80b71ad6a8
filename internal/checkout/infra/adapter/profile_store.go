package adapter

import (
	"context"

	profileapp "github.com/mandihub/mandi/internal/profile/app"
)

type ProfileServiceStore struct {
	svc *profileapp.Service
}

func NewProfileServiceStore(svc *profileapp.Service) *ProfileServiceStore {
	return &ProfileServiceStore{svc: svc}
}

func (s *ProfileServiceStore) GetAddress(ctx context.Context, userID string) (string, error) {
	p, err := s.svc.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return p.Address, nil
}

func (s *ProfileServiceStore) UpdateAddress(ctx context.Context, userID, address string) error {
	return s.svc.UpdateAddress(ctx, userID, address)
}
