package domain

import (
	"fmt"
	"time"
)

// Role is the actor's side of the marketplace. Sellers buy raw
// materials for their food stalls; vendors supply them and own product
// listings. Switch exhaustively on Role at authorization points instead
// of comparing raw strings.
type Role string

const (
	RoleSeller Role = "seller"
	RoleVendor Role = "vendor"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSeller:
		return RoleSeller, nil
	case RoleVendor:
		return RoleVendor, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type Profile struct {
	UserID    string
	Name      string
	Role      Role
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
