package models

import (
	"fmt"

	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return Role(s), nil
	}
	return "", pkgerrors.Invalid("unknown role %q", s)
}

type Capability string

const (
	CapManageListings Capability = "manage_listings"
	CapSellerCenter   Capability = "seller_center"
	CapAdminister     Capability = "administer"
)

var capabilities = map[Role]map[Capability]bool{
	RoleBuyer:  {},
	RoleSeller: {CapManageListings: true, CapSellerCenter: true},
	RoleAdmin:  {CapAdminister: true},
}

// Authorization is the outcome of a capability check.
type Authorization struct {
	Role       Role
	Capability Capability
	Allowed    bool
}

func Authorize(role Role, c Capability) Authorization {
	return Authorization{Role: role, Capability: c, Allowed: capabilities[role][c]}
}

// Err returns nil when the check passed and a forbidden error otherwise.
func (a Authorization) Err() error {
	if a.Allowed {
		return nil
	}
	return fmt.Errorf("%w: role %q lacks %s", pkgerrors.ErrForbidden, a.Role, a.Capability)
}
