package kernel

import (
	"fmt"

	"yega/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation. The role is
// resolved by the identity collaborator and threaded explicitly through every
// mutating call; the core never infers it from ambient session state.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleStore is the merchant preparing orders.
	RoleStore

	// RoleCourier is the delivery driver claiming and advancing orders.
	RoleCourier

	// RoleClient is the customer who placed the order.
	RoleClient

	// RoleAdmin is a back-office operator.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleStore:   "tienda",
		RoleCourier: "repartidor",
		RoleClient:  "cliente",
		RoleAdmin:   "admin",
	}
}

// ParseRole converts a wire-level role name into a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid", fmt.Errorf("%q is not a known role", s))
}

// Validate returns an error for RoleUnknown or any other out-of-range value.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire-level role name, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
