package order

import (
	"errors"
	"fmt"

	"yega/internal/core/domain/model/kernel"
)

// ErrInvalidTransition is returned when a requested status is not reachable
// from the current status for the acting role. Rejections never mutate state
// and are never retried automatically.
var ErrInvalidTransition = errors.New("invalid status transition")

// forwardTransitions is the static table of legal forward moves per role.
// The store owns preparation, the courier owns delivery. Cancellation is
// handled separately because it cuts across the whole table.
func forwardTransitions() map[kernel.Role]map[Status]Status {
	return map[kernel.Role]map[Status]Status{
		kernel.RoleStore: {
			StatusPendiente:  StatusConfirmado,
			StatusConfirmado: StatusPreparando,
			StatusPreparando: StatusListo,
		},
		kernel.RoleCourier: {
			StatusListo:        StatusCaminoTienda,
			StatusCaminoTienda: StatusRecolectado,
			StatusRecolectado:  StatusEnCamino,
			StatusEnCamino:     StatusEntregado,
		},
	}
}

// canCancel reports whether the role is authorized to cancel orders.
func canCancel(role kernel.Role) bool {
	return role == kernel.RoleStore || role == kernel.RoleClient || role == kernel.RoleAdmin
}

// ValidateTransition checks whether the acting role may move an order from
// current to requested. It is pure and side-effect-free.
//
// Requesting the order's own current status is rejected: transitions must
// move forward, a no-op is not silently accepted.
func ValidateTransition(role kernel.Role, current, requested Status) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := current.Validate(); err != nil {
		return err
	}
	if err := requested.Validate(); err != nil {
		return err
	}

	if current.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, current)
	}

	if requested == StatusCancelado {
		if !canCancel(role) {
			return fmt.Errorf("%w: role %s may not cancel", ErrInvalidTransition, role)
		}
		return nil
	}

	if next, ok := forwardTransitions()[role][current]; ok && next == requested {
		return nil
	}

	return fmt.Errorf("%w: %s → %s is not allowed for role %s",
		ErrInvalidTransition, current, requested, role)
}
