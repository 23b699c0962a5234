package order

import (
	"fmt"

	"yega/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The happy path moves
// monotonically through the store-owned stages into the courier-owned stages;
// Cancelado is the single absorbing exception reachable from any non-terminal
// state.
//
//	Pendiente → Confirmado → Preparando → Listo → CaminoTienda → Recolectado → EnCamino → Entregado
//	         └───────────────────┬──────────────────────────────────────────┘
//	                             └──> Cancelado (from any non-terminal state)
//
// Entregado and Cancelado are terminal: no outgoing transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendiente is the initial status when an order is placed.
	StatusPendiente

	// StatusConfirmado indicates the store accepted the order.
	StatusConfirmado

	// StatusPreparando indicates the store is preparing the order.
	StatusPreparando

	// StatusListo indicates the order is ready and claimable by couriers.
	StatusListo

	// StatusCaminoTienda indicates the claiming courier is heading to the store.
	StatusCaminoTienda

	// StatusRecolectado indicates the courier picked the order up.
	StatusRecolectado

	// StatusEnCamino indicates the courier is heading to the client.
	StatusEnCamino

	// StatusEntregado indicates successful delivery. Terminal.
	StatusEntregado

	// StatusCancelado indicates the order was cancelled. Terminal.
	StatusCancelado
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		StatusPendiente:    "pendiente",
		StatusConfirmado:   "confirmado",
		StatusPreparando:   "preparando",
		StatusListo:        "listo",
		StatusCaminoTienda: "camino_tienda",
		StatusRecolectado:  "recolectado",
		StatusEnCamino:     "en_camino",
		StatusEntregado:    "entregado",
		StatusCancelado:    "cancelado",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPendiente:    "pendiente",
		StatusConfirmado:   "confirmado",
		StatusPreparando:   "preparando",
		StatusListo:        "listo",
		StatusCaminoTienda: "camino_tienda",
		StatusRecolectado:  "recolectado",
		StatusEnCamino:     "en_camino",
		StatusEntregado:    "entregado",
		StatusCancelado:    "cancelado",
	}
}

// ParseStatus converts a wire-level status name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is valid. StatusUnknown (0) and any
// other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level status name. It implements fmt.Stringer and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusEntregado || s == StatusCancelado
}

// AllowsCourier reports whether an order in this status may carry a courier
// binding. The binding happens at Listo via a claim; Cancelado may keep a
// binding made before the cancellation.
func (s Status) AllowsCourier() bool {
	switch s {
	case StatusListo, StatusCaminoTienda, StatusRecolectado, StatusEnCamino,
		StatusEntregado, StatusCancelado:
		return true
	default:
		return false
	}
}

// RequiresCourier reports whether an order in this status must carry a
// courier binding. The courier-owned stages past the claim all do.
func (s Status) RequiresCourier() bool {
	switch s {
	case StatusCaminoTienda, StatusRecolectado, StatusEnCamino, StatusEntregado:
		return true
	default:
		return false
	}
}
