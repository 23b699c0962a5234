package commands_test

import (
	"testing"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("prod-001", 2, 80.0)
	require.NoError(t, err)
	return []order.Item{item}
}

func makeAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Calle 5 de Mayo 21", "Puebla", "", nil)
	require.NoError(t, err)
	return addr
}

// makeOrderInStatus builds an order and walks it to the requested status,
// claiming with the given courier when the status requires one.
func makeOrderInStatus(t *testing.T, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()
	now := time.Now()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		makeItems(t), 160.0, makeAddress(t), now,
	)
	require.NoError(t, err)

	if status == order.StatusCancelado {
		require.NoError(t, o.TransitionTo(kernel.RoleClient, order.StatusCancelado, now))
		return o
	}

	storePath := []order.Status{order.StatusConfirmado, order.StatusPreparando, order.StatusListo}
	for _, next := range storePath {
		if o.Status() == status {
			return o
		}
		require.NoError(t, o.TransitionTo(kernel.RoleStore, next, now))
	}

	if courierID != nil {
		require.NoError(t, o.Claim(*courierID, now))
	}
	if o.Status() == status {
		return o
	}

	courierPath := []order.Status{
		order.StatusCaminoTienda, order.StatusRecolectado, order.StatusEnCamino, order.StatusEntregado,
	}
	for _, next := range courierPath {
		require.NoError(t, o.TransitionTo(kernel.RoleCourier, next, now))
		if o.Status() == status {
			return o
		}
	}

	t.Fatalf("could not build order in status %s", status)
	return nil
}
