package order_test

import (
	"testing"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"
	"yega/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("prod-tacos-pastor", 3, 45.0)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	point, err := kernel.NewGeoPoint(19.432608, -99.133209)
	require.NoError(t, err)
	addr, err := order.NewAddress("Av. Juárez 12", "CDMX", "portón azul", &point)
	require.NoError(t, err)
	return addr
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testItems(t), 135.0, testAddress(t), time.Now(),
	)
	require.NoError(t, err)
	return o
}

// advanceToListo walks a fresh order through the store stages.
func advanceToListo(t *testing.T, o *order.Order) {
	t.Helper()
	now := time.Now()
	require.NoError(t, o.TransitionTo(kernel.RoleStore, order.StatusConfirmado, now))
	require.NoError(t, o.TransitionTo(kernel.RoleStore, order.StatusPreparando, now))
	require.NoError(t, o.TransitionTo(kernel.RoleStore, order.StatusListo, now))
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in pendiente with no courier", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.StatusPendiente, o.Status())
		assert.Nil(t, o.Courier())
		assert.InDelta(t, 135.0, o.Total(), 1e-9)
		assert.Len(t, o.Items(), 1)
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, 0, testAddress(t), time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), -1, testAddress(t), time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("rejects zero-value ids", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), 10, testAddress(t), time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("zero-value order fails Validate", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("binds courier exactly once at listo", func(t *testing.T) {
		o := newTestOrder(t)
		advanceToListo(t, o)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Claim(courierID, time.Now()))

		require.NotNil(t, o.Courier())
		assert.True(t, courierID.IsEqual(*o.Courier()))
		// Claiming does not advance the status; the courier does that explicitly.
		assert.Equal(t, order.StatusListo, o.Status())
	})

	t.Run("second claim is rejected, binding is never reassigned", func(t *testing.T) {
		o := newTestOrder(t)
		advanceToListo(t, o)
		winner := kernel.NewUUID()
		require.NoError(t, o.Claim(winner, time.Now()))

		err := o.Claim(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, order.ErrOrderAlreadyClaimed)
		assert.True(t, winner.IsEqual(*o.Courier()))
	})

	t.Run("claim before listo is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Claim(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, order.ErrOrderNotClaimable)
		assert.Nil(t, o.Courier())
	})

	t.Run("claim on cancelled order is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(kernel.RoleClient, order.StatusCancelado, time.Now()))

		err := o.Claim(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, order.ErrOrderNotClaimable)
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		o := newTestOrder(t)
		advanceToListo(t, o)

		err := o.Claim(kernel.UUID{}, time.Now())

		require.Error(t, err)
		assert.Nil(t, o.Courier())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("full happy path through both actors", func(t *testing.T) {
		o := newTestOrder(t)
		advanceToListo(t, o)
		require.NoError(t, o.Claim(kernel.NewUUID(), time.Now()))

		now := time.Now()
		require.NoError(t, o.TransitionTo(kernel.RoleCourier, order.StatusCaminoTienda, now))
		require.NoError(t, o.TransitionTo(kernel.RoleCourier, order.StatusRecolectado, now))
		require.NoError(t, o.TransitionTo(kernel.RoleCourier, order.StatusEnCamino, now))
		require.NoError(t, o.TransitionTo(kernel.RoleCourier, order.StatusEntregado, now))

		assert.Equal(t, order.StatusEntregado, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("rejection leaves status unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.TransitionTo(kernel.RoleStore, order.StatusListo, time.Now())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPendiente, o.Status())
	})

	t.Run("updates the updatedAt timestamp", func(t *testing.T) {
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		later := created.Add(2 * time.Minute)
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), 135.0, testAddress(t), created,
		)
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(kernel.RoleStore, order.StatusConfirmado, later))

		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("cancellation after claim keeps the courier binding", func(t *testing.T) {
		o := newTestOrder(t)
		advanceToListo(t, o)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Claim(courierID, time.Now()))

		require.NoError(t, o.TransitionTo(kernel.RoleAdmin, order.StatusCancelado, time.Now()))

		assert.Equal(t, order.StatusCancelado, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, courierID.IsEqual(*o.Courier()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a persisted order", func(t *testing.T) {
		id, storeID, clientID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		courierID := kernel.NewUUID()
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, storeID, clientID, &courierID,
			testItems(t), 135.0, testAddress(t),
			order.StatusEnCamino, created, created.Add(time.Hour),
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusEnCamino, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, courierID.IsEqual(*o.Courier()))
	})

	t.Run("rejects courier binding in pre-claim status", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &courierID,
			testItems(t), 135.0, testAddress(t),
			order.StatusPendiente, time.Now(), time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing courier in courier-owned status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			testItems(t), 135.0, testAddress(t),
			order.StatusEnCamino, time.Now(), time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accepts cancelled order with or without courier", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, errWith := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &courierID,
			testItems(t), 135.0, testAddress(t),
			order.StatusCancelado, time.Now(), time.Now(),
		)
		_, errWithout := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			testItems(t), 135.0, testAddress(t),
			order.StatusCancelado, time.Now(), time.Now(),
		)

		require.NoError(t, errWith)
		require.NoError(t, errWithout)
	})
}
