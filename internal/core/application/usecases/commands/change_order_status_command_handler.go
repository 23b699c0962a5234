package commands

import (
	"context"
	"errors"
	"time"

	"yega/internal/core/domain/model/order"
	"yega/internal/core/ports"
)

// ErrConflict means a conditional write lost a race: someone else changed
// the status between this handler's read and its write, e.g. a cancellation
// racing a courier's advance. The caller re-fetches and decides whether to
// retry; the service never silently overwrites a concurrent change.
var ErrConflict = errors.New("order was modified concurrently")

// ChangeOrderStatusCommandHandler orchestrates status transitions: it
// validates the move against the transition table and persists it with a
// conditional write guarded on the status it read.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle validates and applies one transition, returning the updated
// snapshot. Rejections from the transition table surface as
// order.ErrInvalidTransition without touching stored state.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, command ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	current, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	statusAtRead := current.Status()
	now := h.now()
	if err = current.TransitionTo(command.Role(), command.Requested(), now); err != nil {
		return nil, err
	}

	err = repo.TransitionStatus(ctx, command.OrderID(), statusAtRead, command.Requested(), now)
	if errors.Is(err, ports.ErrPredicateFailed) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
