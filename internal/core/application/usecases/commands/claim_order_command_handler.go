package commands

import (
	"context"
	"errors"
	"time"

	"yega/internal/core/ports"
)

var (
	// ErrAlreadyClaimed means the claim lost the race to another courier.
	// An expected outcome, not a failure: the caller refreshes the
	// available list and moves on.
	ErrAlreadyClaimed = errors.New("order already claimed by another courier")

	// ErrNotEligible means the order is no longer in a claimable state,
	// e.g. it was cancelled before any courier claimed it.
	ErrNotEligible = errors.New("order is not eligible for claiming")
)

// ClaimOrderCommandHandler grants exclusive courier assignment through the
// order repository's conditional write. Of N concurrent claims on the same
// order, exactly one succeeds; the rest are classified as ErrAlreadyClaimed
// or ErrNotEligible by re-reading the record.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewClaimOrderCommandHandler creates a handler for claim attempts.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes one claim attempt. The conditional write runs first; only
// on a predicate failure does the handler re-read to classify the loss.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	err := repo.Claim(ctx, command.OrderID(), command.CourierID(), h.now())
	if errors.Is(err, ports.ErrPredicateFailed) {
		current, getErr := repo.Get(ctx, command.OrderID())
		if getErr != nil {
			return getErr
		}
		if current.Courier() != nil {
			return ErrAlreadyClaimed
		}
		return ErrNotEligible
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
