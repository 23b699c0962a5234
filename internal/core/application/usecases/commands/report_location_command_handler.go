package commands

import (
	"context"

	"yega/internal/core/domain/model/courier"
)

// ReportLocationCommandHandler upserts the courier's single live position
// record. Writes are last-write-wins: the record is owned exclusively by its
// courier, so no conditional guard is needed.
type ReportLocationCommandHandler struct {
	uowFactory PositionUoWFactory
}

// NewReportLocationCommandHandler creates a handler for location reports.
func NewReportLocationCommandHandler(uowFactory PositionUoWFactory) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists one location report.
func (h ReportLocationCommandHandler) Handle(ctx context.Context, command ReportLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	position, err := courier.NewPosition(command.CourierID(), command.Point(), command.ReportedAt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PositionRepository().Upsert(ctx, position); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
