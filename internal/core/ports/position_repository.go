package ports

import (
	"context"

	"yega/internal/core/domain/model/courier"
	"yega/internal/core/domain/model/kernel"
)

// PositionRepository is the persistence contract for courier position
// records. Positions are owned exclusively by their courier: only that
// courier's reports write them, so writes are plain last-write-wins upserts
// with no conditional guard.
type PositionRepository interface {
	// Upsert creates the courier's record on first report and overwrites it
	// in place afterwards.
	Upsert(ctx context.Context, position *courier.Position) error

	// Get retrieves the courier's live record, or errs.ErrObjectNotFound
	// when the courier has never reported.
	Get(ctx context.Context, courierID kernel.UUID) (*courier.Position, error)
}
