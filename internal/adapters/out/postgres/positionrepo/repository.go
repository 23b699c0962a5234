package positionrepo

import (
	"context"
	"errors"

	"yega/internal/core/domain/model/courier"
	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPositionRepository implements ports.PositionRepository using GORM.
type GormPositionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPositionRepository creates a new GORM position repository.
func NewGormPositionRepository(db *gorm.DB, tracker aggregateTracker) *GormPositionRepository {
	return &GormPositionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert writes the courier's position, inserting on first report and
// overwriting afterwards. Last write wins; the record is owned exclusively
// by its courier, so no conditional guard is needed.
func (r *GormPositionRepository) Upsert(ctx context.Context, position *courier.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}

	dto := fromDomain(position)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "courier_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "reported_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(position.CourierID(), position)
	return nil
}

// Get retrieves the courier's live position record.
func (r *GormPositionRepository) Get(ctx context.Context, courierID kernel.UUID) (*courier.Position, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto PositionDTO
	if err := r.db.WithContext(ctx).First(&dto, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierPosition", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
