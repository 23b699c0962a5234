// Package positionrepo implements courier position persistence over GORM.
// Each courier owns exactly one row, overwritten in place on every report.
package positionrepo

import (
	"time"

	"yega/internal/core/domain/model/courier"
	"yega/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PositionDTO is the database representation of a courier's live position.
type PositionDTO struct {
	CourierID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Latitude   float64
	Longitude  float64
	ReportedAt time.Time
}

// TableName overrides GORM's default naming to use "courier_positions".
func (PositionDTO) TableName() string {
	return "courier_positions"
}

func fromDomain(position *courier.Position) PositionDTO {
	return PositionDTO{
		CourierID:  position.CourierID().Bytes(),
		Latitude:   position.Point().Latitude(),
		Longitude:  position.Point().Longitude(),
		ReportedAt: position.ReportedAt(),
	}
}

func toDomain(dto PositionDTO) (*courier.Position, error) {
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return courier.RestorePosition(courierID, point, dto.ReportedAt)
}
