// Package courier contains the courier-side domain entities. The only
// persisted one is Position, the single live location record each courier
// overwrites as it moves.
package courier

import (
	"errors"
	"time"

	"yega/internal/core/domain/model/kernel"
)

// ErrPositionIsNotConstructed is returned when a Position instance was not
// created through NewPosition or RestorePosition.
var ErrPositionIsNotConstructed = errors.New("Position must be created via NewPosition or RestorePosition")

// Position is the last reported (post-throttle) location of a courier. One
// live record exists per courier; it is created on first report, overwritten
// in place on each subsequent accepted report, and never deleted. Consumers
// decide for themselves when reportedAt is too stale to show.
type Position struct {
	courierID  kernel.UUID
	point      kernel.GeoPoint
	reportedAt time.Time

	isConstructed bool
}

// NewPosition creates a position record for a courier's report.
func NewPosition(courierID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) (*Position, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}
	if err := point.Validate(); err != nil {
		return nil, err
	}

	return &Position{
		courierID:     courierID,
		point:         point,
		reportedAt:    reportedAt,
		isConstructed: true,
	}, nil
}

// RestorePosition reconstructs a position record from persistence.
func RestorePosition(courierID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) (*Position, error) {
	return NewPosition(courierID, point, reportedAt)
}

// Validate ensures the Position was created through a constructor.
func (p *Position) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPositionIsNotConstructed
	}
	return nil
}

// CourierID returns the owning courier's identifier.
func (p *Position) CourierID() kernel.UUID {
	return p.courierID
}

// Point returns the last reported coordinates.
func (p *Position) Point() kernel.GeoPoint {
	return p.point
}

// ReportedAt returns when the coordinates were reported.
func (p *Position) ReportedAt() time.Time {
	return p.reportedAt
}

// MoveTo overwrites the record with a newer report. Reports are last-write-
// wins; an older timestamp still overwrites, matching the boundary contract.
func (p *Position) MoveTo(point kernel.GeoPoint, reportedAt time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	p.point = point
	p.reportedAt = reportedAt
	return nil
}
