package commands

import (
	"errors"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/errs"
	"yega/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand records a courier's post-throttle position. The
// boundary accepts reports regardless of delivery eligibility; throttling and
// eligibility live client-side in the reporter.
type ReportLocationCommand struct {
	courierID  kernel.UUID
	point      kernel.GeoPoint
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a validated location report.
func NewReportLocationCommand(
	courierID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time,
) (ReportLocationCommand, error) {
	if err := courierID.Validate(); err != nil {
		return ReportLocationCommand{}, errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	if err := point.Validate(); err != nil {
		return ReportLocationCommand{}, err
	}

	return ReportLocationCommand{
		courierID:  courierID,
		point:      point,
		reportedAt: reportedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the reporting courier.
func (c *ReportLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Point returns the reported coordinates.
func (c *ReportLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// ReportedAt returns the report timestamp.
func (c *ReportLocationCommand) ReportedAt() time.Time {
	return c.reportedAt
}

// Validate ensures the command was created through the constructor.
func (c *ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}
