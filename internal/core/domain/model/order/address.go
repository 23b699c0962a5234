package order

import (
	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/errs"
)

// Address is the structured delivery destination. Coordinates are optional:
// they are resolved by the geocoding collaborator and may be absent when
// resolution failed or was skipped.
type Address struct {
	street    string
	city      string
	reference string
	point     *kernel.GeoPoint
}

// NewAddress creates a delivery address. Street is required; reference and
// coordinates are optional.
func NewAddress(street, city, reference string, point *kernel.GeoPoint) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return Address{}, err
		}
	}

	return Address{
		street:    street,
		city:      city,
		reference: reference,
		point:     point,
	}, nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city, possibly empty.
func (a Address) City() string {
	return a.city
}

// Reference returns the free-form delivery hint, possibly empty.
func (a Address) Reference() string {
	return a.reference
}

// Point returns the resolved coordinates, or nil when unavailable.
func (a Address) Point() *kernel.GeoPoint {
	return a.point
}
