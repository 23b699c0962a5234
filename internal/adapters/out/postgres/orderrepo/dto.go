// Package orderrepo implements order persistence over GORM, including the
// conditional writes that make claims and status transitions race-safe.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. Line items
// live in a JSONB column; they are read and written as one value and never
// queried individually. The status and courier columns carry the conditional
// write predicates and are indexed for the claimable-pool scan.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status    string     `gorm:"index"`
	StoreID   uuid.UUID  `gorm:"type:uuid;index"`
	ClientID  uuid.UUID  `gorm:"type:uuid;index"`
	CourierID *uuid.UUID `gorm:"type:uuid;index"`
	Items     ItemsDTO   `gorm:"type:jsonb"`
	Total     float64
	Address   AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one priced order line inside the JSONB items column.
type ItemDTO struct {
	ProductRef string  `json:"productRef"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// ItemsDTO serializes the order lines as a single JSONB value.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer for JSONB storage.
func (i ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (i *ItemsDTO) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// AddressDTO is the delivery destination embedded in the orders table.
// Coordinates are optional; street addresses without geocoding leave them null.
type AddressDTO struct {
	Street    string
	City      string
	Reference string
	Latitude  *float64
	Longitude *float64
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make(ItemsDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductRef: item.ProductRef(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
		})
	}

	address := aggregate.Address()
	addressDTO := AddressDTO{
		Street:    address.Street(),
		City:      address.City(),
		Reference: address.Reference(),
	}
	if point := address.Point(); point != nil {
		lat := point.Latitude()
		lng := point.Longitude()
		addressDTO.Latitude = &lat
		addressDTO.Longitude = &lng
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		Status:    aggregate.Status().String(),
		StoreID:   aggregate.StoreID().Bytes(),
		ClientID:  aggregate.ClientID().Bytes(),
		CourierID: courierID,
		Items:     items,
		Total:     aggregate.Total(),
		Address:   addressDTO,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain reconstructs the order aggregate from its database row using
// RestoreOrder, which re-checks the status/courier consistency invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductRef, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var point *kernel.GeoPoint
	if dto.Address.Latitude != nil && dto.Address.Longitude != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Address.Latitude, *dto.Address.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}

	address, err := order.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Reference, point)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, storeID, clientID, courierID,
		items, dto.Total, address, status,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
