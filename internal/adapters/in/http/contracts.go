package http

import (
	"time"

	"yega/internal/core/application/usecases/queries"
	"yega/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON error body returned by every failing route.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the order placement payload. Items and the total are
// priced upstream by the checkout; this service stores them verbatim.
type CreateOrderRequest struct {
	StoreID string             `json:"storeId"`
	Items   []OrderItemPayload `json:"items"`
	Total   float64            `json:"total"`
	Address AddressPayload     `json:"address"`
}

// OrderItemPayload is one priced order line.
type OrderItemPayload struct {
	ProductRef string  `json:"productRef"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// AddressPayload is the delivery destination.
type AddressPayload struct {
	Street    string   `json:"street"`
	City      string   `json:"city,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ChangeStatusRequest asks for one lifecycle transition.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ReportLocationRequest is one post-throttle courier position sample.
type ReportLocationRequest struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	ReportedAt *time.Time `json:"reportedAt,omitempty"`
}

// PositionPayload is the courier's latest reported position.
type PositionPayload struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ReportedAt time.Time `json:"reportedAt"`
}

// OrderSummary is the listing representation of an order.
type OrderSummary struct {
	ID              uuid.UUID        `json:"id"`
	Status          string           `json:"status"`
	StoreID         uuid.UUID        `json:"storeId"`
	ClientID        uuid.UUID        `json:"clientId"`
	CourierID       *uuid.UUID       `json:"courierId,omitempty"`
	Total           float64          `json:"total"`
	Street          string           `json:"street"`
	City            string           `json:"city,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	CourierPosition *PositionPayload `json:"courierPosition,omitempty"`
}

// AvailableOrderSummary is the claimable-pool representation. The client's
// identity is withheld; couriers only need pickup data.
type AvailableOrderSummary struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	Total     float64   `json:"total"`
	Street    string    `json:"street"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderDetail is the full representation returned by mutating routes.
type OrderDetail struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	StoreID   uuid.UUID          `json:"storeId"`
	ClientID  uuid.UUID          `json:"clientId"`
	CourierID *uuid.UUID         `json:"courierId,omitempty"`
	Items     []OrderItemPayload `json:"items"`
	Total     float64            `json:"total"`
	Address   AddressPayload     `json:"address"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func orderSummaryFromQuery(resp queries.GetOrdersForRoleQueryResponse) OrderSummary {
	summary := OrderSummary{
		ID:        resp.ID.Bytes(),
		Status:    resp.Status.String(),
		StoreID:   resp.StoreID.Bytes(),
		ClientID:  resp.ClientID.Bytes(),
		Total:     resp.Total,
		Street:    resp.Street,
		City:      resp.City,
		CreatedAt: resp.CreatedAt,
	}

	if resp.CourierID != nil {
		raw := resp.CourierID.Bytes()
		summary.CourierID = &raw
	}
	if resp.CourierPosition != nil {
		summary.CourierPosition = &PositionPayload{
			Latitude:   resp.CourierPosition.Point.Latitude(),
			Longitude:  resp.CourierPosition.Point.Longitude(),
			ReportedAt: resp.CourierPosition.ReportedAt,
		}
	}

	return summary
}

func availableSummaryFromQuery(resp queries.GetAvailableOrdersQueryResponse) AvailableOrderSummary {
	return AvailableOrderSummary{
		ID:        resp.ID.Bytes(),
		StoreID:   resp.StoreID.Bytes(),
		Total:     resp.Total,
		Street:    resp.Street,
		City:      resp.City,
		CreatedAt: resp.CreatedAt,
	}
}

func orderDetailFromDomain(aggregate *order.Order) OrderDetail {
	items := make([]OrderItemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemPayload{
			ProductRef: item.ProductRef(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
		})
	}

	address := aggregate.Address()
	addressPayload := AddressPayload{
		Street:    address.Street(),
		City:      address.City(),
		Reference: address.Reference(),
	}
	if point := address.Point(); point != nil {
		lat := point.Latitude()
		lng := point.Longitude()
		addressPayload.Latitude = &lat
		addressPayload.Longitude = &lng
	}

	detail := OrderDetail{
		ID:        aggregate.ID().Bytes(),
		Status:    aggregate.Status().String(),
		StoreID:   aggregate.StoreID().Bytes(),
		ClientID:  aggregate.ClientID().Bytes(),
		Items:     items,
		Total:     aggregate.Total(),
		Address:   addressPayload,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	if courierID := aggregate.Courier(); courierID != nil {
		raw := courierID.Bytes()
		detail.CourierID = &raw
	}

	return detail
}
