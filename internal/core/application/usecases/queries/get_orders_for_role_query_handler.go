package queries

import (
	"context"
	"database/sql"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersForRoleQueryHandler reads order listings straight from the
// database, bypassing the aggregate. The latest courier position is joined in
// so tracking consumers get coordinates without a second request.
type GetOrdersForRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForRoleQueryHandler creates a handler for role-scoped listings.
func NewGetOrdersForRoleQueryHandler(db *gorm.DB) GetOrdersForRoleQueryHandler {
	return GetOrdersForRoleQueryHandler{db: db}
}

// Handle executes the listing for the query's role. Results are newest first.
func (h GetOrdersForRoleQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForRoleQuery,
) ([]GetOrdersForRoleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, args := roleFilter(query)

	orders := make([]GetOrdersForRoleQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.store_id,
			o.client_id,
			o.courier_id,
			o.total,
			o.address_street,
			o.address_city,
			o.created_at,
			p.latitude,
			p.longitude,
			p.reported_at
		FROM orders o
		LEFT JOIN courier_positions p ON p.courier_id = o.courier_id
		`+filter+`
		ORDER BY o.created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// roleFilter builds the visibility predicate. Couriers see their assignments
// plus the unclaimed ready pool; admins see the whole table.
func roleFilter(query GetOrdersForRoleQuery) (string, []any) {
	switch query.Role() {
	case kernel.RoleStore:
		return "WHERE o.store_id = ?", []any{query.PrincipalID().Bytes()}
	case kernel.RoleClient:
		return "WHERE o.client_id = ?", []any{query.PrincipalID().Bytes()}
	case kernel.RoleCourier:
		return "WHERE o.courier_id = ? OR (o.status = ? AND o.courier_id IS NULL)",
			[]any{query.PrincipalID().Bytes(), order.StatusListo.String()}
	default:
		return "", nil
	}
}

func scanOrderRow(rows *sql.Rows) (GetOrdersForRoleQueryResponse, error) {
	var resp GetOrdersForRoleQueryResponse
	var id, storeID, clientID uuid.UUID
	var courierID uuid.NullUUID
	var status string
	var latitude, longitude sql.NullFloat64
	var reportedAt sql.NullTime

	err := rows.Scan(
		&id,
		&status,
		&storeID,
		&clientID,
		&courierID,
		&resp.Total,
		&resp.Street,
		&resp.City,
		&resp.CreatedAt,
		&latitude,
		&longitude,
		&reportedAt,
	)
	if err != nil {
		return GetOrdersForRoleQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrdersForRoleQueryResponse{}, err
	}
	if resp.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
		return GetOrdersForRoleQueryResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return GetOrdersForRoleQueryResponse{}, err
	}
	if courierID.Valid {
		cid, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return GetOrdersForRoleQueryResponse{}, idErr
		}
		resp.CourierID = &cid
	}

	if resp.Status, err = order.ParseStatus(status); err != nil {
		return GetOrdersForRoleQueryResponse{}, err
	}

	if latitude.Valid && longitude.Valid && reportedAt.Valid {
		point, pointErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
		if pointErr != nil {
			return GetOrdersForRoleQueryResponse{}, pointErr
		}
		resp.CourierPosition = &CourierPositionView{
			Point:      point,
			ReportedAt: reportedAt.Time,
		}
	}

	return resp, nil
}
