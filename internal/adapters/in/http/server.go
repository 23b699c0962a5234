// Package http exposes the order lifecycle and tracking use cases over a
// REST API. Routes authenticate via gateway identity headers and translate
// domain outcomes into HTTP statuses; conflict outcomes from lost races map
// to 409 so clients know to re-fetch and retry.
package http

import (
	"errors"
	"net/http"
	"time"

	"yega/internal/core/application/usecases/commands"
	"yega/internal/core/application/usecases/queries"
	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"
	"yega/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	claimOrderHandler     commands.ClaimOrderCommandHandler
	changeStatusHandler   commands.ChangeOrderStatusCommandHandler
	reportLocationHandler commands.ReportLocationCommandHandler

	ordersForRoleHandler   queries.GetOrdersForRoleQueryHandler
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	reportLocationHandler commands.ReportLocationCommandHandler,
	ordersForRoleHandler queries.GetOrdersForRoleQueryHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		claimOrderHandler:      claimOrderHandler,
		changeStatusHandler:    changeStatusHandler,
		reportLocationHandler:  reportLocationHandler,
		ordersForRoleHandler:   ordersForRoleHandler,
		availableOrdersHandler: availableOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/location", s.ReportLocation)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - the role-scoped order listing.
func (s *Server) GetOrders(ctx echo.Context) error {
	principal, err := principalFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetOrdersForRoleQuery(principal.ID, principal.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.ordersForRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderSummaryFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableOrders handles GET /api/v1/orders/available - the claimable pool.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	principal, err := principalFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if principal.Role != kernel.RoleCourier && principal.Role != kernel.RoleAdmin {
		return forbidden(ctx)
	}

	orders, err := s.availableOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AvailableOrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, availableSummaryFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - order placement by a client.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := principalFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if principal.Role != kernel.RoleClient && principal.Role != kernel.RoleAdmin {
		return forbidden(ctx)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	storeID, err := kernel.UUIDFromString(request.StoreID)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, payload := range request.Items {
		item, itemErr := order.NewItem(payload.ProductRef, payload.Quantity, payload.UnitPrice)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, item)
	}

	var point *kernel.GeoPoint
	if request.Address.Latitude != nil && request.Address.Longitude != nil {
		p, pointErr := kernel.NewGeoPoint(*request.Address.Latitude, *request.Address.Longitude)
		if pointErr != nil {
			return writeError(ctx, pointErr)
		}
		point = &p
	}

	address, err := order.NewAddress(request.Address.Street, request.Address.City, request.Address.Reference, point)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), storeID, principal.ID, items, request.Total, address)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderDetailFromDomain(created))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - exclusive courier claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	principal, err := principalFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if principal.Role != kernel.RoleCourier {
		return forbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, principal.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"result": "granted"})
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - one lifecycle transition.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	principal, err := principalFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	requested, err := order.ParseStatus(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, principal.Role, requested)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromDomain(updated))
}

// ReportLocation handles PUT /api/v1/location - one courier position report.
func (s *Server) ReportLocation(ctx echo.Context) error {
	principal, err := principalFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if principal.Role != kernel.RoleCourier {
		return forbidden(ctx)
	}

	var request ReportLocationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	reportedAt := time.Now()
	if request.ReportedAt != nil {
		reportedAt = *request.ReportedAt
	}

	cmd, err := commands.NewReportLocationCommand(principal.ID, point, reportedAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reportLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError translates domain and application errors into HTTP statuses.
// Conflict outcomes are steady-state: the client re-fetches and retries.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrAlreadyClaimed):
		return errorJSON(ctx, http.StatusConflict, "order already claimed")
	case errors.Is(err, commands.ErrNotEligible):
		return errorJSON(ctx, http.StatusConflict, "order is not claimable")
	case errors.Is(err, commands.ErrConflict):
		return errorJSON(ctx, http.StatusConflict, "order was modified concurrently")
	case errors.Is(err, order.ErrInvalidTransition):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "order not found")
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func unauthorized(ctx echo.Context) error {
	return errorJSON(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
}

func forbidden(ctx echo.Context) error {
	return errorJSON(ctx, http.StatusForbidden, "role is not allowed to perform this operation")
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
