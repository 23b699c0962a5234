package http

import (
	"errors"

	"yega/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service. Identity and
// authentication are external collaborators; the service trusts these values.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var errMissingPrincipal = errors.New("missing identity headers")

// Principal is the authenticated actor extracted from the request.
type Principal struct {
	ID   kernel.UUID
	Role kernel.Role
}

// principalFromRequest reads the gateway identity headers. Absent or
// malformed headers reject the request before any use case runs.
func principalFromRequest(ctx echo.Context) (Principal, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return Principal{}, errMissingPrincipal
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return Principal{}, err
	}

	role, err := kernel.ParseRole(rawRole)
	if err != nil {
		return Principal{}, err
	}

	return Principal{ID: id, Role: role}, nil
}
