package queries_test

import (
	"testing"

	"yega/internal/core/application/usecases/queries"
	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersForRoleQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersForRoleQuery(kernel.NewUUID(), kernel.RoleCourier)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrdersForRoleQuery_EmptyPrincipal(t *testing.T) {
	_, err := queries.NewGetOrdersForRoleQuery(kernel.UUID{}, kernel.RoleStore)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrdersForRoleQuery_UnknownRole(t *testing.T) {
	_, err := queries.NewGetOrdersForRoleQuery(kernel.NewUUID(), kernel.RoleUnknown)
	require.Error(t, err)
}

func TestGetOrdersForRoleQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersForRoleQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersForRoleQueryIsNotConstructed)
}
