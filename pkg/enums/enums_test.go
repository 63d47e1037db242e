package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusDelivered))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))

	// delivered and cancelled are terminal
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusDelivered))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))

	assert.False(t, OrderStatusPending.IsTerminal())
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestReservationStatusTransitions(t *testing.T) {
	assert.True(t, ReservationStatusConfirmed.CanTransitionTo(ReservationStatusCancelled))
	assert.False(t, ReservationStatusCancelled.CanTransitionTo(ReservationStatusConfirmed))
	assert.False(t, ReservationStatusCancelled.CanTransitionTo(ReservationStatusCancelled))
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, status)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)
}

func TestRoleStaff(t *testing.T) {
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleStaff.IsStaff())
	assert.False(t, RoleCustomer.IsStaff())
}

func TestParseMenuCategory(t *testing.T) {
	cat, err := ParseMenuCategory("pizzas")
	require.NoError(t, err)
	assert.Equal(t, MenuCategoryPizzas, cat)

	_, err = ParseMenuCategory("sushi")
	assert.Error(t, err)
	assert.Len(t, MenuCategories(), 9)
}
