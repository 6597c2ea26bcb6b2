package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	next, ok := StatusPending.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusPreparing, next)

	next, ok = StatusPreparing.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusReady, next)

	next, ok = StatusReady.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	_, ok = StatusCompleted.Next()
	assert.False(t, ok)

	_, ok = OrderStatus("bogus").Next()
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name      string
		current   OrderStatus
		requested OrderStatus
		allowed   bool
	}{
		{"pending to preparing", StatusPending, StatusPreparing, true},
		{"preparing to ready", StatusPreparing, StatusReady, true},
		{"ready to completed", StatusReady, StatusCompleted, true},
		{"same state resubmission", StatusPreparing, StatusPreparing, false},
		{"skipping a state", StatusPending, StatusReady, false},
		{"moving backward", StatusReady, StatusPreparing, false},
		{"terminal state", StatusCompleted, StatusPending, false},
		{"unknown current", OrderStatus("bogus"), StatusPending, false},
		{"unknown target", StatusPending, OrderStatus("bogus"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.current, tc.requested)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("preparing")
	assert.NoError(t, err)
	assert.Equal(t, StatusPreparing, status)

	_, err = ParseOrderStatus("Preparing")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestOrderItemsTotal(t *testing.T) {
	items := OrderItems{
		{Name: "Nasi Goreng", Price: 50, Quantity: 2},
		{Name: "Es Teh", Price: 30, Quantity: 1},
	}
	assert.Equal(t, 130.0, items.Total())
	assert.Equal(t, 0.0, OrderItems{}.Total())
}
