package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderCreated, OrderConfirmed},
		{OrderCreated, OrderCancelled},
		{OrderConfirmed, OrderConfirmed},
		{OrderConfirmed, OrderPaid},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct {
		from, to OrderStatus
	}{
		{OrderCreated, OrderPaid},
		{OrderCreated, OrderCreated},
		{OrderConfirmed, OrderCancelled},
		{OrderConfirmed, OrderCreated},
		{OrderPaid, OrderConfirmed},
		{OrderPaid, OrderCancelled},
		{OrderCancelled, OrderConfirmed},
		{OrderCancelled, OrderCreated},
	}
	for _, tc := range rejected {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderCreated.Terminal())
	assert.False(t, OrderConfirmed.Terminal())
	assert.True(t, OrderPaid.Terminal())
	assert.True(t, OrderCancelled.Terminal())
}

func TestOrderItemStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderItemStatus
	}{
		{ItemNew, ItemStarted},
		{ItemNew, ItemReady},
		{ItemNew, ItemCancelled},
		{ItemStarted, ItemReady},
		{ItemStarted, ItemCancelled},
		{ItemReady, ItemServed},
		{ItemReady, ItemCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct {
		from, to OrderItemStatus
	}{
		{ItemNew, ItemServed},
		{ItemStarted, ItemNew},
		{ItemStarted, ItemServed},
		{ItemReady, ItemStarted},
		{ItemServed, ItemReady},
		{ItemServed, ItemCancelled},
		{ItemCancelled, ItemNew},
		{ItemCancelled, ItemReady},
	}
	for _, tc := range rejected {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestOrderItemStatusTerminal(t *testing.T) {
	assert.False(t, ItemNew.Terminal())
	assert.False(t, ItemStarted.Terminal())
	assert.False(t, ItemReady.Terminal())
	assert.True(t, ItemServed.Terminal())
	assert.True(t, ItemCancelled.Terminal())
}
