package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeOrderStatus_IsValid(t *testing.T) {
	assert.True(t, ChangeOrderStatusPending.IsValid())
	assert.True(t, ChangeOrderStatusApproved.IsValid())
	assert.True(t, ChangeOrderStatusRejected.IsValid())
	assert.False(t, ChangeOrderStatus("cancelled").IsValid())
	assert.False(t, ChangeOrderStatus("").IsValid())
}

func TestChangeOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, ChangeOrderStatusPending.IsTerminal())
	assert.True(t, ChangeOrderStatusApproved.IsTerminal())
	assert.True(t, ChangeOrderStatusRejected.IsTerminal())
}

func TestChangeOrderStatus_IsDecision(t *testing.T) {
	// Pending is where orders start, never where they go.
	assert.False(t, ChangeOrderStatusPending.IsDecision())
	assert.True(t, ChangeOrderStatusApproved.IsDecision())
	assert.True(t, ChangeOrderStatusRejected.IsDecision())
}
