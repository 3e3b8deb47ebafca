package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLifecycle(t *testing.T) {
	// the happy path walks forward one step at a time
	assert.True(t, CanTransition(StatusPending, StatusConfirmed))
	assert.True(t, CanTransition(StatusConfirmed, StatusPreparing))
	assert.True(t, CanTransition(StatusPreparing, StatusOutForDelivery))
	assert.True(t, CanTransition(StatusOutForDelivery, StatusDelivered))

	// cancellation is only open before preparation starts
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
	assert.False(t, CanTransition(StatusPreparing, StatusCancelled))
	assert.False(t, CanTransition(StatusOutForDelivery, StatusCancelled))

	// no skipping, no going back, no leaving a terminal state
	assert.False(t, CanTransition(StatusPending, StatusPreparing))
	assert.False(t, CanTransition(StatusConfirmed, StatusPending))
	assert.False(t, CanTransition(StatusDelivered, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusConfirmed))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled,
	} {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus(""))
}

func TestIsCancellable(t *testing.T) {
	assert.True(t, IsCancellable(StatusPending))
	assert.True(t, IsCancellable(StatusConfirmed))
	assert.False(t, IsCancellable(StatusPreparing))
	assert.False(t, IsCancellable(StatusDelivered))
	assert.False(t, IsCancellable(StatusCancelled))
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentCash))
	assert.True(t, IsValidPaymentMethod(PaymentCard))
	assert.True(t, IsValidPaymentMethod(PaymentUPI))
	assert.False(t, IsValidPaymentMethod("cheque"))
}
