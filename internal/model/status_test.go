package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{name: "pending", input: "PENDING", want: StatusPending},
		{name: "confirmed", input: "CONFIRMED", want: StatusConfirmed},
		{name: "preparing", input: "PREPARING", want: StatusPreparing},
		{name: "ready", input: "READY", want: StatusReady},
		{name: "delivered", input: "DELIVERED", want: StatusDelivered},
		{name: "cancelled", input: "CANCELLED", want: StatusCancelled},
		{name: "lowercase rejected", input: "pending", wantErr: true},
		{name: "unknown rejected", input: "SHIPPED", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending skips to preparing", from: StatusPending, to: StatusPreparing, want: false},
		{name: "confirmed to preparing", from: StatusConfirmed, to: StatusPreparing, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "preparing to ready", from: StatusPreparing, to: StatusReady, want: true},
		{name: "preparing straight to delivered", from: StatusPreparing, to: StatusDelivered, want: true},
		{name: "preparing cannot cancel", from: StatusPreparing, to: StatusCancelled, want: false},
		{name: "ready to delivered", from: StatusReady, to: StatusDelivered, want: true},
		{name: "delivered is terminal", from: StatusDelivered, to: StatusPending, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "no self transition", from: StatusPending, to: StatusPending, want: false},
		{name: "no backwards transition", from: StatusPreparing, to: StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusPreparing.Terminal())
	assert.False(t, StatusReady.Terminal())
}

func TestParsePaymentMethod(t *testing.T) {
	for _, raw := range []string{"cash", "card", "paypal", "bank_transfer", "provider"} {
		method, err := ParsePaymentMethod(raw)
		require.NoError(t, err)
		assert.Equal(t, PaymentMethod(raw), method)
	}

	_, err := ParsePaymentMethod("bitcoin")
	assert.Error(t, err)
}
