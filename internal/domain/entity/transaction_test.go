package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_CanAdvanceTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from TransactionStatus
		to   TransactionStatus
		want bool
	}{
		{name: "escrow to transit", from: StatusEscrowPaid, to: StatusInTransit, want: true},
		{name: "transit to delivered", from: StatusInTransit, to: StatusDelivered, want: true},
		{name: "delivered to disbursed", from: StatusDelivered, to: StatusDisbursed, want: true},
		{name: "skip to delivered", from: StatusEscrowPaid, to: StatusDelivered, want: true},
		{name: "skip to disbursed", from: StatusEscrowPaid, to: StatusDisbursed, want: true},
		{name: "backward", from: StatusDelivered, to: StatusInTransit, want: false},
		{name: "same status", from: StatusInTransit, to: StatusInTransit, want: false},
		{name: "out of terminal", from: StatusDisbursed, to: StatusDelivered, want: false},
		{name: "unknown source", from: TransactionStatus("PENDING"), to: StatusInTransit, want: false},
		{name: "unknown target", from: StatusEscrowPaid, to: TransactionStatus("REFUNDED"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestTransactionStatus_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusEscrowPaid.IsValid())
	assert.True(t, StatusInTransit.IsValid())
	assert.True(t, StatusDelivered.IsValid())
	assert.True(t, StatusDisbursed.IsValid())
	assert.False(t, TransactionStatus("PENDING").IsValid())
	assert.False(t, TransactionStatus("").IsValid())
}

func TestTransactionStatus_Rank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, StatusEscrowPaid.Rank())
	assert.Equal(t, 3, StatusDisbursed.Rank())
	assert.Equal(t, -1, TransactionStatus("PENDING").Rank())
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusDisbursed.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())
	assert.False(t, StatusEscrowPaid.IsTerminal())
}

func TestDeliveryMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, DeliveryAgriConnect.IsValid())
	assert.True(t, DeliverySelfTransport.IsValid())
	assert.False(t, DeliveryMode("DRONE").IsValid())
	assert.False(t, DeliveryMode("").IsValid())
}
