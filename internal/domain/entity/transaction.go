package entity

import "time"

// TransactionStatus is a stop on the fixed delivery pipeline.
type TransactionStatus string

const (
	// StatusEscrowPaid is the initial status: payment confirmed and held by
	// the platform.
	StatusEscrowPaid TransactionStatus = "ESCROW_PAID"
	// StatusInTransit is set by the seller marking the order shipped.
	StatusInTransit TransactionStatus = "IN_TRANSIT"
	// StatusDelivered is set by the buyer confirming receipt.
	StatusDelivered TransactionStatus = "DELIVERED"
	// StatusDisbursed is terminal: escrowed funds released to the farmer.
	// Only the platform's disbursement timer sets it, never a user action.
	StatusDisbursed TransactionStatus = "DISBURSED"
)

// statusRank fixes the pipeline order. Higher rank is further along.
var statusRank = map[TransactionStatus]int{
	StatusEscrowPaid: 0,
	StatusInTransit:  1,
	StatusDelivered:  2,
	StatusDisbursed:  3,
}

// String returns the string representation of the status.
func (s TransactionStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the pipeline stops.
func (s TransactionStatus) IsValid() bool {
	_, ok := statusRank[s]

	return ok
}

// Rank returns the status position in the pipeline, -1 for unknown values.
func (s TransactionStatus) Rank() int {
	rank, ok := statusRank[s]
	if !ok {
		return -1
	}

	return rank
}

// IsTerminal reports whether the status permits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusDisbursed
}

// CanAdvanceTo reports whether next is a legal forward move from s. The
// pipeline is monotonically non-decreasing; skipping intermediate stops is
// allowed, going backward or leaving a terminal status is not.
func (s TransactionStatus) CanAdvanceTo(next TransactionStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	if s.IsTerminal() {
		return false
	}

	return next.Rank() > s.Rank()
}

// DeliveryMode selects who transports the purchase.
type DeliveryMode string

const (
	// DeliveryAgriConnect is platform-managed delivery, for a fee.
	DeliveryAgriConnect DeliveryMode = "AGRICONNECT"
	// DeliverySelfTransport means the buyer arranges pickup.
	DeliverySelfTransport DeliveryMode = "SELF_TRANSPORT"
)

// IsValid checks if the DeliveryMode is a valid value.
func (m DeliveryMode) IsValid() bool {
	switch m {
	case DeliveryAgriConnect, DeliverySelfTransport:
		return true
	default:
		return false
	}
}

// Transaction records a single purchase. It is created only after a
// successful payment step, mutated only through the status-update operation,
// and never deleted. Once disbursed it is immutable.
type Transaction struct {
	ID       string
	BuyerID  string
	SellerID string
	CropID   string

	// Amount in rupees: unit price times the fixed lot size, plus the
	// delivery fee for platform-managed delivery.
	Amount int64

	Status       TransactionStatus
	DeliveryMode DeliveryMode

	// TrackingInfo is an optional carrier reference attached when the seller
	// marks the order shipped.
	TrackingInfo string

	DeliveryAddress  string
	EstimatedArrival time.Time
	CreatedAt        time.Time
}
