// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// LifecycleUsecase defines the interface for the transaction lifecycle engine:
// purchase creation, status progression, and the automatic escrow
// disbursement that follows delivery confirmation.
type LifecycleUsecase interface {
	// CreateTransaction records a purchase after payment confirmation. It
	// computes the amount and arrival estimate, creates the transaction in
	// ESCROW_PAID, and flips the crop's sold flag in the same atomic commit.
	// A crop that is already sold is rejected with no mutation.
	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error)

	// AdvanceStatus moves a transaction forward along the delivery pipeline.
	// Backward moves and mutations of a disbursed transaction are rejected.
	// Advancing into DELIVERED schedules the automatic disbursement.
	AdvanceStatus(ctx context.Context, input *AdvanceStatusInput) (*entity.Transaction, error)

	// ListTransactionsByParty retrieves the transactions a user participates
	// in, as buyer for vendors and as seller for farmers, newest first.
	ListTransactionsByParty(ctx context.Context, userID string, role entity.Role) ([]*entity.Transaction, error)
}

// --- Input DTOs ---

// CreateTransactionInput defines the data required to record a purchase.
type CreateTransactionInput struct {
	BuyerID         string              `json:"-"`
	CropID          string              `json:"crop_id" validate:"required"`
	DeliveryMode    entity.DeliveryMode `json:"delivery_mode" validate:"required"`
	DeliveryAddress string              `json:"delivery_address,omitempty"`
}

// AdvanceStatusInput defines the data required to advance a transaction.
type AdvanceStatusInput struct {
	TransactionID string                   `json:"-"`
	NextStatus    entity.TransactionStatus `json:"status" validate:"required"`
	TrackingInfo  string                   `json:"tracking_info,omitempty"`
}
