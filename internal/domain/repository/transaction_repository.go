package repository

import (
	"context"
	"errors"

	"agriconnect/internal/domain/entity"
)

// ErrTransactionNotFound is a domain-specific error returned when a
// transaction is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the standard operations for purchase record
// persistence.
type TransactionRepository interface {
	// FindByID retrieves a single transaction by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// ListByBuyer retrieves all transactions where the given user is the buyer.
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Transaction, error)

	// ListBySeller retrieves all transactions where the given user is the seller.
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Transaction, error)

	// ListByCrop retrieves all transactions referencing the given crop.
	ListByCrop(ctx context.Context, cropID string) ([]*entity.Transaction, error)

	// Create persists a new transaction entity to the storage.
	Create(ctx context.Context, tx *entity.Transaction) error

	// Update modifies an existing transaction entity in the storage.
	Update(ctx context.Context, tx *entity.Transaction) error
}
