package repository

import "context"

// TransactionManager defines the interface for applying multiple store
// mutations as one indivisible commit. This is what makes the crop sold-flip
// and the purchase record append atomic from the caller's perspective: either
// both are visible or neither is, and no reader observes an intermediate
// state.
type TransactionManager interface {
	// Execute runs a function within a single store commit. If the function
	// returns an error, every mutation made through the factory's
	// repositories is discarded. Otherwise all of them are applied and
	// persisted together. Commits are serialized, so re-reading a record
	// inside Execute is the race check for concurrent purchases.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the commit in
// progress.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current commit.
	NewUserRepository() UserRepository

	// NewCropRepository returns a CropRepository bound to the current commit.
	NewCropRepository() CropRepository

	// NewTransactionRepository returns a TransactionRepository bound to the
	// current commit.
	NewTransactionRepository() TransactionRepository
}
