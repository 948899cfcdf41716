package repository

import (
	"context"
	"errors"

	"agriconnect/internal/domain/entity"
)

// ErrCropNotFound is a domain-specific error returned when a crop is not found.
var ErrCropNotFound = errors.New("crop not found")

// CropRepository defines the standard operations for crop listing persistence.
type CropRepository interface {
	// FindByID retrieves a single crop by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Crop, error)

	// List retrieves every crop in the collection, newest first.
	List(ctx context.Context) ([]*entity.Crop, error)

	// ListByFarmer retrieves all crops owned by the given farmer.
	ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Crop, error)

	// Create persists a new crop entity to the storage.
	Create(ctx context.Context, crop *entity.Crop) error

	// Update modifies an existing crop entity in the storage.
	Update(ctx context.Context, crop *entity.Crop) error
}
