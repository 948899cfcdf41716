package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// ListingUsecase defines the interface for crop listing management.
type ListingUsecase interface {
	// AddCrop creates a farmer-authored listing. It starts unverified,
	// unrequested, and unsold.
	AddCrop(ctx context.Context, input *AddCropInput) (*entity.Crop, error)

	// ProxyListCrop creates a listing on a farmer's behalf, authored by a
	// community agent. Proxy listings start pre-verified.
	ProxyListCrop(ctx context.Context, agentID string, input *AddCropInput) (*entity.Crop, error)

	// BrowseCrops retrieves marketplace listings with optional name and
	// farmer-location substring filters.
	BrowseCrops(ctx context.Context, filter *BrowseCropsFilter) ([]*entity.Crop, error)

	// ListFarmerCrops retrieves a farmer's own listings.
	ListFarmerCrops(ctx context.Context, farmerID string) ([]*entity.Crop, error)

	// RequestCropVerification flags a crop for community review. It is a
	// no-op if the crop is already flagged or already verified.
	RequestCropVerification(ctx context.Context, cropID string) error

	// VerifyCrop grants verification and clears the request flag. Safe to
	// call on crops without a pending request; calling it twice leaves the
	// same final state as calling it once.
	VerifyCrop(ctx context.Context, cropID string) error

	// ListingShareQR renders a QR code for the crop's marketplace link.
	ListingShareQR(ctx context.Context, cropID string) ([]byte, error)
}

// --- Input DTOs ---

// AddCropInput defines the data required to create a listing.
type AddCropInput struct {
	FarmerID    string `json:"farmer_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Image       string `json:"image,omitempty"`
}

// BrowseCropsFilter narrows marketplace results. Empty fields match
// everything.
type BrowseCropsFilter struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
}
