package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	"agriconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultUnit     = "kg"
	defaultCategory = "Vegetables"
)

type listingService struct {
	cropRepo  repository.CropRepository
	userRepo  repository.UserRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewListingService creates the crop listing manager.
func NewListingService(
	cropRepo repository.CropRepository,
	userRepo repository.UserRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		cropRepo:  cropRepo,
		userRepo:  userRepo,
		qrService: qrService,
		logger:    logger,
	}
}

// AddCrop creates a farmer-authored listing.
func (s *listingService) AddCrop(ctx context.Context, input *usecase.AddCropInput) (*entity.Crop, error) {
	crop, err := s.buildCrop(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.cropRepo.Create(ctx, crop); err != nil {
		return nil, errors.Wrap(err, "failed to create crop")
	}

	s.logger.Info("crop listed",
		slog.String("crop_id", crop.ID),
		slog.String("farmer_id", crop.FarmerID),
	)

	return crop, nil
}

// ProxyListCrop creates a pre-verified listing on a farmer's behalf.
func (s *listingService) ProxyListCrop(ctx context.Context, agentID string, input *usecase.AddCropInput) (*entity.Crop, error) {
	agent, err := s.userRepo.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent")
	}
	if agent.Role != entity.RoleCommunity {
		return nil, domainerrors.ErrForbidden
	}

	crop, err := s.buildCrop(ctx, input)
	if err != nil {
		return nil, err
	}
	crop.Verified = true
	crop.ListedBy = agent.ID

	if err := s.cropRepo.Create(ctx, crop); err != nil {
		return nil, errors.Wrap(err, "failed to create proxy crop")
	}

	s.logger.Info("crop proxy-listed",
		slog.String("crop_id", crop.ID),
		slog.String("farmer_id", crop.FarmerID),
		slog.String("listed_by", agent.ID),
	)

	return crop, nil
}

// buildCrop assembles a listing with the owner's contact details denormalized
// onto it.
func (s *listingService) buildCrop(ctx context.Context, input *usecase.AddCropInput) (*entity.Crop, error) {
	farmer, err := s.userRepo.FindByID(ctx, input.FarmerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer")
	}
	if farmer.Role != entity.RoleFarmer {
		return nil, domainerrors.ErrForbidden
	}

	unit := input.Unit
	if unit == "" {
		unit = defaultUnit
	}
	category := input.Category
	if category == "" {
		category = defaultCategory
	}

	return &entity.Crop{
		ID:             uuid.New().String(),
		FarmerID:       farmer.ID,
		FarmerName:     farmer.Name,
		FarmerPhone:    farmer.Phone,
		FarmerLocation: farmer.Location,
		Name:           input.Name,
		Price:          input.Price,
		Quantity:       input.Quantity,
		Unit:           unit,
		Description:    input.Description,
		Category:       category,
		Image:          input.Image,
		CreatedAt:      time.Now(),
	}, nil
}

// BrowseCrops retrieves marketplace listings, optionally filtered by crop
// name and farmer location substrings.
func (s *listingService) BrowseCrops(ctx context.Context, filter *usecase.BrowseCropsFilter) ([]*entity.Crop, error) {
	crops, err := s.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	if filter == nil {
		filter = &usecase.BrowseCropsFilter{}
	}
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	location := strings.ToLower(strings.TrimSpace(filter.Location))

	filtered := make([]*entity.Crop, 0, len(crops))
	for _, crop := range crops {
		if name != "" && !strings.Contains(strings.ToLower(crop.Name), name) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(crop.FarmerLocation), location) {
			continue
		}
		filtered = append(filtered, crop)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// ListFarmerCrops retrieves a farmer's own listings.
func (s *listingService) ListFarmerCrops(ctx context.Context, farmerID string) ([]*entity.Crop, error) {
	crops, err := s.cropRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer crops")
	}

	return crops, nil
}

// RequestCropVerification flags a crop for community review. Already-flagged
// and already-verified crops are left untouched.
func (s *listingService) RequestCropVerification(ctx context.Context, cropID string) error {
	crop, err := s.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return domainerrors.ErrCropNotFound
		}

		return errors.Wrap(err, "failed to find crop")
	}

	if crop.Verified || crop.VerificationRequested {
		return nil
	}

	crop.VerificationRequested = true
	if err := s.cropRepo.Update(ctx, crop); err != nil {
		return errors.Wrap(err, "failed to flag crop for verification")
	}

	return nil
}

// VerifyCrop grants verification and clears the request flag. Idempotent.
func (s *listingService) VerifyCrop(ctx context.Context, cropID string) error {
	crop, err := s.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return domainerrors.ErrCropNotFound
		}

		return errors.Wrap(err, "failed to find crop")
	}

	if crop.Verified && !crop.VerificationRequested {
		return nil
	}

	crop.Verified = true
	crop.VerificationRequested = false
	if err := s.cropRepo.Update(ctx, crop); err != nil {
		return errors.Wrap(err, "failed to verify crop")
	}

	s.logger.Info("crop verified", slog.String("crop_id", crop.ID))

	return nil
}

// ListingShareQR renders a QR code for the crop's marketplace link.
func (s *listingService) ListingShareQR(ctx context.Context, cropID string) ([]byte, error) {
	if _, err := s.cropRepo.FindByID(ctx, cropID); err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	png, err := s.qrService.GenerateListingQR(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR")
	}

	return png, nil
}
