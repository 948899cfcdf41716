package impl

import (
	"context"
	"log/slog"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/region"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Trust scoring parameters. Everyone starts at the base score and earns the
// per-order bonus on completed activity; farmers additionally earn on
// disbursed income. The score caps at maxTrustScore and is never stored.
const (
	baseTrustScore    = 3.0
	maxTrustScore     = 5.0
	perOrderBonus     = 0.2
	earningsBonusStep = 2000.0
	perEarningsBonus  = 0.1
)

type verificationService struct {
	userRepo repository.UserRepository
	cropRepo repository.CropRepository
	txRepo   repository.TransactionRepository
	matcher  *region.Matcher
	logger   *slog.Logger
}

// NewVerificationService creates the identity verification workflow.
func NewVerificationService(
	userRepo repository.UserRepository,
	cropRepo repository.CropRepository,
	txRepo repository.TransactionRepository,
	matcher *region.Matcher,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	return &verificationService{
		userRepo: userRepo,
		cropRepo: cropRepo,
		txRepo:   txRepo,
		matcher:  matcher,
		logger:   logger,
	}
}

// RequestUserVerification flags the user for community review. Already-flagged
// and already-verified users are left untouched.
func (s *verificationService) RequestUserVerification(ctx context.Context, userID string) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if user.Verified || user.VerificationRequested {
		return nil
	}

	user.VerificationRequested = true
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to flag user for verification")
	}

	return nil
}

// VerifyUser grants verification and clears the request flag. Idempotent.
func (s *verificationService) VerifyUser(ctx context.Context, userID string) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if user.Verified && !user.VerificationRequested {
		return nil
	}

	user.Verified = true
	user.VerificationRequested = false
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to verify user")
	}

	s.logger.Info("user verified", slog.String("user_id", user.ID))

	return nil
}

// ProxyEnrollFarmer creates a pre-verified farmer account on someone's behalf
// and records the enrolling agent.
func (s *verificationService) ProxyEnrollFarmer(ctx context.Context, agentID string, input *usecase.ProxyEnrollInput) (*entity.User, error) {
	agent, err := s.findUser(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.Role != entity.RoleCommunity {
		return nil, domainerrors.ErrForbidden
	}

	if _, err := s.userRepo.FindByPhone(ctx, input.Phone); err == nil {
		return nil, domainerrors.ErrPhoneAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check phone uniqueness")
	}

	location := input.Location
	if location == "" {
		location = agent.Location
	}

	now := time.Now()
	farmer := &entity.User{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Phone:      input.Phone,
		Location:   location,
		Role:       entity.RoleFarmer,
		Verified:   true,
		Coords:     input.Coords,
		EnrolledBy: agent.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.Create(ctx, farmer); err != nil {
		return nil, errors.Wrap(err, "failed to create enrolled farmer")
	}

	s.logger.Info("farmer proxy-enrolled",
		slog.String("farmer_id", farmer.ID),
		slog.String("enrolled_by", agent.ID),
	)

	return farmer, nil
}

// TrustScore computes the derived rating from the transaction collection.
func (s *verificationService) TrustScore(ctx context.Context, userID string) (float64, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	score := baseTrustScore

	if user.Role == entity.RoleFarmer {
		txs, err := s.txRepo.ListBySeller(ctx, user.ID)
		if err != nil {
			return 0, errors.Wrap(err, "failed to list seller transactions")
		}

		var earnings int64
		for _, tx := range txs {
			if tx.Status == entity.StatusDisbursed {
				earnings += tx.Amount
			}
		}

		score += float64(earnings) / earningsBonusStep * perEarningsBonus
		score += float64(len(txs)) * perOrderBonus
	} else {
		txs, err := s.txRepo.ListByBuyer(ctx, user.ID)
		if err != nil {
			return 0, errors.Wrap(err, "failed to list buyer transactions")
		}

		score += float64(len(txs)) * perOrderBonus
	}

	if score > maxTrustScore {
		score = maxTrustScore
	}

	return score, nil
}

// CommunityOverview assembles the agent's regional dashboard.
func (s *verificationService) CommunityOverview(ctx context.Context, agentID string) (*usecase.CommunityOverview, error) {
	agent, err := s.findUser(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.Role != entity.RoleCommunity {
		return nil, domainerrors.ErrForbidden
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	overview := &usecase.CommunityOverview{
		RegionalFarmers:     make([]*entity.User, 0),
		PendingUserRequests: make([]*entity.User, 0),
		PendingCropRequests: make([]*entity.Crop, 0),
	}

	for _, user := range users {
		if user.ID == agent.ID || !s.matcher.Matches(agent, user) {
			continue
		}
		if user.Role == entity.RoleFarmer {
			overview.RegionalFarmers = append(overview.RegionalFarmers, user)
		}
		if user.VerificationRequested && !user.Verified {
			overview.PendingUserRequests = append(overview.PendingUserRequests, user)
		}
	}

	crops, err := s.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	for _, crop := range crops {
		if !crop.VerificationRequested || crop.Verified {
			continue
		}
		if region.IsRegional(agent.Location, crop.FarmerLocation) {
			overview.PendingCropRequests = append(overview.PendingCropRequests, crop)
		}
	}

	return overview, nil
}

func (s *verificationService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
