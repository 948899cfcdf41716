package impl

import (
	"context"
	"log/slog"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
)

type accountService struct {
	gateway      service.AuthGateway
	tokenService service.TokenService
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewAccountService creates the account usecase. Identity decisions belong to
// the gateway; this service mirrors the returned user into the entity store
// and issues session tokens.
func NewAccountService(
	gateway service.AuthGateway,
	tokenService service.TokenService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		gateway:      gateway,
		tokenService: tokenService,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Signup registers a new account through the auth gateway.
func (s *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	user, err := s.gateway.Signup(ctx, input.Name, input.Phone, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.mirrorUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("account registered",
		slog.String("user_id", user.ID),
		slog.String("phone", user.Phone),
	)

	return s.issueSession(user)
}

// Login authenticates through the auth gateway.
func (s *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := s.gateway.Login(ctx, input.Phone, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.mirrorUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueSession(user)
}

// AssignRole sets the role on a role-less account. Roles are permanent once
// chosen.
func (s *accountService) AssignRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	current, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if current.Role != entity.RoleUnset {
		return nil, domainerrors.ErrRoleAlreadySet
	}

	user, err := s.gateway.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	if err := s.mirrorUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("role assigned",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// CompleteProfile fills in location, payout and coordinate details.
func (s *accountService) CompleteProfile(ctx context.Context, userID string, input *usecase.CompleteProfileInput) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Location != "" {
		user.Location = input.Location
	}
	if input.BankAccount != "" {
		user.BankAccount = input.BankAccount
	}
	if input.IFSC != "" {
		user.IFSC = input.IFSC
	}
	if input.Coords != nil {
		user.Coords = input.Coords
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// GetUser retrieves a user by id.
func (s *accountService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// mirrorUser upserts the gateway's view of the user into the entity store so
// marketplace operations can reference it locally.
func (s *accountService) mirrorUser(ctx context.Context, user *entity.User) error {
	existing, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			if err := s.userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to mirror new user")
			}

			return nil
		}

		return errors.Wrap(err, "failed to look up mirrored user")
	}

	// Local profile fields win over the gateway's copy.
	user.Location = firstNonEmpty(user.Location, existing.Location)
	user.BankAccount = firstNonEmpty(user.BankAccount, existing.BankAccount)
	user.IFSC = firstNonEmpty(user.IFSC, existing.IFSC)
	if user.Coords == nil {
		user.Coords = existing.Coords
	}
	user.EnrolledBy = firstNonEmpty(user.EnrolledBy, existing.EnrolledBy)
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mirror user update")
	}

	return nil
}

func (s *accountService) issueSession(user *entity.User) (*usecase.AuthOutput, error) {
	roles := []string{}
	if user.Role != entity.RoleUnset {
		roles = append(roles, string(user.Role))
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user.ID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
