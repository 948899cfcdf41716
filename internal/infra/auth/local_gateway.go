package auth

import (
	"context"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localGateway implements AuthGateway directly against the entity store. It
// keeps deployments without the remote auth service fully functional; those
// accounts carry a bcrypt hash on the user record.
type localGateway struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
}

// NewLocalGateway creates a store-backed AuthGateway.
func NewLocalGateway(userRepo repository.UserRepository, hasher service.PasswordHasher) service.AuthGateway {
	return &localGateway{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Signup registers a new role-less account.
func (g *localGateway) Signup(ctx context.Context, name, phone, password string) (*entity.User, error) {
	if _, err := g.userRepo.FindByPhone(ctx, phone); err == nil {
		return nil, domainerrors.ErrPhoneAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check phone uniqueness")
	}

	hash, err := g.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        phone,
		Role:         entity.RoleUnset,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := g.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// Login authenticates by phone and password.
func (g *localGateway) Login(ctx context.Context, phone, password string) (*entity.User, error) {
	user, err := g.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.PasswordHash == "" || !g.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// UpdateRole assigns the account's role. Roles stick once set.
func (g *localGateway) UpdateRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error) {
	user, err := g.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.Role != entity.RoleUnset {
		return nil, domainerrors.ErrRoleAlreadySet
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	if err := g.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update role")
	}

	return user, nil
}
