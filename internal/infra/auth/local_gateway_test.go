package auth

import (
	"context"
	"testing"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	mockRepo "agriconnect/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocalGateway_Signup(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	gateway := NewLocalGateway(userRepo, NewBcryptHasher())
	ctx := context.Background()

	userRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Phone == "9000000001" &&
			user.Role == entity.RoleUnset &&
			user.PasswordHash != "" &&
			user.PasswordHash != "secret123"
	})).Return(nil)

	user, err := gateway.Signup(ctx, "Anita Sharma", "9000000001", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Anita Sharma", user.Name)
}

func TestLocalGateway_Signup_DuplicatePhone(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	gateway := NewLocalGateway(userRepo, NewBcryptHasher())
	ctx := context.Background()

	userRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(&entity.User{ID: "u1"}, nil)

	user, err := gateway.Signup(ctx, "Anita Sharma", "9000000001", "secret123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
}

func TestLocalGateway_Login(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := NewBcryptHasher()
	gateway := NewLocalGateway(userRepo, hasher)
	ctx := context.Background()

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	stored := &entity.User{ID: "u1", Phone: "9000000001", PasswordHash: hash}

	userRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(stored, nil)

	user, err := gateway.Login(ctx, "9000000001", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestLocalGateway_Login_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := NewBcryptHasher()
	gateway := NewLocalGateway(userRepo, hasher)
	ctx := context.Background()

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	stored := &entity.User{ID: "u1", Phone: "9000000001", PasswordHash: hash}

	userRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(stored, nil)

	user, err := gateway.Login(ctx, "9000000001", "wrong")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalGateway_Login_UnknownPhone(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	gateway := NewLocalGateway(userRepo, NewBcryptHasher())
	ctx := context.Background()

	userRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(nil, repository.ErrUserNotFound)

	user, err := gateway.Login(ctx, "9000000001", "secret123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalGateway_Login_PasswordlessAccountRejected(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	gateway := NewLocalGateway(userRepo, NewBcryptHasher())
	ctx := context.Background()

	// Proxy-enrolled accounts have no password hash and cannot log in locally.
	stored := &entity.User{ID: "u1", Phone: "9000000001"}
	userRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(stored, nil)

	user, err := gateway.Login(ctx, "9000000001", "anything")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalGateway_UpdateRole(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	gateway := NewLocalGateway(userRepo, NewBcryptHasher())
	ctx := context.Background()

	stored := &entity.User{ID: "u1", Phone: "9000000001"}
	userRepo.EXPECT().FindByID(ctx, "u1").Return(stored, nil)
	userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Role == entity.RoleFarmer
	})).Return(nil)

	user, err := gateway.UpdateRole(ctx, "u1", entity.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFarmer, user.Role)
}

func TestLocalGateway_UpdateRole_AlreadySet(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	gateway := NewLocalGateway(userRepo, NewBcryptHasher())
	ctx := context.Background()

	stored := &entity.User{ID: "u1", Role: entity.RoleVendor}
	userRepo.EXPECT().FindByID(ctx, "u1").Return(stored, nil)

	user, err := gateway.UpdateRole(ctx, "u1", entity.RoleFarmer)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrRoleAlreadySet)
}
