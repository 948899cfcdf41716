package service

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// AuthGateway defines the interface to the authentication collaborator. The
// production implementation proxies a remote auth service; a store-backed
// implementation serves the same contract offline. A gateway failure must
// never touch core state.
type AuthGateway interface {
	// Signup registers a new account. The returned user has no role yet.
	Signup(ctx context.Context, name, phone, password string) (*entity.User, error)

	// Login authenticates by phone and password.
	Login(ctx context.Context, phone, password string) (*entity.User, error)

	// UpdateRole assigns the account's role. Roles are immutable once set
	// except through this operation.
	UpdateRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error)
}
