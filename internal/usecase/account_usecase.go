package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// AccountUsecase defines the interface for signup, login, role assignment and
// profile completion. Authentication itself is delegated to the auth gateway;
// this usecase only mirrors the returned identity into the entity store and
// issues session tokens.
type AccountUsecase interface {
	// Signup registers a new account through the auth gateway. The new user
	// has no role and is routed to role selection by the client.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login authenticates through the auth gateway.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// AssignRole sets the role on a role-less account.
	AssignRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error)

	// CompleteProfile fills in location, payout and coordinate details.
	CompleteProfile(ctx context.Context, userID string, input *CompleteProfileInput) (*entity.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

// --- DTOs ---

// SignupInput defines the data required to register.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CompleteProfileInput defines the optional profile fields.
type CompleteProfileInput struct {
	Location    string              `json:"location,omitempty"`
	BankAccount string              `json:"bank_account,omitempty"`
	IFSC        string              `json:"ifsc,omitempty"`
	Coords      *entity.Coordinates `json:"coords,omitempty"`
}

// AuthOutput carries the authenticated user and the session tokens issued for
// them.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}
