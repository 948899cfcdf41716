package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"agriconnect/config"
	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/service"

	"github.com/pkg/errors"
)

// remoteGateway implements AuthGateway against the hosted auth service. Any
// transport failure surfaces as ErrAuthUnavailable so callers can tell a
// rejected credential from a dead collaborator.
type remoteGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// remoteUser is the auth service's user representation.
type remoteUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location,omitempty"`
	Role      string    `json:"role,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// authResponse is the envelope every auth endpoint returns.
type authResponse struct {
	User    *remoteUser `json:"user,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// NewRemoteGateway creates an AuthGateway backed by the remote auth service.
func NewRemoteGateway(cfg *config.Config, logger *slog.Logger) service.AuthGateway {
	return &remoteGateway{
		baseURL: cfg.Remote.AuthBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Remote.Timeout,
		},
		logger: logger,
	}
}

// Signup registers a new account with the auth service.
func (g *remoteGateway) Signup(ctx context.Context, name, phone, password string) (*entity.User, error) {
	payload := map[string]string{
		"name":     name,
		"phone":    phone,
		"password": password,
	}

	return g.post(ctx, "/signup", payload)
}

// Login authenticates by phone and password.
func (g *remoteGateway) Login(ctx context.Context, phone, password string) (*entity.User, error) {
	payload := map[string]string{
		"phone":    phone,
		"password": password,
	}

	return g.post(ctx, "/login", payload)
}

// UpdateRole assigns the account's role.
func (g *remoteGateway) UpdateRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error) {
	payload := map[string]string{
		"userId": userID,
		"role":   string(role),
	}

	return g.post(ctx, "/update-role", payload)
}

func (g *remoteGateway) post(ctx context.Context, path string, payload any) (*entity.User, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode auth request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build auth request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("auth service unreachable",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrAuthUnavailable
	}
	defer resp.Body.Close()

	var parsed authResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		g.logger.Warn("auth service returned malformed body",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrAuthUnavailable
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, mapAuthError(resp.StatusCode, parsed.Error)
	}
	if parsed.User == nil {
		return nil, domainerrors.ErrAuthUnavailable
	}

	return parsed.User.toEntity(), nil
}

// mapAuthError translates the auth service's rejection into a domain error.
func mapAuthError(status int, message string) error {
	switch status {
	case http.StatusUnauthorized:
		return domainerrors.ErrInvalidCredentials
	case http.StatusConflict:
		return domainerrors.ErrPhoneAlreadyRegistered
	case http.StatusNotFound:
		return domainerrors.ErrUserNotFound
	default:
		return errors.Errorf("auth service rejected request: %d %s", status, message)
	}
}

func (u *remoteUser) toEntity() *entity.User {
	return &entity.User{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Location:  u.Location,
		Role:      entity.Role(u.Role),
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
