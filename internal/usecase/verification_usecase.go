package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// VerificationUsecase defines the interface for the community-agent-mediated
// identity workflow: verification requests and grants, proxy enrollment, the
// agent's regional dashboard, and the derived trust score.
type VerificationUsecase interface {
	// RequestUserVerification sets the farmer's own request flag.
	RequestUserVerification(ctx context.Context, userID string) error

	// VerifyUser grants verification to the target farmer.
	VerifyUser(ctx context.Context, userID string) error

	// ProxyEnrollFarmer creates a farmer account on someone's behalf. The
	// account is pre-verified and records the enrolling agent.
	ProxyEnrollFarmer(ctx context.Context, agentID string, input *ProxyEnrollInput) (*entity.User, error)

	// TrustScore computes the derived rating for a user. It is recomputed
	// from the transaction collection on every call and never persisted.
	TrustScore(ctx context.Context, userID string) (float64, error)

	// CommunityOverview assembles the agent's regional dashboard: their
	// farmers plus the verification queues scoped to their region.
	CommunityOverview(ctx context.Context, agentID string) (*CommunityOverview, error)
}

// --- DTOs ---

// ProxyEnrollInput defines the data required to proxy-register a farmer.
type ProxyEnrollInput struct {
	Name     string              `json:"name" validate:"required"`
	Phone    string              `json:"phone" validate:"required"`
	Location string              `json:"location,omitempty"`
	Coords   *entity.Coordinates `json:"coords,omitempty"`
}

// CommunityOverview is the agent's regional dashboard payload.
type CommunityOverview struct {
	RegionalFarmers     []*entity.User `json:"regional_farmers"`
	PendingUserRequests []*entity.User `json:"pending_user_requests"`
	PendingCropRequests []*entity.Crop `json:"pending_crop_requests"`
}
