package handler

import (
	"log/slog"
	"net/http"

	"agriconnect/internal/delivery/http/response"
	"agriconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommunityHandler holds dependencies for the community agent workflows.
type CommunityHandler struct {
	verificationUC usecase.VerificationUsecase
	listingUC      usecase.ListingUsecase
	logger         *slog.Logger
}

// NewCommunityHandler is the constructor for CommunityHandler, injected by Fx.
func NewCommunityHandler(
	verificationUC usecase.VerificationUsecase,
	listingUC usecase.ListingUsecase,
	logger *slog.Logger,
) *CommunityHandler {
	return &CommunityHandler{
		verificationUC: verificationUC,
		listingUC:      listingUC,
		logger:         logger,
	}
}

// EnrollFarmer proxy-registers a farmer on the agent's behalf.
func (h *CommunityHandler) EnrollFarmer(c echo.Context) error {
	agentID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.ProxyEnrollInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	farmer, err := h.verificationUC.ProxyEnrollFarmer(c.Request().Context(), agentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, farmer, "Farmer enrolled successfully")
}

// ListCrop proxy-lists a crop on a farmer's behalf.
func (h *CommunityHandler) ListCrop(c echo.Context) error {
	agentID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AddCropInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid crop input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	crop, err := h.listingUC.ProxyListCrop(c.Request().Context(), agentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, crop, "Crop listed successfully")
}

// Overview assembles the agent's regional dashboard.
func (h *CommunityHandler) Overview(c echo.Context) error {
	agentID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	overview, err := h.verificationUC.CommunityOverview(c.Request().Context(), agentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "Overview retrieved successfully")
}

// RequestUserVerification flags a user for community review.
func (h *CommunityHandler) RequestUserVerification(c echo.Context) error {
	if err := h.verificationUC.RequestUserVerification(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification requested")
}

// VerifyUser grants verification to a user.
func (h *CommunityHandler) VerifyUser(c echo.Context) error {
	if err := h.verificationUC.VerifyUser(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User verified")
}

// TrustScore computes the derived rating for a user.
func (h *CommunityHandler) TrustScore(c echo.Context) error {
	score, err := h.verificationUC.TrustScore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"trust_score": score}, "Trust score computed")
}
