package handler

import (
	"log/slog"
	"net/http"

	"agriconnect/internal/delivery/http/response"
	"agriconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CropHandler holds dependencies for crop listing handlers.
type CropHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewCropHandler is the constructor for CropHandler, injected by Fx.
func NewCropHandler(uc usecase.ListingUsecase, logger *slog.Logger) *CropHandler {
	return &CropHandler{
		uc:     uc,
		logger: logger,
	}
}

// Browse handles the marketplace listing request with optional filters.
func (h *CropHandler) Browse(c echo.Context) error {
	filter := &usecase.BrowseCropsFilter{
		Name:     c.QueryParam("name"),
		Location: c.QueryParam("location"),
	}

	crops, err := h.uc.BrowseCrops(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops, "Crops retrieved successfully")
}

// Add handles a farmer's listing creation request.
func (h *CropHandler) Add(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AddCropInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid crop input")
	}
	input.FarmerID = userID
	if err := c.Validate(input); err != nil {
		return err
	}

	crop, err := h.uc.AddCrop(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, crop, "Crop listed successfully")
}

// Mine handles a farmer's request for their own listings.
func (h *CropHandler) Mine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	crops, err := h.uc.ListFarmerCrops(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops, "Crops retrieved successfully")
}

// ShareQR renders the listing share QR code as a PNG.
func (h *CropHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ListingShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// RequestVerification flags a crop for community review.
func (h *CropHandler) RequestVerification(c echo.Context) error {
	if err := h.uc.RequestCropVerification(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification requested")
}

// Verify grants verification to a crop.
func (h *CropHandler) Verify(c echo.Context) error {
	if err := h.uc.VerifyCrop(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Crop verified")
}
