package handler

import (
	"log/slog"
	"net/http"

	"agriconnect/internal/delivery/http/response"
	"agriconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssistantHandler exposes the in-app advice assistant.
type AssistantHandler struct {
	assistant service.AssistantService
	logger    *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(assistant service.AssistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    logger,
	}
}

type askRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

// Ask forwards the prompt to the text-generation endpoint.
func (h *AssistantHandler) Ask(c echo.Context) error {
	var input *askRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prompt input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	reply, err := h.assistant.Ask(c.Request().Context(), input.Prompt)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, askResponse{Reply: reply}, "Reply generated")
}
