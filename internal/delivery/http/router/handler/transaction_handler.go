package handler

import (
	"log/slog"
	"net/http"

	"agriconnect/internal/delivery/http/response"
	"agriconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler holds dependencies for purchase lifecycle handlers.
type TransactionHandler struct {
	uc     usecase.LifecycleUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.LifecycleUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create records a purchase after the payment step.
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	input.BuyerID = userID
	if err := c.Validate(input); err != nil {
		return err
	}

	tx, err := h.uc.CreateTransaction(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tx, "Transaction created successfully")
}

// AdvanceStatus moves a transaction forward along the delivery pipeline.
func (h *TransactionHandler) AdvanceStatus(c echo.Context) error {
	var input *usecase.AdvanceStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	input.TransactionID = c.Param("id")
	if err := c.Validate(input); err != nil {
		return err
	}

	tx, err := h.uc.AdvanceStatus(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "Transaction status updated")
}

// List retrieves the caller's transactions, newest first.
func (h *TransactionHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	txs, err := h.uc.ListTransactionsByParty(c.Request().Context(), userID, currentRole(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, txs, "Transactions retrieved successfully")
}
