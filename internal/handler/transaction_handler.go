package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/finanzo/finanzo-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService *service.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledgerService *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// AddTransactionRequest represents the create transaction request body
type AddTransactionRequest struct {
	UserUID      string      `json:"user_uid"`
	CategoryID   int32       `json:"category_id"`
	Amount       json.Number `json:"amount"`
	Date         string      `json:"date"`
	CategoryType string      `json:"category_type"`
}

// UpdateTransactionRequest represents the update transaction request body
type UpdateTransactionRequest struct {
	Amount       json.Number `json:"amount"`
	CategoryID   int32       `json:"category_id"`
	Date         string      `json:"date"`
	CategoryType string      `json:"category_type"`
}

// TransactionResponse represents a transaction with its category in API
// responses
type TransactionResponse struct {
	ID       int32            `json:"id"`
	Amount   json.Number      `json:"amount"`
	Date     string           `json:"date"`
	Category CategoryResponse `json:"category"`
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req AddTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return NewValidationError(c, "Invalid amount")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return NewValidationError(c, "Invalid date")
	}

	input := service.AddTransactionInput{
		UserUID:      req.UserUID,
		CategoryID:   req.CategoryID,
		Amount:       amount,
		Date:         date,
		CategoryType: domain.CategoryType(req.CategoryType),
	}

	budget, err := h.ledgerService.AddTransaction(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUserUIDRequired) {
			return NewValidationError(c, "user_uid is required")
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Amount must not be negative")
		}
		if errors.Is(err, domain.ErrInvalidCategoryType) {
			return NewValidationError(c, "Invalid category type")
		}
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewValidationError(c, "Category not found")
		}
		log.Error().Err(err).Str("user_uid", req.UserUID).Msg("Failed to add transaction")
		return NewInternalError(c, "Failed to add transaction")
	}

	log.Info().Str("user_uid", budget.UserUID).Int32("budget_id", budget.ID).Msg("Transaction added")
	return c.JSON(http.StatusCreated, BalanceResponse{
		Message:       "Transaction added",
		BudgetBalance: decimalNumber(budget.Balance),
	})
}

// GetTransactions handles GET /transactions/:user_uid?period=
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userUID := c.Param("user_uid")
	period := c.QueryParam("period")
	if period == "" {
		period = "month"
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request().Context(), userUID, period)
	if err != nil {
		log.Error().Err(err).Str("user_uid", userUID).Str("period", period).Msg("Failed to list transactions")
		return NewInternalError(c, "Failed to list transactions")
	}

	response := make([]TransactionResponse, len(transactions))
	for i, tc := range transactions {
		response[i] = TransactionResponse{
			ID:       tc.Transaction.ID,
			Amount:   decimalNumber(tc.Transaction.Amount),
			Date:     tc.Transaction.Date.Format(time.RFC3339),
			Category: toCategoryResponse(&tc.Category),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateTransaction handles PUT /transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID")
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return NewValidationError(c, "Invalid amount")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return NewValidationError(c, "Invalid date")
	}

	input := service.UpdateTransactionInput{
		Amount:       amount,
		CategoryID:   req.CategoryID,
		Date:         date,
		CategoryType: domain.CategoryType(req.CategoryType),
	}

	budget, err := h.ledgerService.UpdateTransaction(c.Request().Context(), int32(id), input)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Amount must not be negative")
		}
		if errors.Is(err, domain.ErrInvalidCategoryType) {
			return NewValidationError(c, "Invalid category type")
		}
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewValidationError(c, "Category not found")
		}
		log.Error().Err(err).Int("transaction_id", id).Msg("Failed to update transaction")
		return NewInternalError(c, "Failed to update transaction")
	}

	log.Info().Int("transaction_id", id).Str("user_uid", budget.UserUID).Msg("Transaction updated")
	return c.JSON(http.StatusOK, BalanceResponse{
		Message:       "Transaction updated",
		BudgetBalance: decimalNumber(budget.Balance),
	})
}

// DeleteTransaction handles DELETE /transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID")
	}

	if err := h.ledgerService.DeleteTransaction(c.Request().Context(), int32(id)); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Int("transaction_id", id).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	log.Info().Int("transaction_id", id).Msg("Transaction deleted")
	return c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted"})
}

// dateFormats are tried in order: RFC 3339, zoneless ISO 8601, the plain
// "YYYY-MM-DD HH:MM:SS" form, and a bare date.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
