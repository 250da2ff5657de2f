package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the error body every endpoint returns on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body for mutations that return no balance
type MessageResponse struct {
	Message string `json:"message"`
}

// BalanceResponse is the body for mutations that report the updated budget
// balance
type BalanceResponse struct {
	Message       string      `json:"message"`
	BudgetBalance json.Number `json:"budget_balance"`
}

// NewValidationError creates a 400 error response
func NewValidationError(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: detail})
}

// NewNotFoundError creates a 404 error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: detail})
}

// NewInternalError creates a 500 error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: detail})
}

// decimalNumber renders a decimal as an unquoted JSON number, keeping
// monetary values out of binary floating point on both sides of the wire.
func decimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
