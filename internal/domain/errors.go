package domain

import "errors"

// Domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUserUIDRequired     = errors.New("user uid is required")
)
