package domain

import "github.com/shopspring/decimal"

// Budget is the per-user running balance, one row per user_uid. It is
// created lazily when a user records their first transaction and updated
// incrementally on every mutation, never recomputed from scratch.
type Budget struct {
	ID      int32           `json:"id"`
	UserUID string          `json:"user_uid"`
	Balance decimal.Decimal `json:"balance"`
}
