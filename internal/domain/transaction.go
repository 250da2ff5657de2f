package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single monetary movement. Amount is always the
// magnitude; the sign of its contribution to the budget balance is derived
// from the category type at operation time.
type Transaction struct {
	ID         int32
	UserUID    string
	CategoryID *int32
	Amount     decimal.Decimal
	Date       time.Time
	BudgetID   *int32
}

// TransactionWithCategory pairs a transaction with its live category, as
// produced by listings. Transactions whose category was deleted do not
// appear (the join requires a live category).
type TransactionWithCategory struct {
	Transaction Transaction
	Category    Category
}

// UpdateTransactionData carries the replacement state applied by an update.
// CategoryType is the caller-declared type of the new category and decides
// the sign of the new contribution.
type UpdateTransactionData struct {
	Amount       decimal.Decimal
	CategoryID   int32
	Date         time.Time
	CategoryType CategoryType
}

// CategoryTotal is one aggregation row: the summed amount of a user's
// transactions in one category over some window.
type CategoryTotal struct {
	Category string
	Color    *string
	Total    decimal.Decimal
}

// SignedDelta returns the contribution of amount to a budget balance:
// positive for income, negative for expense.
func SignedDelta(t CategoryType, amount decimal.Decimal) decimal.Decimal {
	if t == CategoryTypeIncome {
		return amount
	}
	return amount.Neg()
}

// LedgerRepository is the store-side half of the balance-consistency
// protocol. Each mutation executes as a single database transaction:
// the transaction row and the owning budget's balance change commit
// together or not at all.
type LedgerRepository interface {
	// Add inserts t, creating the user's budget (balance 0) first if it
	// does not exist, and applies delta to the balance. Returns the budget
	// with its updated balance.
	Add(ctx context.Context, t *Transaction, delta decimal.Decimal) (*Budget, error)

	// Update replaces t's amount/category/date and moves the balance by
	// "reverse old contribution, apply new contribution". The old
	// contribution is derived from the stored row's live category type; if
	// that category is gone, the reversal for that side is skipped.
	Update(ctx context.Context, id int32, data *UpdateTransactionData) (*Budget, error)

	// Delete removes the transaction and reverses its live contribution.
	Delete(ctx context.Context, id int32) error

	// ListByUser returns the user's transactions with their categories,
	// newest first, with start <= date < end.
	ListByUser(ctx context.Context, userUID string, start, end time.Time) ([]*TransactionWithCategory, error)

	// SumByCategory groups the user's transactions of the given category
	// type by (name, color) within [start, end) and sums their amounts.
	SumByCategory(ctx context.Context, userUID string, t CategoryType, start, end time.Time) ([]*CategoryTotal, error)
}
