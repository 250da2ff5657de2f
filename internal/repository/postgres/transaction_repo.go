package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.LedgerRepository using PostgreSQL.
// Every mutation runs the whole balance-consistency sequence in one
// database transaction: a failure at any step rolls back all of it.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Add inserts a transaction and applies its signed delta to the owning
// budget, creating the budget first if the user has none. The upsert on
// budgets.user_uid closes the race between two concurrent first
// transactions for the same user.
func (r *TransactionRepository) Add(ctx context.Context, t *domain.Transaction, delta decimal.Decimal) (*domain.Budget, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	budget := &domain.Budget{}
	var balance pgtype.Numeric
	err = tx.QueryRow(ctx, `
		INSERT INTO budgets (user_uid, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_uid) DO UPDATE SET user_uid = EXCLUDED.user_uid
		RETURNING id, user_uid, balance`,
		t.UserUID).Scan(&budget.ID, &budget.UserUID, &balance)
	if err != nil {
		return nil, err
	}

	amount, err := decimalToPgNumeric(t.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO transactions (user_uid, category_id, amount, date, budget_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		t.UserUID, t.CategoryID, amount, t.Date, budget.ID).Scan(&t.ID)
	if err != nil {
		return nil, mapForeignKeyError(err)
	}
	budgetID := budget.ID
	t.BudgetID = &budgetID

	deltaNum, err := decimalToPgNumeric(delta)
	if err != nil {
		return nil, fmt.Errorf("invalid delta: %w", err)
	}
	err = tx.QueryRow(ctx, `
		UPDATE budgets SET balance = balance + $1 WHERE id = $2
		RETURNING balance`,
		deltaNum, budget.ID).Scan(&balance)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	budget.Balance = pgNumericToDecimal(balance)
	return budget, nil
}

// Update replaces the transaction's amount/category/date. The balance moves
// by "reverse old contribution, apply new": the old side derives its sign
// from the stored row's live category type, the new side from the
// caller-declared category type.
func (r *TransactionRepository) Update(ctx context.Context, id int32, data *domain.UpdateTransactionData) (*domain.Budget, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var oldAmount pgtype.Numeric
	var oldType pgtype.Text
	var budgetID pgtype.Int4
	err = tx.QueryRow(ctx, `
		SELECT t.amount, c.type, t.budget_id
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1
		FOR UPDATE OF t`,
		id).Scan(&oldAmount, &oldType, &budgetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	if !budgetID.Valid {
		return nil, domain.ErrBudgetNotFound
	}

	budget := &domain.Budget{}
	var balance pgtype.Numeric
	err = tx.QueryRow(ctx, `
		SELECT id, user_uid, balance FROM budgets WHERE id = $1 FOR UPDATE`,
		budgetID.Int32).Scan(&budget.ID, &budget.UserUID, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}

	// Reversal of the old contribution is skipped when the old category is
	// gone; its sign is unknowable at that point.
	delta := decimal.Zero
	if oldType.Valid {
		delta = domain.SignedDelta(domain.CategoryType(oldType.String), pgNumericToDecimal(oldAmount)).Neg()
	}
	delta = delta.Add(domain.SignedDelta(data.CategoryType, data.Amount))

	newAmount, err := decimalToPgNumeric(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	_, err = tx.Exec(ctx, `
		UPDATE transactions SET amount = $1, category_id = $2, date = $3 WHERE id = $4`,
		newAmount, data.CategoryID, data.Date, id)
	if err != nil {
		return nil, mapForeignKeyError(err)
	}

	deltaNum, err := decimalToPgNumeric(delta)
	if err != nil {
		return nil, fmt.Errorf("invalid delta: %w", err)
	}
	err = tx.QueryRow(ctx, `
		UPDATE budgets SET balance = balance + $1 WHERE id = $2
		RETURNING balance`,
		deltaNum, budget.ID).Scan(&balance)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	budget.Balance = pgNumericToDecimal(balance)
	return budget, nil
}

// Delete removes a transaction and reverses its contribution to the owning
// budget, resolved through the transaction's recorded user_uid. The inverse
// uses whatever category association is live at delete time.
func (r *TransactionRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var userUID string
	var amount pgtype.Numeric
	var catType pgtype.Text
	err = tx.QueryRow(ctx, `
		SELECT t.user_uid, t.amount, c.type
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1
		FOR UPDATE OF t`,
		id).Scan(&userUID, &amount, &catType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	var budgetID int32
	err = tx.QueryRow(ctx, `
		SELECT id FROM budgets WHERE user_uid = $1 FOR UPDATE`,
		userUID).Scan(&budgetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBudgetNotFound
		}
		return err
	}

	// A vanished category contributes nothing to reverse.
	delta := decimal.Zero
	if catType.Valid {
		delta = domain.SignedDelta(domain.CategoryType(catType.String), pgNumericToDecimal(amount)).Neg()
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return err
	}

	deltaNum, err := decimalToPgNumeric(delta)
	if err != nil {
		return fmt.Errorf("invalid delta: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE budgets SET balance = balance + $1 WHERE id = $2`, deltaNum, budgetID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListByUser retrieves a user's transactions with their categories, newest
// first, within [start, end). The inner join drops transactions whose
// category was deleted.
func (r *TransactionRepository) ListByUser(ctx context.Context, userUID string, start, end time.Time) ([]*domain.TransactionWithCategory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.user_uid, t.category_id, t.amount, t.date, t.budget_id,
		       c.id, c.name, c.type, c.color, c.icon
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_uid = $1 AND t.date >= $2 AND t.date < $3
		ORDER BY t.date DESC`,
		userUID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.TransactionWithCategory
	for rows.Next() {
		var tc domain.TransactionWithCategory
		var categoryID pgtype.Int4
		var budgetID pgtype.Int4
		var amount pgtype.Numeric
		var color pgtype.Text
		err := rows.Scan(
			&tc.Transaction.ID, &tc.Transaction.UserUID, &categoryID, &amount, &tc.Transaction.Date, &budgetID,
			&tc.Category.ID, &tc.Category.Name, &tc.Category.Type, &color, &tc.Category.Icon,
		)
		if err != nil {
			return nil, err
		}
		tc.Transaction.Amount = pgNumericToDecimal(amount)
		if categoryID.Valid {
			tc.Transaction.CategoryID = &categoryID.Int32
		}
		if budgetID.Valid {
			tc.Transaction.BudgetID = &budgetID.Int32
		}
		if color.Valid {
			tc.Category.Color = &color.String
		}
		result = append(result, &tc)
	}
	return result, rows.Err()
}

// SumByCategory aggregates a user's transactions of one category type by
// (name, color) within [start, end). Categories with no transactions in the
// window simply do not appear.
func (r *TransactionRepository) SumByCategory(ctx context.Context, userUID string, t domain.CategoryType, start, end time.Time) ([]*domain.CategoryTotal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.name, c.color, COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_uid = $1 AND c.type = $2 AND t.date >= $3 AND t.date < $4
		GROUP BY c.name, c.color`,
		userUID, string(t), start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*domain.CategoryTotal
	for rows.Next() {
		var ct domain.CategoryTotal
		var color pgtype.Text
		var total pgtype.Numeric
		if err := rows.Scan(&ct.Category, &color, &total); err != nil {
			return nil, err
		}
		if color.Valid {
			ct.Color = &color.String
		}
		ct.Total = pgNumericToDecimal(total)
		totals = append(totals, &ct)
	}
	return totals, rows.Err()
}

// Helper functions

// mapForeignKeyError turns a foreign-key violation on transactions.category_id
// into the domain error handlers report as a client fault.
func mapForeignKeyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return domain.ErrCategoryNotFound
	}
	return err
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
