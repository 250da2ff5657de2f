package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[int32]*domain.Category)}
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(c *domain.Category) {
	m.Categories[c.ID] = c
}

// GetAll retrieves categories, optionally filtered by type
func (m *MockCategoryRepository) GetAll(_ context.Context, typeFilter *domain.CategoryType) ([]*domain.Category, error) {
	var result []*domain.Category
	for _, c := range m.Categories {
		if typeFilter != nil && c.Type != *typeFilter {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MockLedgerRepository is an in-memory implementation of
// domain.LedgerRepository. It applies the same protocol as the PostgreSQL
// repository - budget get-or-create, signed deltas, reversal against the
// live category - so service and handler tests exercise the real balance
// rules.
type MockLedgerRepository struct {
	Transactions map[int32]*domain.Transaction
	Budgets      map[string]*domain.Budget
	Categories   map[int32]*domain.Category

	NextTransactionID int32
	NextBudgetID      int32
}

// NewMockLedgerRepository creates a new MockLedgerRepository
func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{
		Transactions:      make(map[int32]*domain.Transaction),
		Budgets:           make(map[string]*domain.Budget),
		Categories:        make(map[int32]*domain.Category),
		NextTransactionID: 1,
		NextBudgetID:      1,
	}
}

// AddCategory registers a live category (helper for tests)
func (m *MockLedgerRepository) AddCategory(c *domain.Category) {
	m.Categories[c.ID] = c
}

// RemoveCategory simulates a category deletion with ON DELETE SET NULL
// semantics: transactions keep their rows but lose the association.
func (m *MockLedgerRepository) RemoveCategory(id int32) {
	delete(m.Categories, id)
	for _, t := range m.Transactions {
		if t.CategoryID != nil && *t.CategoryID == id {
			t.CategoryID = nil
		}
	}
}

func (m *MockLedgerRepository) getOrCreateBudget(userUID string) *domain.Budget {
	if b, ok := m.Budgets[userUID]; ok {
		return b
	}
	b := &domain.Budget{
		ID:      m.NextBudgetID,
		UserUID: userUID,
		Balance: decimal.Zero,
	}
	m.NextBudgetID++
	m.Budgets[userUID] = b
	return b
}

func (m *MockLedgerRepository) liveCategoryType(categoryID *int32) (domain.CategoryType, bool) {
	if categoryID == nil {
		return "", false
	}
	c, ok := m.Categories[*categoryID]
	if !ok {
		return "", false
	}
	return c.Type, true
}

// Add inserts a transaction, creating the budget on first use, and applies
// the signed delta to the balance.
func (m *MockLedgerRepository) Add(_ context.Context, t *domain.Transaction, delta decimal.Decimal) (*domain.Budget, error) {
	if t.CategoryID != nil {
		if _, ok := m.Categories[*t.CategoryID]; !ok {
			return nil, domain.ErrCategoryNotFound
		}
	}

	budget := m.getOrCreateBudget(t.UserUID)

	t.ID = m.NextTransactionID
	m.NextTransactionID++
	budgetID := budget.ID
	t.BudgetID = &budgetID

	stored := *t
	m.Transactions[t.ID] = &stored

	budget.Balance = budget.Balance.Add(delta)
	result := *budget
	return &result, nil
}

// Update replaces a transaction's state and moves the balance by "reverse
// old, apply new", deriving the old sign from the live category.
func (m *MockLedgerRepository) Update(_ context.Context, id int32, data *domain.UpdateTransactionData) (*domain.Budget, error) {
	t, ok := m.Transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	if t.BudgetID == nil {
		return nil, domain.ErrBudgetNotFound
	}
	var budget *domain.Budget
	for _, b := range m.Budgets {
		if b.ID == *t.BudgetID {
			budget = b
		}
	}
	if budget == nil {
		return nil, domain.ErrBudgetNotFound
	}
	if _, ok := m.Categories[data.CategoryID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}

	delta := decimal.Zero
	if oldType, ok := m.liveCategoryType(t.CategoryID); ok {
		delta = domain.SignedDelta(oldType, t.Amount).Neg()
	}
	delta = delta.Add(domain.SignedDelta(data.CategoryType, data.Amount))

	t.Amount = data.Amount
	categoryID := data.CategoryID
	t.CategoryID = &categoryID
	t.Date = data.Date

	budget.Balance = budget.Balance.Add(delta)
	result := *budget
	return &result, nil
}

// Delete removes a transaction and reverses its live contribution.
func (m *MockLedgerRepository) Delete(_ context.Context, id int32) error {
	t, ok := m.Transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	budget, ok := m.Budgets[t.UserUID]
	if !ok {
		return domain.ErrBudgetNotFound
	}

	if catType, ok := m.liveCategoryType(t.CategoryID); ok {
		budget.Balance = budget.Balance.Add(domain.SignedDelta(catType, t.Amount).Neg())
	}

	delete(m.Transactions, id)
	return nil
}

// ListByUser returns the user's transactions with live categories, newest
// first, with start <= date < end.
func (m *MockLedgerRepository) ListByUser(_ context.Context, userUID string, start, end time.Time) ([]*domain.TransactionWithCategory, error) {
	var result []*domain.TransactionWithCategory
	for _, t := range m.Transactions {
		if t.UserUID != userUID {
			continue
		}
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		if t.CategoryID == nil {
			continue
		}
		c, ok := m.Categories[*t.CategoryID]
		if !ok {
			continue
		}
		result = append(result, &domain.TransactionWithCategory{
			Transaction: *t,
			Category:    *c,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Transaction.Date.After(result[j].Transaction.Date)
	})
	return result, nil
}

// SumByCategory groups the user's transactions of one type by category name
// and color within [start, end).
func (m *MockLedgerRepository) SumByCategory(_ context.Context, userUID string, categoryType domain.CategoryType, start, end time.Time) ([]*domain.CategoryTotal, error) {
	type key struct {
		name  string
		color string
	}
	totals := make(map[key]*domain.CategoryTotal)
	for _, t := range m.Transactions {
		if t.UserUID != userUID || t.CategoryID == nil {
			continue
		}
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		c, ok := m.Categories[*t.CategoryID]
		if !ok || c.Type != categoryType {
			continue
		}
		k := key{name: c.Name}
		if c.Color != nil {
			k.color = *c.Color
		}
		if existing, ok := totals[k]; ok {
			existing.Total = existing.Total.Add(t.Amount)
		} else {
			totals[k] = &domain.CategoryTotal{
				Category: c.Name,
				Color:    c.Color,
				Total:    t.Amount,
			}
		}
	}

	var result []*domain.CategoryTotal
	for _, ct := range totals {
		result = append(result, ct)
	}
	return result, nil
}

// Balance returns the stored balance for a user (helper for invariant
// assertions).
func (m *MockLedgerRepository) Balance(userUID string) decimal.Decimal {
	if b, ok := m.Budgets[userUID]; ok {
		return b.Balance
	}
	return decimal.Zero
}

// SignedSum recomputes the signed sum of a user's live transactions from
// scratch (helper for invariant assertions).
func (m *MockLedgerRepository) SignedSum(userUID string) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range m.Transactions {
		if t.UserUID != userUID {
			continue
		}
		if catType, ok := m.liveCategoryType(t.CategoryID); ok {
			sum = sum.Add(domain.SignedDelta(catType, t.Amount))
		}
	}
	return sum
}
