package service

import (
	"context"
	"strings"
	"time"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/finanzo/finanzo-backend/internal/util"
	"github.com/shopspring/decimal"
)

// LedgerService handles transaction mutations and listings. Sign decisions
// happen here (income adds, expense subtracts); atomicity of the paired
// transaction/balance writes is the repository's contract.
type LedgerService struct {
	ledgerRepo domain.LedgerRepository
	now        func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(ledgerRepo domain.LedgerRepository) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
}

// AddTransactionInput holds the input for recording a transaction
type AddTransactionInput struct {
	UserUID      string
	CategoryID   int32
	Amount       decimal.Decimal
	Date         time.Time
	CategoryType domain.CategoryType
}

// AddTransaction records a transaction and returns the owning budget with
// its updated balance. The budget is created on the fly for a never-seen
// user, inside the same atomic unit as the insert.
func (s *LedgerService) AddTransaction(ctx context.Context, input AddTransactionInput) (*domain.Budget, error) {
	if strings.TrimSpace(input.UserUID) == "" {
		return nil, domain.ErrUserUIDRequired
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if !input.CategoryType.Valid() {
		return nil, domain.ErrInvalidCategoryType
	}

	categoryID := input.CategoryID
	t := &domain.Transaction{
		UserUID:    input.UserUID,
		CategoryID: &categoryID,
		Amount:     input.Amount,
		Date:       input.Date,
	}

	return s.ledgerRepo.Add(ctx, t, domain.SignedDelta(input.CategoryType, input.Amount))
}

// UpdateTransactionInput holds the replacement state for a transaction
type UpdateTransactionInput struct {
	Amount       decimal.Decimal
	CategoryID   int32
	Date         time.Time
	CategoryType domain.CategoryType
}

// UpdateTransaction replaces a transaction's amount/category/date and moves
// the owning budget's balance by the difference of old and new
// contributions. Returns the budget with its updated balance.
func (s *LedgerService) UpdateTransaction(ctx context.Context, id int32, input UpdateTransactionInput) (*domain.Budget, error) {
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if !input.CategoryType.Valid() {
		return nil, domain.ErrInvalidCategoryType
	}

	return s.ledgerRepo.Update(ctx, id, &domain.UpdateTransactionData{
		Amount:       input.Amount,
		CategoryID:   input.CategoryID,
		Date:         input.Date,
		CategoryType: input.CategoryType,
	})
}

// DeleteTransaction removes a transaction and reverses its contribution to
// the owning budget's balance.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id int32) error {
	return s.ledgerRepo.Delete(ctx, id)
}

// ListTransactions returns a user's transactions with categories, newest
// first, scoped to the window the period token resolves to.
func (s *LedgerService) ListTransactions(ctx context.Context, userUID, period string) ([]*domain.TransactionWithCategory, error) {
	start, end := util.PeriodRange(period, s.now())
	return s.ledgerRepo.ListByUser(ctx, userUID, start, end)
}
