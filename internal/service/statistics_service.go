package service

import (
	"context"
	"time"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/finanzo/finanzo-backend/internal/util"
)

// StatisticsService aggregates per-category totals over period windows
type StatisticsService struct {
	ledgerRepo domain.LedgerRepository
	now        func() time.Time
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(ledgerRepo domain.LedgerRepository) *StatisticsService {
	return &StatisticsService{
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
}

// TotalsByCategory sums a user's transactions of one category type, grouped
// by category, within the window the period token resolves to. Result order
// is unspecified.
func (s *StatisticsService) TotalsByCategory(ctx context.Context, userUID string, categoryType domain.CategoryType, period string) ([]*domain.CategoryTotal, error) {
	if !categoryType.Valid() {
		return nil, domain.ErrInvalidCategoryType
	}
	start, end := util.PeriodRange(period, s.now())
	return s.ledgerRepo.SumByCategory(ctx, userUID, categoryType, start, end)
}
