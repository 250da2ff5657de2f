package service

import (
	"context"

	"github.com/finanzo/finanzo-backend/internal/domain"
)

// CategoryService serves the read-only category catalog
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetCategories retrieves categories, optionally filtered by type. An empty
// filter means all categories; any non-empty value is passed through as-is,
// so values outside income/expense match nothing.
func (s *CategoryService) GetCategories(ctx context.Context, typeFilter string) ([]*domain.Category, error) {
	var filter *domain.CategoryType
	if typeFilter != "" {
		t := domain.CategoryType(typeFilter)
		filter = &t
	}
	return s.categoryRepo.GetAll(ctx, filter)
}
