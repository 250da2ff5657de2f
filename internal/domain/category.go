package domain

import "context"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether t is one of the two known category types.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category classifies a transaction as income or expense and carries the
// display metadata the frontend renders. The catalog is read-only from the
// service's point of view.
type Category struct {
	ID    int32        `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color *string      `json:"color"`
	Icon  string       `json:"icon"`
}

type CategoryRepository interface {
	GetAll(ctx context.Context, typeFilter *CategoryType) ([]*Category, error)
}
