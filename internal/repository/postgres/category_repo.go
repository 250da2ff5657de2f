package postgres

import (
	"context"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// GetAll retrieves categories, optionally filtered by type
func (r *CategoryRepository) GetAll(ctx context.Context, typeFilter *domain.CategoryType) ([]*domain.Category, error) {
	query := `SELECT id, name, type, color, icon FROM categories`
	args := []any{}
	if typeFilter != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*typeFilter))
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		var color pgtype.Text
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &color, &c.Icon); err != nil {
			return nil, err
		}
		if color.Valid {
			c.Color = &color.String
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
