package repository

import (
	"context"
	"fmt"
	"log/slog"

	"diamant-rouge-catalog/db"
	"diamant-rouge-catalog/models"
)

// CategoryRepository reads the category registry
// Implements CategoryRepositoryInterface
type CategoryRepository struct {
	pool   db.DBTX
	logger *slog.Logger
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool db.DBTX, logger *slog.Logger) *CategoryRepository {
	return &CategoryRepository{pool: pool, logger: logger}
}

// Ensure CategoryRepository implements CategoryRepositoryInterface
var _ CategoryRepositoryInterface = (*CategoryRepository)(nil)

// ListIDsBySlug returns the persisted id of every known category.
// Rows with slugs outside the known categories are ignored.
func (r *CategoryRepository) ListIDsBySlug(ctx context.Context) (map[models.Category]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, slug FROM "Category" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	ids := make(map[models.Category]int)
	for rows.Next() {
		var (
			id   int
			slug string
		)
		if err := rows.Scan(&id, &slug); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		category, ok := models.ParseCategory(slug)
		if !ok {
			r.logger.Debug("ignoring unknown category slug", "slug", slug, "id", id)
			continue
		}
		ids[category] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return ids, nil
}
