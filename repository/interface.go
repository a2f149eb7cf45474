package repository

import (
	"context"
	"errors"
	"fmt"

	"diamant-rouge-catalog/models"
)

var (
	// ErrAlreadyExists is returned when a product with the same SKU is stored already
	ErrAlreadyExists = errors.New("product already exists")
	// ErrCategoryNotFound is returned when a category slug has no persisted id
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepositoryInterface defines the contract for product persistence
type ProductRepositoryInterface interface {
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	Create(ctx context.Context, product *models.ProductRecord) (int, error)
}

// CategoryRepositoryInterface defines the contract for the category registry
type CategoryRepositoryInterface interface {
	ListIDsBySlug(ctx context.Context) (map[models.Category]int, error)
}

// CategoryID resolves category against the ids returned by ListIDsBySlug
func CategoryID(ids map[models.Category]int, category models.Category) (int, error) {
	id, ok := ids[category]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}
	return id, nil
}
