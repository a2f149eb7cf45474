package repository

import (
	"context"
	"fmt"
	"sync"

	"diamant-rouge-catalog/models"
)

// MemoryProductRepository keeps products in memory for dry runs
type MemoryProductRepository struct {
	mu       sync.Mutex
	nextID   int
	products []models.ProductRecord
	skus     map[string]int
}

// NewMemoryProductRepository creates an empty in-memory product store
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{nextID: 1, skus: make(map[string]int)}
}

var _ ProductRepositoryInterface = (*MemoryProductRepository)(nil)

// ExistsBySKU reports whether sku was stored
func (r *MemoryProductRepository) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.skus[sku]
	return ok, nil
}

// Create stores a copy of product
func (r *MemoryProductRepository) Create(_ context.Context, product *models.ProductRecord) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.skus[product.SKU]; ok {
		return 0, fmt.Errorf("%w: sku %s", ErrAlreadyExists, product.SKU)
	}
	id := r.nextID
	r.nextID++
	r.skus[product.SKU] = id
	r.products = append(r.products, *product)
	return id, nil
}

// Products returns the stored products in insertion order
func (r *MemoryProductRepository) Products() []models.ProductRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ProductRecord, len(r.products))
	copy(out, r.products)
	return out
}

// MemoryCategoryRepository serves a fixed slug to id mapping
type MemoryCategoryRepository struct {
	ids map[models.Category]int
}

// NewMemoryCategoryRepository returns the given mapping, or ids 1..4 in
// category order when ids is nil
func NewMemoryCategoryRepository(ids map[models.Category]int) *MemoryCategoryRepository {
	if ids == nil {
		ids = make(map[models.Category]int, len(models.Categories))
		for i, c := range models.Categories {
			ids[c] = i + 1
		}
	}
	return &MemoryCategoryRepository{ids: ids}
}

var _ CategoryRepositoryInterface = (*MemoryCategoryRepository)(nil)

// ListIDsBySlug returns a copy of the mapping
func (r *MemoryCategoryRepository) ListIDsBySlug(_ context.Context) (map[models.Category]int, error) {
	out := make(map[models.Category]int, len(r.ids))
	for k, v := range r.ids {
		out[k] = v
	}
	return out, nil
}
