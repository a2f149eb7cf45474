package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"diamant-rouge-catalog/db"
	"diamant-rouge-catalog/models"
)

// ProductRepository writes products into the storefront's PostgreSQL schema
// Implements ProductRepositoryInterface
type ProductRepository struct {
	pool   db.DBTX
	logger *slog.Logger
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(pool db.DBTX, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{pool: pool, logger: logger}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// ExistsBySKU checks if a product exists by sku
func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM "Product" WHERE sku = $1)`
	if err := r.pool.QueryRow(ctx, query, sku).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}

	r.logger.Debug("🔍 Existence check", "sku", sku, "exists", exists)
	return exists, nil
}

// Create inserts a product with its translations and variations in one transaction
// and returns the new product id
func (r *ProductRepository) Create(ctx context.Context, p *models.ProductRecord) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	productQuery := `
		INSERT INTO "Product" (sku, "basePrice", featured, "categoryId", images, "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id`

	var id int
	err = tx.QueryRow(ctx, productQuery, p.SKU, p.BasePrice, p.Featured, p.CategoryID, p.Images).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: sku %s", ErrAlreadyExists, p.SKU)
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}

	translationQuery := `
		INSERT INTO "ProductTranslation" ("productId", language, name, description)
		VALUES ($1, $2, $3, $4)`
	for _, t := range p.Translations {
		if _, err := tx.Exec(ctx, translationQuery, id, string(t.Language), t.Name, t.Description); err != nil {
			return 0, fmt.Errorf("insert translation %s: %w", t.Language, err)
		}
	}

	variationQuery := `
		INSERT INTO "ProductVariation" ("productId", "variationType", "variationValue", "additionalPrice", inventory)
		VALUES ($1, $2, $3, $4, $5)`
	for _, v := range p.Variations {
		if _, err := tx.Exec(ctx, variationQuery, id, v.Type, v.Value, v.AdditionalPrice, v.Inventory); err != nil {
			return 0, fmt.Errorf("insert variation %s/%s: %w", v.Type, v.Value, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	r.logger.Debug("💾 Product inserted", "id", id, "sku", p.SKU,
		"translations", len(p.Translations), "variations", len(p.Variations))
	return id, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
