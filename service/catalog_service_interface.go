package service

import (
	"context"

	"diamant-rouge-catalog/models"
)

// CatalogServiceInterface defines the contract for a catalog generation run
type CatalogServiceInterface interface {
	// Run processes every discovered asset once. It never returns an error;
	// failures are logged and counted in the summary.
	Run(ctx context.Context) *models.RunSummary
}
