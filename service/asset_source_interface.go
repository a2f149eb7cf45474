package service

import (
	"context"

	"diamant-rouge-catalog/models"
)

// AssetSourceInterface defines the contract for discovering product photographs
type AssetSourceInterface interface {
	// Classify lists every image and groups it by the category in its filename prefix
	Classify(ctx context.Context) (*models.Classification, error)
	// ImageURL returns the public URL stored on the product for asset
	ImageURL(asset models.RawAsset) string
}

// ImageProbeInterface checks that an image file can be decoded
type ImageProbeInterface interface {
	Check(path string) error
}
