package service

import (
	"log/slog"
	"strings"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

// classifyAsset files asset under the category named by its filename prefix.
// Files without a known prefix are recorded as discarded.
func classifyAsset(c *models.Classification, asset models.RawAsset, logger *slog.Logger) {
	prefix := utils.CategoryPrefix(asset.Filename)
	category, ok := models.ParseCategory(prefix)
	if !ok || prefix != string(category) {
		logger.Debug("🗑️  Discarding file without category prefix",
			"file", asset.Filename, "folder", asset.ContainingFolder)
		c.Discarded = append(c.Discarded, asset.Path)
		return
	}

	if !strings.EqualFold(asset.ContainingFolder, string(category)) {
		logger.Debug("📁 Reclassified misplaced file",
			"file", asset.Filename, "folder", asset.ContainingFolder, "category", category)
		c.Reclassified++
	}
	c.Assets[category] = append(c.Assets[category], asset)
}
