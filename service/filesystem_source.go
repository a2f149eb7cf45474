package service

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

// FilesystemSource reads product photographs from category folders on disk
// Implements AssetSourceInterface
type FilesystemSource struct {
	root      string
	urlPrefix string
	probe     ImageProbeInterface
	logger    *slog.Logger
}

// NewFilesystemSource creates a source rooted at root. probe may be nil.
func NewFilesystemSource(root, urlPrefix string, probe ImageProbeInterface, logger *slog.Logger) *FilesystemSource {
	return &FilesystemSource{
		root:      root,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		probe:     probe,
		logger:    logger,
	}
}

// Ensure FilesystemSource implements AssetSourceInterface
var _ AssetSourceInterface = (*FilesystemSource)(nil)

// Classify walks one level of subdirectories under root in lexical order.
// Unreadable directories are logged and skipped.
func (s *FilesystemSource) Classify(ctx context.Context) (*models.Classification, error) {
	c := models.NewClassification()

	folders, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Warn("⚠️  Could not read product images root", "root", s.root, "error", err)
		return c, nil
	}

	for _, folder := range folders {
		if err := ctx.Err(); err != nil {
			return c, err
		}
		if !folder.IsDir() {
			continue
		}

		dir := filepath.Join(s.root, folder.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Warn("⚠️  Could not read category folder", "folder", dir, "error", err)
			continue
		}

		for _, file := range files {
			if file.IsDir() || !utils.IsImageFile(file.Name()) {
				continue
			}
			asset := models.RawAsset{
				Filename:         file.Name(),
				ContainingFolder: folder.Name(),
				Path:             filepath.Join(dir, file.Name()),
			}
			if s.probe != nil {
				if err := s.probe.Check(asset.Path); err != nil {
					s.logger.Warn("⚠️  Skipping unreadable image", "file", asset.Path, "error", err)
					c.Unreadable = append(c.Unreadable, asset.Path)
					continue
				}
			}
			classifyAsset(c, asset, s.logger)
		}
	}

	return c, nil
}

// ImageURL builds the storefront path from the folder the file sits in
func (s *FilesystemSource) ImageURL(asset models.RawAsset) string {
	return s.urlPrefix + "/" + path.Join(asset.ContainingFolder, asset.Filename)
}
