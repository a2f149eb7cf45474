package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

const driveFolderMimeType = "application/vnd.google-apps.folder"

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// driveLister lists the direct children of a Drive folder ordered by name
type driveLister interface {
	ListChildren(ctx context.Context, parentID string, foldersOnly bool) ([]*drive.File, error)
}

// DriveSource reads product photographs from category subfolders of a Google Drive folder
// Implements AssetSourceInterface
type DriveSource struct {
	lister   driveLister
	folderID string
	logger   *slog.Logger
}

// NewDriveSource creates a DriveSource
// credentialsPath should be the path to the Service Account JSON file
func NewDriveSource(ctx context.Context, credentialsPath, folderID string, logger *slog.Logger) (*DriveSource, error) {
	// option.WithCredentialsFile handles Service Account authentication
	client, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath), option.WithScopes(drive.DriveReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveSource{
		lister:   &driveFilesLister{client: client},
		folderID: folderID,
		logger:   logger,
	}, nil
}

// Ensure DriveSource implements AssetSourceInterface
var _ AssetSourceInterface = (*DriveSource)(nil)

// Classify lists the category subfolders of the root folder and the images in each
func (s *DriveSource) Classify(ctx context.Context) (*models.Classification, error) {
	folders, err := s.lister.ListChildren(ctx, s.folderID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list drive folders: %w", err)
	}

	c := models.NewClassification()
	for _, folder := range folders {
		files, err := s.lister.ListChildren(ctx, folder.Id, false)
		if err != nil {
			s.logger.Warn("⚠️  Could not list drive folder", "folder", folder.Name, "error", err)
			continue
		}

		for _, file := range files {
			// Check if it's an image
			if !imageMimeTypes[strings.ToLower(file.MimeType)] && !utils.IsImageFile(file.Name) {
				continue
			}
			classifyAsset(c, models.RawAsset{
				Filename:         file.Name,
				ContainingFolder: folder.Name,
				Path:             fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
			}, s.logger)
		}
	}

	return c, nil
}

// ImageURL returns the Drive download URL
func (s *DriveSource) ImageURL(asset models.RawAsset) string {
	return asset.Path
}

type driveFilesLister struct {
	client *drive.Service
}

func (l *driveFilesLister) ListChildren(ctx context.Context, parentID string, foldersOnly bool) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", parentID)
	if foldersOnly {
		query += fmt.Sprintf(" and mimeType='%s'", driveFolderMimeType)
	} else {
		query += fmt.Sprintf(" and mimeType!='%s'", driveFolderMimeType)
	}

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := l.client.Files.List().
			Context(ctx).
			Q(query).
			OrderBy("name").
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	return allFiles, nil
}
