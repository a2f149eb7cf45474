package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"

	"diamant-rouge-catalog/models"
)

type fakeDriveLister struct {
	children map[string][]*drive.File
	errs     map[string]error
}

func (f *fakeDriveLister) ListChildren(_ context.Context, parentID string, _ bool) ([]*drive.File, error) {
	if err := f.errs[parentID]; err != nil {
		return nil, err
	}
	return f.children[parentID], nil
}

func TestDriveSource_Classify(t *testing.T) {
	lister := &fakeDriveLister{
		children: map[string][]*drive.File{
			"root": {
				{Id: "f-necklaces", Name: "necklaces", MimeType: driveFolderMimeType},
				{Id: "f-rings", Name: "rings", MimeType: driveFolderMimeType},
				{Id: "f-broken", Name: "broken", MimeType: driveFolderMimeType},
			},
			"f-necklaces": {
				{Id: "n1", Name: "necklaces_yellow_pendant_ruby_NK-1.png", MimeType: "image/png"},
				{Id: "r9", Name: "rings_white_halo_diamond_R-9.jpg", MimeType: "image/jpeg"},
				{Id: "doc", Name: "readme", MimeType: "application/pdf"},
			},
			"f-rings": {
				{Id: "x1", Name: "misc_photo.png", MimeType: "image/png"},
			},
		},
		errs: map[string]error{"f-broken": errors.New("forbidden")},
	}

	src := &DriveSource{lister: lister, folderID: "root", logger: discardLogger()}
	c, err := src.Classify(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"necklaces_yellow_pendant_ruby_NK-1.png"}, filenames(c.Assets[models.CategoryNecklaces]))
	require.Len(t, c.Assets[models.CategoryRings], 1)
	ring := c.Assets[models.CategoryRings][0]
	assert.Equal(t, "necklaces", ring.ContainingFolder)
	assert.Equal(t, "https://drive.google.com/uc?id=r9", src.ImageURL(ring))
	assert.Equal(t, 1, c.Reclassified)
	assert.Len(t, c.Discarded, 1)
}

func TestDriveSource_RootListError(t *testing.T) {
	lister := &fakeDriveLister{errs: map[string]error{"root": errors.New("quota exceeded")}}
	src := &DriveSource{lister: lister, folderID: "root", logger: discardLogger()}

	_, err := src.Classify(context.Background())
	assert.ErrorContains(t, err, "failed to list drive folders")
}
