package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamant-rouge-catalog/config"
	"diamant-rouge-catalog/models"
)

func dryRunConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	return &config.Config{
		Assets: config.AssetConfig{
			Source:         config.AssetSourceFilesystem,
			ImagesDir:      root,
			ImageURLPrefix: "/images/products",
		},
		Persist:    config.PersistConfig{MaxTries: 1},
		RandomSeed: 17,
		DryRun:     true,
	}
}

func TestRun_DryRun(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"rings/rings_white_halo_diamond_R-1.png",
		"rings/necklaces_yellow_pendant_N-1.png",
		"earrings/earrings_rose_drop_E-1.jpg",
		"earrings/IMG_0001.jpg",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	var pushes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pushes.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := dryRunConfig(t, root)
	cfg.PushgatewayURL = srv.URL

	summary, err := Run(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 3, summary.Discovered)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 1, summary.Discarded)
	assert.Equal(t, 1, summary.Reclassified)
	assert.Equal(t, 1, summary.Featured[models.CategoryRings])
	assert.Equal(t, int32(1), pushes.Load())
}

func TestRun_BadPricingConfig(t *testing.T) {
	cfg := dryRunConfig(t, t.TempDir())
	cfg.PricingConfigPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := Run(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "pricing config")
}
