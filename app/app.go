package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"diamant-rouge-catalog/config"
	"diamant-rouge-catalog/db"
	"diamant-rouge-catalog/metrics"
	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/pricing"
	"diamant-rouge-catalog/repository"
	"diamant-rouge-catalog/service"
	"diamant-rouge-catalog/utils"
)

const pushJob = "diamant_rouge_catalog"

// Repositories groups the persistence collaborators of a run
type Repositories struct {
	Products   repository.ProductRepositoryInterface
	Categories repository.CategoryRepositoryInterface
	close      func()
}

// Close releases the underlying connection pool, if any
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Run wires the pipeline from cfg and executes one catalog generation run.
// Errors are returned only for setup failures; the run itself always yields a summary.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*models.RunSummary, error) {
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	engine, err := newPricingEngine(cfg)
	if err != nil {
		return nil, err
	}

	source, err := newAssetSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer repos.Close()

	m := metrics.New()
	catalogService := service.NewCatalogService(source, repos.Products, repos.Categories, engine, service.CatalogOptions{
		RunID:         runID,
		Rand:          utils.NewRand(cfg.RandomSeed),
		Metrics:       m,
		Logger:        logger,
		MaxTries:      cfg.Persist.MaxTries,
		RetryInterval: cfg.Persist.RetryInterval,
	})

	summary := catalogService.Run(ctx)

	if cfg.PushgatewayURL != "" {
		// the run context may already be canceled
		pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := m.Push(pushCtx, cfg.PushgatewayURL, pushJob); err != nil {
			logger.Warn("⚠️  Could not push run metrics", "url", cfg.PushgatewayURL, "error", err)
		}
	}

	return summary, nil
}

func newPricingEngine(cfg *config.Config) (*pricing.Engine, error) {
	if cfg.PricingConfigPath != "" {
		return pricing.LoadEngine(cfg.PricingConfigPath)
	}
	return pricing.NewEngine(nil)
}

func newAssetSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.AssetSourceInterface, error) {
	switch cfg.Assets.Source {
	case config.AssetSourceDrive:
		return service.NewDriveSource(ctx, cfg.Assets.CredentialsPath, cfg.Assets.DriveFolderID, logger)
	case config.AssetSourceFilesystem:
		var probe service.ImageProbeInterface
		if cfg.Assets.VerifyImages {
			probe = service.NewImageProbe()
		}
		return service.NewFilesystemSource(cfg.Assets.ImagesDir, cfg.Assets.ImageURLPrefix, probe, logger), nil
	default:
		return nil, fmt.Errorf("unknown asset source %q", cfg.Assets.Source)
	}
}

func newRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Repositories, error) {
	if cfg.DryRun {
		logger.Info("🧪 Dry run: products are kept in memory")
		return &Repositories{
			Products:   repository.NewMemoryProductRepository(),
			Categories: repository.NewMemoryCategoryRepository(nil),
		}, nil
	}

	pool, err := db.InitDB(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Repositories{
		Products:   repository.NewProductRepository(pool, logger),
		Categories: repository.NewCategoryRepository(pool, logger),
		close:      func() { db.CloseDB(pool) },
	}, nil
}
