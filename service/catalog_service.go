package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"diamant-rouge-catalog/catalog"
	"diamant-rouge-catalog/metrics"
	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/pricing"
	"diamant-rouge-catalog/repository"
	"diamant-rouge-catalog/utils"
)

// CatalogOptions holds the optional collaborators of a CatalogService
type CatalogOptions struct {
	RunID         string
	Rand          utils.Rand
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	FeaturedCaps  map[models.Category]int
	MaxTries      uint
	RetryInterval time.Duration
	// MaxNameSuffix caps numbered name candidates; zero means catalog.DefaultMaxSuffix
	MaxNameSuffix int
}

// CatalogService turns classified assets into persisted product records
// Implements CatalogServiceInterface
type CatalogService struct {
	source     AssetSourceInterface
	products   repository.ProductRepositoryInterface
	categories repository.CategoryRepositoryInterface
	pricing    *pricing.Engine
	opts       CatalogOptions
	logger     *slog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	source AssetSourceInterface,
	products repository.ProductRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	engine *pricing.Engine,
	opts CatalogOptions,
) *CatalogService {
	if opts.Rand == nil {
		opts.Rand = utils.NewRand(0)
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxTries == 0 {
		opts.MaxTries = 1
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = 500 * time.Millisecond
	}
	if opts.MaxNameSuffix <= 0 {
		opts.MaxNameSuffix = catalog.DefaultMaxSuffix
	}

	return &CatalogService{
		source:     source,
		products:   products,
		categories: categories,
		pricing:    engine,
		opts:       opts,
		logger:     opts.Logger,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// Generator holds the run-scoped state shared by every record of one run
type Generator struct {
	Names    *catalog.NameAssigner
	Featured *catalog.FeaturedCounter
	Pricing  *pricing.Engine
	Rand     utils.Rand
}

// NewGenerator creates fresh name and featured state for one run
func (s *CatalogService) NewGenerator() *Generator {
	return &Generator{
		Names:    catalog.NewNameAssigner(catalog.NewNameRegistryWithLimit(s.opts.MaxNameSuffix), s.opts.Rand),
		Featured: catalog.NewFeaturedCounter(s.opts.FeaturedCaps),
		Pricing:  s.pricing,
		Rand:     s.opts.Rand,
	}
}

// BuildRecord assembles the product record of one asset. A featured slot
// taken here stays taken even if the record is later not persisted.
func (g *Generator) BuildRecord(attrs models.ParsedAttributes, categoryID int, imageURL string) (*models.ProductRecord, error) {
	names := make(map[models.Language]string, len(models.Languages))
	for _, lang := range models.Languages {
		name, err := g.Names.Assign(attrs.Category, lang)
		if err != nil {
			return nil, fmt.Errorf("assign %s name: %w", lang, err)
		}
		names[lang] = name
	}

	text := attrs.SearchText()
	quote := g.Pricing.Quote(g.Rand, attrs.Category, text)
	featured := g.Featured.Select(attrs.Category, text)
	variations := catalog.GenerateVariations(g.Rand, attrs.Category, attrs.Metal)

	translations := make([]models.Translation, 0, len(models.Languages))
	for _, lang := range models.Languages {
		translations = append(translations, models.Translation{
			Language:    lang,
			Name:        names[lang],
			Description: catalog.ComposeDescription(g.Rand, lang, attrs),
		})
	}

	return &models.ProductRecord{
		SKU:          attrs.SKU,
		BasePrice:    quote.Total,
		Featured:     featured,
		CategoryID:   categoryID,
		Images:       []string{imageURL},
		Translations: translations,
		Variations:   variations,
	}, nil
}

// Run generates and persists one product per discovered asset
func (s *CatalogService) Run(ctx context.Context) *models.RunSummary {
	start := time.Now()
	summary := models.NewRunSummary(s.opts.RunID)
	m := s.opts.Metrics
	gen := s.NewGenerator()

	s.logger.Info("🔄 Starting catalog generation")

	classification, err := s.source.Classify(ctx)
	if err != nil {
		s.logger.Error("❌ Failed to discover product images", "error", err)
		if classification == nil {
			return s.finish(summary, gen, start)
		}
	}

	summary.Discovered = classification.Total()
	summary.Discarded = len(classification.Discarded)
	summary.Reclassified = classification.Reclassified
	summary.Skipped += len(classification.Unreadable)
	m.AssetsDiscovered.Add(float64(summary.Discovered))
	m.AssetsDiscarded.Add(float64(summary.Discarded))
	m.ProductsSkipped.WithLabelValues(metrics.ReasonUnreadable).Add(float64(len(classification.Unreadable)))

	categoryIDs, err := s.categories.ListIDsBySlug(ctx)
	if err != nil {
		s.logger.Error("❌ Failed to load categories", "error", err)
		categoryIDs = map[models.Category]int{}
	}

	s.logger.Info("📦 Processing product images",
		"assets", summary.Discovered,
		"discarded", summary.Discarded,
		"reclassified", summary.Reclassified,
	)

categories:
	for _, category := range models.Categories {
		assets := classification.Assets[category]
		if len(assets) == 0 {
			continue
		}
		categoryID, idErr := repository.CategoryID(categoryIDs, category)

		for _, asset := range assets {
			if ctx.Err() != nil {
				s.logger.Warn("🛑 Run aborted", "error", ctx.Err())
				summary.Aborted = true
				break categories
			}

			if errors.Is(idErr, repository.ErrCategoryNotFound) {
				s.logger.Warn("⚠️  Category not found, skipping", "category", category, "file", asset.Filename)
				summary.Skipped++
				m.ProductsSkipped.WithLabelValues(metrics.ReasonMissingCategory).Inc()
				continue
			}

			s.processAsset(ctx, gen, summary, category, categoryID, asset)
		}
	}

	return s.finish(summary, gen, start)
}

func (s *CatalogService) processAsset(ctx context.Context, gen *Generator, summary *models.RunSummary, category models.Category, categoryID int, asset models.RawAsset) {
	m := s.opts.Metrics
	attrs := utils.DecomposeFilename(category, asset.Filename)
	log := s.logger.With("category", category, "sku", attrs.SKU)

	exists, err := s.products.ExistsBySKU(ctx, attrs.SKU)
	if err != nil {
		log.Error("❌ Error checking existence", "error", err)
		summary.Failed++
		m.ProductsFailed.WithLabelValues(string(category)).Inc()
		return
	}
	if exists {
		log.Info("⏭️  Skipping product (already exists in database)")
		summary.Skipped++
		m.ProductsSkipped.WithLabelValues(metrics.ReasonExists).Inc()
		return
	}

	record, err := gen.BuildRecord(attrs, categoryID, s.source.ImageURL(asset))
	if err == nil {
		err = utils.Validate(record)
	}
	if err != nil {
		log.Error("❌ Error generating product", "file", asset.Filename, "error", err)
		summary.Failed++
		m.ProductsFailed.WithLabelValues(string(category)).Inc()
		return
	}

	id, err := s.persist(ctx, record, log)
	if err != nil {
		log.Error("❌ Error persisting product", "error", err)
		summary.Failed++
		m.ProductsFailed.WithLabelValues(string(category)).Inc()
		return
	}

	en, _ := record.Translation(models.LanguageEN)
	log.Info("✅ Created product",
		"id", id,
		"name", en.Name,
		"price", utils.FormatPrice(record.BasePrice),
		"featured", record.Featured,
		"variations", len(record.Variations),
	)
	summary.Created++
	m.ProductsCreated.WithLabelValues(string(category)).Inc()
}

// persist retries transient write failures with exponential backoff.
// Duplicate SKUs are not retried.
func (s *CatalogService) persist(ctx context.Context, record *models.ProductRecord, log *slog.Logger) (int, error) {
	operation := func() (int, error) {
		id, err := s.products.Create(ctx, record)
		if errors.Is(err, repository.ErrAlreadyExists) {
			return 0, backoff.Permanent(err)
		}
		return id, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.opts.RetryInterval

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(s.opts.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			s.opts.Metrics.PersistRetries.Inc()
			log.Warn("🔁 Retrying product write", "error", err, "next_attempt_in", next)
		}),
	)
}

func (s *CatalogService) finish(summary *models.RunSummary, gen *Generator, start time.Time) *models.RunSummary {
	for category, n := range gen.Featured.Snapshot() {
		summary.Featured[category] = n
	}
	summary.Duration = time.Since(start)
	s.opts.Metrics.ObserveSummary(summary)

	s.logger.Info("🎉 Catalog generation completed",
		"created", summary.Created,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"discarded", summary.Discarded,
		"aborted", summary.Aborted,
		"duration", summary.Duration.Round(time.Millisecond),
	)
	for _, category := range models.Categories {
		s.logger.Info("⭐ Featured distribution",
			"category", category,
			"featured", summary.Featured[category],
			"cap", featuredCap(s.opts.FeaturedCaps, category),
		)
	}
	return summary
}

func featuredCap(caps map[models.Category]int, category models.Category) int {
	if caps == nil {
		caps = catalog.DefaultFeaturedCaps
	}
	return caps[category]
}
