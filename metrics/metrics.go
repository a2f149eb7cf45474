package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"diamant-rouge-catalog/models"
)

const namespace = "catalog"

// Skip reasons
const (
	ReasonExists          = "exists"
	ReasonMissingCategory = "missing_category"
	ReasonUnreadable      = "unreadable"
)

// Metrics holds the counters of one catalog generation run on a private registry
type Metrics struct {
	Registry *prometheus.Registry

	AssetsDiscovered  prometheus.Counter
	AssetsDiscarded   prometheus.Counter
	ProductsCreated   *prometheus.CounterVec
	ProductsFailed    *prometheus.CounterVec
	ProductsSkipped   *prometheus.CounterVec
	PersistRetries    prometheus.Counter
	FeaturedProducts  *prometheus.GaugeVec
	RunDuration       prometheus.Gauge
	LastRunSuccessful prometheus.Gauge
}

// New registers the run metrics on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		AssetsDiscovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assets_discovered_total",
			Help:      "Image files classified into a known category.",
		}),
		AssetsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assets_discarded_total",
			Help:      "Image files without a known category prefix.",
		}),
		ProductsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_created_total",
			Help:      "Products persisted, by category.",
		}, []string{"category"}),
		ProductsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_failed_total",
			Help:      "Products that could not be generated or persisted, by category.",
		}, []string{"category"}),
		ProductsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_skipped_total",
			Help:      "Assets skipped without an attempt to persist, by reason.",
		}, []string{"reason"}),
		PersistRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_retries_total",
			Help:      "Retried product writes.",
		}),
		FeaturedProducts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "featured_products",
			Help:      "Products marked featured in the last run, by category.",
		}, []string{"category"}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the last catalog generation run.",
		}),
		LastRunSuccessful: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_successful",
			Help:      "1 when the last run finished without failures or abort.",
		}),
	}

	reg.MustRegister(
		m.AssetsDiscovered,
		m.AssetsDiscarded,
		m.ProductsCreated,
		m.ProductsFailed,
		m.ProductsSkipped,
		m.PersistRetries,
		m.FeaturedProducts,
		m.RunDuration,
		m.LastRunSuccessful,
	)
	return m
}

// ObserveSummary copies run-level figures from a finished summary
func (m *Metrics) ObserveSummary(s *models.RunSummary) {
	for category, n := range s.Featured {
		m.FeaturedProducts.WithLabelValues(string(category)).Set(float64(n))
	}
	m.RunDuration.Set(s.Duration.Seconds())
	if s.Failed == 0 && !s.Aborted {
		m.LastRunSuccessful.Set(1)
	} else {
		m.LastRunSuccessful.Set(0)
	}
}

// Push sends the registry to a Prometheus Pushgateway under job
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(m.Registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
