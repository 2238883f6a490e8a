package server

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sevenpixels/datawalk/pkg/observability"
)

// Metrics implements the observability hooks on top of Prometheus. One
// instance is registered at startup; the pipeline emits events through
// the observability package without importing this one.
type Metrics struct {
	convertDuration *prometheus.HistogramVec
	walkDuration    *prometheus.HistogramVec
	convertErrors   *prometheus.CounterVec
	cacheOps        *prometheus.CounterVec
}

var registerMetricsOnce sync.Once

// RegisterMetrics builds the Prometheus collectors, registers them on
// the default registry and installs them as observability hooks.
// Safe to call more than once; registration happens only the first time.
func RegisterMetrics() *Metrics {
	m := &Metrics{
		convertDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "datawalk_convert_duration_seconds",
				Help: "Duration of source-to-digit conversions",
			},
			[]string{"converter"},
		),
		walkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "datawalk_walk_duration_seconds",
				Help: "Duration of digit walks",
			},
			[]string{"source"},
		),
		convertErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datawalk_convert_errors_total",
				Help: "Total failed conversions",
			},
			[]string{"converter"},
		),
		cacheOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datawalk_cache_ops_total",
				Help: "Cache operations by key type and outcome",
			},
			[]string{"key_type", "op"},
		),
	}

	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(m.convertDuration, m.walkDuration, m.convertErrors, m.cacheOps)
		observability.SetPipelineHooks(m)
		observability.SetCacheHooks(m)
	})
	return m
}

// OnConvertStart implements observability.PipelineHooks.
func (m *Metrics) OnConvertStart(ctx context.Context, sourceID, converter string) {}

// OnConvertComplete implements observability.PipelineHooks.
func (m *Metrics) OnConvertComplete(ctx context.Context, sourceID, converter string, digitCount int, duration time.Duration, err error) {
	if err != nil {
		m.convertErrors.WithLabelValues(converter).Inc()
		return
	}
	m.convertDuration.WithLabelValues(converter).Observe(duration.Seconds())
}

// OnWalkStart implements observability.PipelineHooks.
func (m *Metrics) OnWalkStart(ctx context.Context, sourceID string, digitCount int) {}

// OnWalkComplete implements observability.PipelineHooks.
func (m *Metrics) OnWalkComplete(ctx context.Context, sourceID string, pointCount int, duration time.Duration, err error) {
	if err != nil {
		return
	}
	m.walkDuration.WithLabelValues(sourceID).Observe(duration.Seconds())
}

// OnCacheHit implements observability.CacheHooks.
func (m *Metrics) OnCacheHit(ctx context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (m *Metrics) OnCacheMiss(ctx context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (m *Metrics) OnCacheSet(ctx context.Context, keyType string, size int) {
	m.cacheOps.WithLabelValues(keyType, "set").Inc()
}
