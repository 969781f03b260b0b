// Package metrics provides the Prometheus metrics registry for the result reporter.
package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ChartsLoadedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "result_reporter",
		Name:      "charts_loaded_total",
		Help:      "Total number of chart files decoded",
	})
	ChartsSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "result_reporter",
		Name:      "charts_skipped_total",
		Help:      "Total number of chart files skipped",
	}, []string{"reason"})
	PaceReportsBuiltTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "result_reporter",
		Name:      "pace_reports_built_total",
		Help:      "Total number of winner pace reports built",
	}, []string{"model"})
	UndefinedFiguresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "result_reporter",
		Name:      "undefined_figures_total",
		Help:      "Total number of pace figures left undefined, counted over every figure a report carries",
	}, []string{"model"})
	DailyRecordsStoredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "result_reporter",
		Name:      "daily_records_stored_total",
		Help:      "Total number of daily records sent to persistence",
	}, []string{"model", "result"})
)

// Histogram metrics
var (
	GuideWriteDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "result_reporter",
		Name:      "guide_write_duration_seconds",
		Help:      "Duration of spreadsheet guide generation in seconds",
		Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(ChartsLoadedTotal)
		registry.MustRegister(ChartsSkippedTotal)
		registry.MustRegister(PaceReportsBuiltTotal)
		registry.MustRegister(UndefinedFiguresTotal)
		registry.MustRegister(DailyRecordsStoredTotal)
		registry.MustRegister(GuideWriteDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// WriteTextfile flushes the registry in the node-exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, GetRegistry()); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// RecordChartLoaded records a decoded chart.
func RecordChartLoaded() {
	ChartsLoadedTotal.Inc()
}

// RecordChartSkipped records a chart dropped from the batch.
func RecordChartSkipped(reason string) {
	ChartsSkippedTotal.WithLabelValues(reason).Inc()
}

// RecordReportsBuilt records pace reports and the undefined figures they carry.
func RecordReportsBuilt(model string, reports, undefined int) {
	PaceReportsBuiltTotal.WithLabelValues(model).Add(float64(reports))
	UndefinedFiguresTotal.WithLabelValues(model).Add(float64(undefined))
}

// RecordDailyRecordStored records a persistence attempt; duplicates are counted separately.
func RecordDailyRecordStored(model string, inserted bool) {
	result := "inserted"
	if !inserted {
		result = "duplicate"
	}
	DailyRecordsStoredTotal.WithLabelValues(model, result).Inc()
}

// RecordGuideWrite records how long a guide took to write.
func RecordGuideWrite(durationSeconds float64) {
	GuideWriteDuration.Observe(durationSeconds)
}
