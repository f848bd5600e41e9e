package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes used as the "outcome" label value.
const (
	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeTimeout   = "timeout"
	OutcomeNetwork   = "network_error"
	OutcomeEmptyBody = "empty_body"
	OutcomeInvalid   = "invalid_url"
)

// Recorder collects metrics for one process.
// All methods are safe for concurrent use and safe on a nil receiver.
type Recorder struct {
	registry *prometheus.Registry

	fetchRequests   *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
	responseBytes   prometheus.Histogram
	recordsTotal    prometheus.Counter
	rowsSkipped     prometheus.Counter
	pipelineFailure *prometheus.CounterVec
	totalPages      prometheus.Gauge
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		fetchRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rosterscan_fetch_requests_total",
			Help: "Total fetch attempts by outcome",
		}, []string{"outcome"}),
		fetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterscan_fetch_duration_seconds",
			Help:    "Duration of fetch attempts",
			Buckets: prometheus.DefBuckets,
		}),
		responseBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterscan_fetch_response_bytes",
			Help:    "Size of decoded response bodies",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		recordsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterscan_records_extracted_total",
			Help: "Records produced from qualifying table rows",
		}),
		rowsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterscan_rows_skipped_total",
			Help: "Table rows skipped for having too few cells",
		}),
		pipelineFailure: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rosterscan_pipeline_failures_total",
			Help: "Failed pipeline runs by stage",
		}, []string{"stage"}),
		totalPages: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rosterscan_total_pages",
			Help: "Total page count reported by the last successful run",
		}),
	}
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveFetch records one fetch attempt.
func (r *Recorder) ObserveFetch(outcome string, elapsed time.Duration, size int) {
	if r == nil {
		return
	}
	r.fetchRequests.WithLabelValues(outcome).Inc()
	r.fetchDuration.Observe(elapsed.Seconds())
	if outcome == OutcomeSuccess || outcome == OutcomeHTTPError {
		r.responseBytes.Observe(float64(size))
	}
}

// ObserveRows records how many rows were mapped and skipped.
func (r *Recorder) ObserveRows(mapped, skipped int) {
	if r == nil {
		return
	}
	r.recordsTotal.Add(float64(mapped))
	r.rowsSkipped.Add(float64(skipped))
}

// ObserveTotalPages records the total page count of a successful run.
func (r *Recorder) ObserveTotalPages(total int) {
	if r == nil {
		return
	}
	r.totalPages.Set(float64(total))
}

// ObserveFailure records a pipeline run that stopped at stage.
func (r *Recorder) ObserveFailure(stage string) {
	if r == nil {
		return
	}
	r.pipelineFailure.WithLabelValues(stage).Inc()
}

// WriteTextfile writes all metrics to path in text exposition format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
