package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal     *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	malformedRecords prometheus.Counter
	pipelineDuration prometheus.Histogram
	pointsProduced   prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "narachart_upstream_fetches_total",
				Help: "Total number of fetches against the bid-data service",
			},
			[]string{"endpoint"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "narachart_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		malformedRecords: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "narachart_malformed_records_total",
				Help: "Bid records excluded for an unparseable bid date",
			},
		),
		pipelineDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "narachart_pipeline_duration_seconds",
				Help:    "Duration of trend pipeline runs in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		pointsProduced: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "narachart_pipeline_points",
				Help:    "Chart points produced per pipeline run",
				Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000},
			},
		),
	}
}

// RecordFetch records a request against an upstream endpoint.
func (r *Recorder) RecordFetch(endpoint string) {
	r.fetchesTotal.WithLabelValues(endpoint).Inc()
}

// RecordError records an error occurrence by kind.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordMalformedRecord counts a record dropped for a bad bid date.
func (r *Recorder) RecordMalformedRecord() {
	r.malformedRecords.Inc()
}

// RecordPipelineRun records one pipeline run's duration and output size.
func (r *Recorder) RecordPipelineRun(seconds float64, points int) {
	r.pipelineDuration.Observe(seconds)
	r.pointsProduced.Observe(float64(points))
}
