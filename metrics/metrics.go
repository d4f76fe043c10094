package metrics

import (
	"github.com/meikuraledutech/decision"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decisionlint_validations_total",
			Help: "Total number of validated documents by outcome",
		},
		[]string{"result"},
	)

	DiagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decisionlint_diagnostics_total",
			Help: "Total number of diagnostics reported by severity",
		},
		[]string{"severity"},
	)

	DocumentNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "decisionlint_document_nodes",
		Help:    "Number of nodes per validated document",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)

// Recorder exports validation outcomes to the default prometheus registry.
type Recorder struct{}

// Record implements decision.Recorder.
func (Recorder) Record(r *decision.Report, loadErr error) {
	switch {
	case loadErr != nil:
		ValidationsTotal.WithLabelValues("load_error").Inc()
	case r.Valid:
		ValidationsTotal.WithLabelValues("valid").Inc()
	default:
		ValidationsTotal.WithLabelValues("invalid").Inc()
	}

	for _, d := range r.Diagnostics {
		DiagnosticsTotal.WithLabelValues(string(d.Severity)).Inc()
	}
	if loadErr == nil {
		DocumentNodes.Observe(float64(r.NodeCount))
	}
}
