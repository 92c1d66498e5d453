// Package metrics holds the Prometheus collectors for the registration flow.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission results.
const (
	ResultSubmitted   = "submitted"
	ResultRFCMismatch = "rfc_mismatch"
	ResultInvalid     = "invalid"
)

// Metrics is safe to use as a nil pointer; every recorder becomes a no-op.
type Metrics struct {
	Submissions   *prometheus.CounterVec
	PDFExports    prometheus.Counter
	AgeChecks     *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_submissions_total",
			Help: "Registration submissions by result",
		}, []string{"result"}),

		PDFExports: f.NewCounter(prometheus.CounterOpts{
			Name: "registration_pdf_exports_total",
			Help: "PDF summaries rendered",
		}),

		AgeChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_age_checks_total",
			Help: "Age gate evaluations by outcome",
		}, []string{"adult"}),

		StoreDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "registration_store_duration_seconds",
			Help:    "Duration of registration store operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"}), // op: "create", "get", "delete"
	}
}

// IncSubmission records a submission outcome.
func (m *Metrics) IncSubmission(result string) {
	if m != nil {
		m.Submissions.WithLabelValues(result).Inc()
	}
}

// IncPDFExport records a rendered PDF.
func (m *Metrics) IncPDFExport() {
	if m != nil {
		m.PDFExports.Inc()
	}
}

// IncAgeCheck records an age gate evaluation.
func (m *Metrics) IncAgeCheck(adult bool) {
	if m != nil {
		m.AgeChecks.WithLabelValues(strconv.FormatBool(adult)).Inc()
	}
}

// ObserveStore records how long a store operation took.
func (m *Metrics) ObserveStore(op string, d time.Duration) {
	if m != nil {
		m.StoreDuration.WithLabelValues(op).Observe(d.Seconds())
	}
}
