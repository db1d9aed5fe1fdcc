package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus metrics.
type Metrics struct {
	// Meeting processing
	MeetingsProcessed *prometheus.CounterVec
	LineItemsAccepted *prometheus.CounterVec
	LineItemsRejected prometheus.Counter
	MeetingDuration   prometheus.Histogram

	// Loan lifecycle
	RepaymentsRecorded prometheus.Counter
	RepaymentAmount    prometheus.Histogram
	LoansDefaulted     prometheus.Counter

	// Reconciliation
	ConsistencyChecks *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		MeetingsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsla_meetings_processed_total",
				Help: "Total number of meeting submissions processed, by outcome",
			},
			[]string{"outcome"},
		),
		LineItemsAccepted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsla_line_items_accepted_total",
				Help: "Total number of meeting line items written, by category",
			},
			[]string{"category"},
		),
		LineItemsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vsla_line_items_rejected_total",
			Help: "Total number of meeting line items rejected by validation",
		}),
		MeetingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vsla_meeting_processing_duration_seconds",
			Help:    "Duration of meeting processing",
			Buckets: prometheus.DefBuckets,
		}),

		RepaymentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vsla_repayments_recorded_total",
			Help: "Total number of loan repayments recorded",
		}),
		RepaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vsla_repayment_amount",
			Help:    "Repayment amounts",
			Buckets: []float64{1000, 10000, 50000, 100000, 500000, 1000000, 5000000},
		}),
		LoansDefaulted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vsla_loans_defaulted_total",
			Help: "Total number of loans marked defaulted",
		}),

		ConsistencyChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsla_consistency_checks_total",
				Help: "Total number of ledger consistency checks, by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveMeeting records the outcome of one processed meeting.
func (m *Metrics) ObserveMeeting(shares, loans, fund, rejected int, success bool, seconds float64) {
	outcome := "success"
	if !success {
		outcome = "error"
	}

	m.MeetingsProcessed.WithLabelValues(outcome).Inc()
	m.LineItemsAccepted.WithLabelValues("shares").Add(float64(shares))
	m.LineItemsAccepted.WithLabelValues("loans").Add(float64(loans))
	m.LineItemsAccepted.WithLabelValues("social_fund").Add(float64(fund))
	m.LineItemsRejected.Add(float64(rejected))
	m.MeetingDuration.Observe(seconds)
}
