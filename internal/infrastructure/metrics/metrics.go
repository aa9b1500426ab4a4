package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Receipt metrics
	ReceiptsCreated      prometheus.Counter
	PaymentsRecorded     prometheus.Counter
	PaymentAmount        prometheus.Histogram
	ReceiptStatusChanges *prometheus.CounterVec

	// Expense and operation metrics
	ExpensesCreated   prometheus.Counter
	OperationsCreated *prometheus.CounterVec
	OperationsDeleted prometheus.Counter

	// Cash cut metrics
	CashCutsCreated prometheus.Counter
	CashCutDuration prometheus.Histogram

	// Dashboard metrics
	DashboardDegraded *prometheus.CounterVec
	DashboardDuration *prometheus.HistogramVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Receipt metrics
		ReceiptsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clinilab_receipts_created_total",
			Help: "Total number of receipts created",
		}),
		PaymentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clinilab_payments_recorded_total",
			Help: "Total number of payments recorded",
		}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "clinilab_payment_amount",
			Help:    "Payment amounts",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
		}),
		ReceiptStatusChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinilab_receipt_status_changes_total",
				Help: "Total receipt status changes by target status",
			},
			[]string{"status"},
		),

		// Expense and operation metrics
		ExpensesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clinilab_expenses_created_total",
			Help: "Total number of expenses recorded",
		}),
		OperationsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinilab_operations_created_total",
				Help: "Total manual operations recorded by type",
			},
			[]string{"type"},
		),
		OperationsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clinilab_operations_deleted_total",
			Help: "Total manual operations deleted",
		}),

		// Cash cut metrics
		CashCutsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clinilab_cash_cuts_created_total",
			Help: "Total number of cash cut snapshots persisted",
		}),
		CashCutDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "clinilab_cash_cut_duration_seconds",
			Help:    "Duration of cash cut computation",
			Buckets: prometheus.DefBuckets,
		}),

		// Dashboard metrics
		DashboardDegraded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinilab_dashboard_degraded_total",
				Help: "Dashboard aggregates served as zero values after a data layer failure",
			},
			[]string{"aggregate"},
		),
		DashboardDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clinilab_dashboard_duration_seconds",
				Help:    "Duration of dashboard aggregate queries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"aggregate"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinilab_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clinilab_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinilab_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
