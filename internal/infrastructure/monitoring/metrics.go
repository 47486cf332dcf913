package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersRegisteredTotal prometheus.Counter
	CreditsSubmittedTotal    prometheus.Counter
	ProblemsTotal            *prometheus.CounterVec
	CreditsByStatus          *prometheus.GaugeVec
}

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_application_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "credit_application_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "credit_application_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_application_customers_registered_total",
				Help: "Total number of customers successfully registered.",
			},
		),
		CreditsSubmittedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_application_credits_submitted_total",
				Help: "Total number of credit proposals successfully submitted.",
			},
		),
		ProblemsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_application_problems_total",
				Help: "Error responses rendered, by error kind.",
			},
			[]string{"kind"},
		),
		CreditsByStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "credit_application_credits_by_status",
				Help: "Number of stored credits per status at the last portfolio snapshot.",
			},
			[]string{"status"},
		),
	}
)

func RecordHTTPRequest(method, path, code string, duration time.Duration) {
	HTTP.RequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

// ObserveDBQuery is meant to be deferred with the query start time and a
// pointer to the named error result.
func ObserveDBQuery(queryName string, start time.Time, err *error) {
	status := "success"
	if err != nil && *err != nil {
		status = "error"
	}
	RecordDBQuery(queryName, status, time.Since(start))
}

func RecordCustomerRegistered() {
	Business.CustomersRegisteredTotal.Inc()
}

func RecordCreditSubmitted() {
	Business.CreditsSubmittedTotal.Inc()
}

func RecordProblem(kind string) {
	Business.ProblemsTotal.WithLabelValues(kind).Inc()
}

func SetCreditsByStatus(counts map[string]int) {
	Business.CreditsByStatus.Reset()
	for status, n := range counts {
		Business.CreditsByStatus.WithLabelValues(status).Set(float64(n))
	}
}
