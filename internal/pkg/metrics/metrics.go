package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	// method, path, status_code
	HTTPRequestsTotal *prometheus.CounterVec

	// method, path
	HTTPRequestDuration *prometheus.HistogramVec

	// operation: create/cancel/status, outcome: success/slot_unavailable/conflict/rejected/error
	BookingsTotal *prometheus.CounterVec

	// kind, status: sent/retry/dead
	NotificationsTotal *prometheus.CounterVec

	// result: hit/miss/error
	AvailabilityCacheTotal *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_total",
				Help: "Booking command outcomes",
			},
			[]string{"operation", "outcome"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Notification delivery attempts by result",
			},
			[]string{"kind", "status"},
		),
		AvailabilityCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_cache_total",
				Help: "Availability cache lookups",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.NotificationsTotal,
		m.AvailabilityCacheTotal,
	)

	return m
}

func (m *Metrics) RecordBooking(operation, outcome string) {
	m.BookingsTotal.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordNotification(kind, status string) {
	m.NotificationsTotal.WithLabelValues(kind, status).Inc()
}

func (m *Metrics) RecordCacheLookup(result string) {
	m.AvailabilityCacheTotal.WithLabelValues(result).Inc()
}
