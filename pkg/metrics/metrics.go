package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Database metrics
	DatabaseOperations *prometheus.CounterVec
	DatabaseLatency    *prometheus.HistogramVec

	// Captcha metrics
	CaptchasIssued  prometheus.Counter
	CaptchaFailures prometheus.Counter

	// Booking metrics
	AppointmentsBooked prometheus.Counter
	DuplicateBookings  prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		DatabaseOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "database_operations_total",
			Help:      "Total number of database operations",
		}, []string{"operation", "status"}),
		DatabaseLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "database_operation_duration_seconds",
			Help:      "Duration of database operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		CaptchasIssued: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captchas_issued_total",
			Help:      "Total number of captcha challenges issued",
		}),
		CaptchaFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captcha_failures_total",
			Help:      "Total number of failed captcha verifications",
		}),
		AppointmentsBooked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Total number of appointments booked",
		}),
		DuplicateBookings: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_bookings_total",
			Help:      "Total number of duplicate booking attempts rejected",
		}),
	}
}
