package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed on /metrics via promhttp.
var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikya_bookings_created_total",
		Help: "Number of bookings created in pending state.",
	})

	PaymentsVerified = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikya_payments_verified_total",
		Help: "Number of payments whose gateway signature verified successfully.",
	})

	PaymentSignatureFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikya_payment_signature_failures_total",
		Help: "Number of payment verifications rejected for a bad signature.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bikya_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})
)
