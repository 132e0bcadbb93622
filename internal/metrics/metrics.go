// README: Prometheus metrics for the donation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
type Metrics struct {
	DonationsCreated  prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	PolicyRejections  *prometheus.CounterVec
	DonationsExpired  prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DonationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "foodbridge_donations_created_total",
			Help: "Total number of donations created",
		}),
		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_donation_transitions_total",
			Help: "Total number of donation status transitions by target status",
		}, []string{"status"}),
		PolicyRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_donor_policy_rejections_total",
			Help: "Total number of donation creations rejected by the donor policy",
		}, []string{"reason"}),
		DonationsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "foodbridge_donations_expired_total",
			Help: "Total number of donations expired by the background sweeper",
		}),
	}
}
