package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SignupsTotal     *prometheus.CounterVec
	UnregistersTotal *prometheus.CounterVec
	SignupsRejected  *prometheus.CounterVec
	RosterSize       *prometheus.GaugeVec
	EndpointLatency  *prometheus.HistogramVec
	ActivitiesListed prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SignupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_signups_total",
			Help: "Total number of successful signups, labeled by activity",
		}, []string{"activity"}),
		UnregistersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_unregisters_total",
			Help: "Total number of successful unregistrations, labeled by activity",
		}, []string{"activity"}),
		SignupsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_signups_rejected_total",
			Help: "Total number of rejected roster mutations, labeled by reason",
		}, []string{"reason"}),
		RosterSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mergington_roster_size",
			Help: "Current number of participants per activity",
		}, []string{"activity"}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mergington_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		ActivitiesListed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_activity_lists_total",
			Help: "Total number of activity list requests served",
		}),
	}
}

// ObserveEndpointLatency records latency in seconds for the given endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, seconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(seconds)
}
