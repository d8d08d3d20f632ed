package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instrumentation for the record store: a counter for
// completed operations split by outcome, and a histogram for the duration
// of each database query.
type Metrics struct {
	Operations      *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance registered with the provided
// Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mnemosyne_operations_total",
			Help: "Total store operations completed, labelled by operation and outcome.",
		}, []string{"operation", "status"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mnemosyne_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'insert_employee', 'list_employees', ...
	}

	return metrics
}
