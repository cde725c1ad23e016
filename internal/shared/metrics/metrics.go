package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	datasetLoads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dine_hours",
			Name:      "dataset_loads_total",
			Help:      "Count of restaurant collection loads.",
		},
	)

	restaurantCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dine_hours",
			Name:      "restaurants_loaded",
			Help:      "Number of restaurants in the current collection.",
		},
	)

	openQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dine_hours",
			Name:      "open_queries_total",
			Help:      "Count of open-restaurant queries served.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(datasetLoads, restaurantCount, openQueries)
	})
}

func IncDatasetLoad() {
	datasetLoads.Inc()
}

func SetRestaurantCount(count int) {
	restaurantCount.Set(float64(count))
}

func IncOpenQuery() {
	openQueries.Inc()
}
