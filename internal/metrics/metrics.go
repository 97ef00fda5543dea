package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TotalRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starwars_http_requests_total",
		Help: "Number of HTTP requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "starwars_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	},
	[]string{"path", "code", "method"},
)

var FavoritesAdded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starwars_favorites_added_total",
		Help: "Favorites added, by target kind.",
	},
	[]string{"kind"},
)

var FavoritesRemoved = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starwars_favorites_removed_total",
		Help: "Favorites removed, by target kind.",
	},
	[]string{"kind"},
)

var ImportedRecords = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starwars_imported_records_total",
		Help: "Reference records upserted by the importer.",
	},
	[]string{"resource"},
)
