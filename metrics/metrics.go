// Package metrics declares the prometheus collectors shared by the site.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// BackendRequests counts calls made to the content API.
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Requests issued to the content backend, by method, path and outcome.",
		},
		[]string{"method", "path", "outcome"},
	)

	// PageLoads counts page-data batches by page and final state.
	PageLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_loads_total",
			Help: "Page-data batches by page and final state.",
		},
		[]string{"page", "state"},
	)

	// ContactSubmissions counts contact form attempts by outcome.
	ContactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		},
		[]string{"outcome"},
	)

	registry = prometheus.NewRegistry()
)

func init() {
	registry.MustRegister(BackendRequests, PageLoads, ContactSubmissions)
}

// Handler exposes the site's collectors in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
