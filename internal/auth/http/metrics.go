package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler godoc
//
//	@Summary		Prometheus metrics
//	@Description	Session outcome counters and password verification latency in the Prometheus text format.
//	@Description	Requires the Admin role unless AUTH_METRICS_PUBLIC is set.
//	@Tags			Health
//	@Security		BearerAuth
//	@Produce		plain
//	@Success		200	{string}	string	"metrics"
//	@Failure		401	{object}	authsdk.APIError
//	@Failure		403	{object}	authsdk.APIError
//	@Router			/metrics [get].
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
