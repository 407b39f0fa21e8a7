// Package metrics holds the Prometheus collectors exported on the internal metrics endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	GatewayDecisions    *prometheus.CounterVec
	AuthProviderErrors  prometheus.Counter
	HTTPRequestDuration *prometheus.HistogramVec
	LeadNotifications   *prometheus.CounterVec
	UploadedBytes       prometheus.Counter
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GatewayDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atelier_gateway_decisions_total",
				Help: "Requests seen by the gateway, labeled by route class and action.",
			},
			[]string{"class", "action"},
		),
		AuthProviderErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "atelier_auth_provider_errors_total",
				Help: "Session checks that failed closed because the auth provider errored or timed out.",
			},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "atelier_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		LeadNotifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atelier_lead_notifications_total",
				Help: "Lead notification attempts, labeled by result.",
			},
			[]string{"result"},
		),
		UploadedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "atelier_uploaded_bytes_total",
				Help: "Bytes written to the uploads bucket.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GatewayDecisions,
		m.AuthProviderErrors,
		m.HTTPRequestDuration,
		m.LeadNotifications,
		m.UploadedBytes,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
