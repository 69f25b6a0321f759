// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records application metrics against a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpLatency     prometheus.Histogram
	subscribes      prometheus.Counter
	duplicateSubs   prometheus.Counter
	dispatchRuns    *prometheus.CounterVec
	dispatchedMails prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_http_requests_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "backoffice_http_latency_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		subscribes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_subscribes_total",
			Help: "Successful newsletter signups.",
		}),
		duplicateSubs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_duplicate_subscribes_total",
			Help: "Signup attempts rejected as already subscribed.",
		}),
		dispatchRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_dispatch_runs_total",
			Help: "Newsletter dispatch runs by outcome.",
		}, []string{"outcome"}),
		dispatchedMails: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_dispatch_emails_sent_total",
			Help: "Individual newsletter emails handed to the relay.",
		}),
	}
	reg.MustRegister(
		c.httpRequests, c.httpLatency,
		c.subscribes, c.duplicateSubs,
		c.dispatchRuns, c.dispatchedMails,
	)
	return c
}

// Handler returns the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordHTTP records one finished HTTP request.
func (c *Collector) RecordHTTP(statusCode int, d time.Duration) {
	c.httpRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.httpLatency.Observe(d.Seconds())
}

// RecordSubscribe records a successful signup.
func (c *Collector) RecordSubscribe() { c.subscribes.Inc() }

// RecordDuplicateSubscribe records a rejected duplicate signup.
func (c *Collector) RecordDuplicateSubscribe() { c.duplicateSubs.Inc() }

// RecordDispatchRun records a dispatch run's outcome ("sent", "not_found",
// "failed").
func (c *Collector) RecordDispatchRun(outcome string) {
	c.dispatchRuns.WithLabelValues(outcome).Inc()
}

// RecordDispatchedMail records one email handed to the relay.
func (c *Collector) RecordDispatchedMail() { c.dispatchedMails.Inc() }
