package metrics

import (
	"net/http"
	"strconv"
	"time"

	"cfr_notifier/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cfr_notifier"

// Metrics owns its registry so tests and the Lambda binary do not share
// global collectors.
type Metrics struct {
	registry *prometheus.Registry

	channelDeliveries *prometheus.CounterVec
	workflowRuns      *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

var _ interfaces.IDeliveryMetrics = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		channelDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "channel_deliveries_total",
			Help:      "Delivery outcomes per channel (email, sms).",
		}, []string{"channel", "outcome"}),
		workflowRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_runs_total",
			Help:      "Confirmation and reminder runs by final delivery status.",
		}, []string{"workflow", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency. Delivery endpoints include SMTP retries.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.channelDeliveries,
		m.workflowRuns,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveChannel(channel, outcome string) {
	m.channelDeliveries.WithLabelValues(channel, outcome).Inc()
}

func (m *Metrics) ObserveRun(workflow, status string) {
	m.workflowRuns.WithLabelValues(workflow, status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request latency labelled by route template.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
