// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orcamentos"

// Recorder owns every collector of the service. Collectors are registered on
// the registry given to New, so tests can use a private one.
type Recorder struct {
	gatherer prometheus.Gatherer

	calculationsTotal   *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge
}

var _ interfaces.ICalculationObserver = (*Recorder)(nil)

func New(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		gatherer: reg,
		calculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculations_total",
				Help:      "Quote calculations partitioned by service type and outcome (efficiency, invalid or error)",
			},
			[]string{"service_type", "outcome"},
		),
		calculationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "calculation_duration_seconds",
				Help:      "Time spent pricing a quote",
				Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
			},
			[]string{"service_type"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latencies in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		httpInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_inflight_requests",
				Help:      "Number of HTTP requests currently being served",
			},
		),
	}
}

// NewWithDefaultCollectors also registers the Go runtime and process collectors.
func NewWithDefaultCollectors() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	return New(reg)
}

func (r *Recorder) ObserveCalculation(serviceType entities.ServiceType, outcome string, elapsed time.Duration) {
	r.calculationsTotal.WithLabelValues(string(serviceType), outcome).Inc()
	r.calculationDuration.WithLabelValues(string(serviceType)).Observe(elapsed.Seconds())
}

// RequestStarted bumps the in-flight gauge; the returned func records the finished request.
func (r *Recorder) RequestStarted() func(method, route string, status int) {
	start := time.Now()
	r.httpInFlight.Inc()
	return func(method, route string, status int) {
		r.httpInFlight.Dec()
		labels := prometheus.Labels{
			"method": method,
			"route":  route,
			"status": strconv.Itoa(status),
		}
		r.httpRequestsTotal.With(labels).Inc()
		r.httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
