// Package metrics expone métricas Prometheus del servicio: peticiones HTTP y eventos
// del motor de conciliación de órdenes.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Compras-api/internal/application/orders"
)

var _ orders.Recorder = (*Metrics)(nil)

// Metrics agrupa los colectores sobre un registro propio (no el global).
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	ordersCreated         *prometheus.CounterVec
	orderUnits            *prometheus.CounterVec
	ordersUpdated         *prometheus.CounterVec
	ordersDeleted         *prometheus.CounterVec
	reconciliationFailure *prometheus.CounterVec
	versionConflicts      *prometheus.CounterVec
}

// New registra los colectores con el prefijo dado (METRICS_PREFIX).
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		ordersCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_orders_created_total",
				Help: "Total number of orders created and reconciled",
			},
			[]string{"kind"},
		),
		orderUnits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_order_units_total",
				Help: "Total units moved by created orders",
			},
			[]string{"kind"},
		),
		ordersUpdated: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_orders_updated_total",
				Help: "Total number of order edits",
			},
			[]string{"kind"},
		),
		ordersDeleted: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_orders_deleted_total",
				Help: "Total number of order deletions",
			},
			[]string{"kind"},
		),
		reconciliationFailure: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_reconciliation_failures_total",
				Help: "Total number of aborted reconciliations",
			},
			[]string{"kind"},
		),
		versionConflicts: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_product_version_conflicts_total",
				Help: "Total number of optimistic concurrency conflicts on products",
			},
			[]string{"kind"},
		),
	}
}

// OrderCreated implementa orders.Recorder.
func (m *Metrics) OrderCreated(kind string, units int64) {
	m.ordersCreated.WithLabelValues(kind).Inc()
	m.orderUnits.WithLabelValues(kind).Add(float64(units))
}

// OrderUpdated implementa orders.Recorder.
func (m *Metrics) OrderUpdated(kind string) { m.ordersUpdated.WithLabelValues(kind).Inc() }

// OrderDeleted implementa orders.Recorder.
func (m *Metrics) OrderDeleted(kind string) { m.ordersDeleted.WithLabelValues(kind).Inc() }

// ReconciliationFailed implementa orders.Recorder.
func (m *Metrics) ReconciliationFailed(kind string) {
	m.reconciliationFailure.WithLabelValues(kind).Inc()
}

// ConcurrentUpdate implementa orders.Recorder.
func (m *Metrics) ConcurrentUpdate(kind string) { m.versionConflicts.WithLabelValues(kind).Inc() }

// Middleware mide cada petición. El path es el patrón de la ruta para acotar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if path == "" || (path == "/" && c.Path() != "/") {
			path = "unmatched"
		}
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.httpRequestsTotal.WithLabelValues(labels...).Inc()
		m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el registro en formato Prometheus para GET /metrics.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Registry devuelve el registro (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
