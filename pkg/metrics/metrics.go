package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors HTTP y del ledger sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestCounter  *prometheus.CounterVec
	errorCounter    *prometheus.CounterVec

	movementsRecorded *prometheus.CounterVec
	movementUnits     *prometheus.CounterVec
	movementsRejected *prometheus.CounterVec
	belowMinimum      prometheus.Counter
}

// New registra los collectors bajo namespace. Incluye métricas de proceso y runtime de Go.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestCounter: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		}, []string{"method", "path"}),
		errorCounter: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API responses with status >= 400",
		}, []string{"method", "path", "status"}),

		movementsRecorded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_recorded_total",
			Help:      "Movements committed to the ledger",
		}, []string{"kind"}),
		movementUnits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movement_units_total",
			Help:      "Sum of movement magnitudes committed to the ledger",
		}, []string{"kind"}),
		movementsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_rejected_total",
			Help:      "Movement attempts that left no ledger row",
		}, []string{"reason"}),
		belowMinimum: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "below_minimum_alerts_total",
			Help:      "Movements that left the item below its minimum threshold",
		}),
	}
}

// Registry expone el registry (tests y collectors adicionales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// MovementRecorded implementa inventory.MovementObserver.
func (m *Metrics) MovementRecorded(kind string, magnitude int64, belowMinimum bool) {
	m.movementsRecorded.WithLabelValues(kind).Inc()
	m.movementUnits.WithLabelValues(kind).Add(float64(magnitude))
	if belowMinimum {
		m.belowMinimum.Inc()
	}
}

// MovementRejected implementa inventory.MovementObserver.
func (m *Metrics) MovementRejected(reason string) {
	m.movementsRejected.WithLabelValues(reason).Inc()
}

// Handler devuelve el handler HTTP de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware mide cada request Fiber. La etiqueta path usa la ruta registrada
// (ej. /api/items/:id) para no disparar la cardinalidad.
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
		method := c.Method()
		path := c.Route().Path
		code := strconv.Itoa(status)

		m.requestCounter.WithLabelValues(method, path).Inc()
		m.requestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
		if status >= 400 {
			m.errorCounter.WithLabelValues(method, path, code).Inc()
		}
		return err
	}
}
