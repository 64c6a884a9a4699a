package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cup_organizer"

// Исходы операций движка.
const (
	OutcomeOK           = "ok"
	OutcomeValidation   = "validation"
	OutcomePrecondition = "precondition"
	OutcomeError        = "error"
)

// Metrics - метрики движка на собственном реестре. Все методы безопасны для nil,
// поэтому в тестах сервисы можно создавать без метрик.
type Metrics struct {
	Registry *prometheus.Registry

	operations        *prometheus.CounterVec
	duration          *prometheus.HistogramVec
	consistencyResets *prometheus.CounterVec
	revealStreams     prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Engine operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Engine operation latency including store round trips.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		consistencyResets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consistency_resets_total",
			Help:      "Stored structures discarded and reinitialized because they no longer matched.",
		}, []string{"structure"}),
		revealStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reveal_streams_active",
			Help:      "Open staged reveal websocket streams.",
		}),
	}
	reg.MustRegister(
		m.operations,
		m.duration,
		m.consistencyResets,
		m.revealStreams,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Outcome классифицирует ошибку операции.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, brackets.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, brackets.ErrPrecondition):
		return OutcomePrecondition
	default:
		return OutcomeError
	}
}

func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, Outcome(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ConsistencyReset(structure string) {
	if m == nil {
		return
	}
	m.consistencyResets.WithLabelValues(structure).Inc()
}

func (m *Metrics) RevealStarted() {
	if m == nil {
		return
	}
	m.revealStreams.Inc()
}

func (m *Metrics) RevealFinished() {
	if m == nil {
		return
	}
	m.revealStreams.Dec()
}

// Handler отдаёт метрики реестра в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
