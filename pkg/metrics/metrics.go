package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасно вызывать на nil (метрики выключены в конфиге).
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge

	submissions        *prometheus.CounterVec
	probes             *prometheus.CounterVec
	suggestionResets   prometheus.Counter
	lockExpirations    prometheus.Counter
	scheduleFallbacks  prometheus.Counter
	sideEffectFailures *prometheus.CounterVec
	activeFlows        prometheus.Gauge
}

// New создает и регистрирует метрики в переданном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_probes_total",
			Help:        "Availability probes by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		suggestionResets: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "weekday_suggestion_resets_total",
			Help:        "Suggestion lists reset to empty after a probe failure",
			ConstLabels: constLabels,
		}),
		lockExpirations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "payment_lock_expirations_total",
			Help:        "Payment locks that expired without confirmation",
			ConstLabels: constLabels,
		}),
		scheduleFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_fallbacks_total",
			Help:        "Submissions sent with a server-assigned schedule",
			ConstLabels: constLabels,
		}),
		sideEffectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "post_confirmation_failures_total",
			Help:        "Failed non-blocking post-confirmation side effects",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		activeFlows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_flows_active",
			Help:        "Number of open booking flows",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.submissions,
		m.probes,
		m.suggestionResets,
		m.lockExpirations,
		m.scheduleFallbacks,
		m.sideEffectFailures,
		m.activeFlows,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
	m.dbIdleConns.Set(float64(idle))
}

func (m *Metrics) IncSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncProbe(result string) {
	if m == nil {
		return
	}
	m.probes.WithLabelValues(result).Inc()
}

func (m *Metrics) IncSuggestionReset() {
	if m == nil {
		return
	}
	m.suggestionResets.Inc()
}

func (m *Metrics) IncLockExpiration() {
	if m == nil {
		return
	}
	m.lockExpirations.Inc()
}

func (m *Metrics) IncScheduleFallback() {
	if m == nil {
		return
	}
	m.scheduleFallbacks.Inc()
}

func (m *Metrics) IncSideEffectFailure(kind string) {
	if m == nil {
		return
	}
	m.sideEffectFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) SetActiveFlows(n int) {
	if m == nil {
		return
	}
	m.activeFlows.Set(float64(n))
}
