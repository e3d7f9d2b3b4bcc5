package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	AppointmentsCommitted *prometheus.CounterVec
	StatusTransitions     *prometheus.CounterVec
	CatalogLoadFailures   *prometheus.CounterVec
}

// New создаёт и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создаёт метрики в указанном реестре
// Повторная регистрация возвращает уже зарегистрированные коллекторы
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{serviceName: serviceName}

	m.HTTPRequestsTotal = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"service", "method", "path", "status"}))

	m.HTTPRequestDuration = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "method", "path"}))

	m.DBQueryDuration = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Database query latency.",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"service", "operation"}))

	m.DBQueryErrors = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "db_query_errors_total",
		Help: "Database query errors.",
	}, []string{"service", "operation"}))

	m.DBOpenConnections = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "db_open_connections",
		Help: "Open connections in the pool.",
	}, []string{"service"}))

	m.DBInUseConnections = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "db_in_use_connections",
		Help: "Connections currently in use.",
	}, []string{"service"}))

	m.DBIdleConnections = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "db_idle_connections",
		Help: "Idle connections in the pool.",
	}, []string{"service"}))

	m.AppointmentsCommitted = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "appointments_committed_total",
		Help: "Reservation commits by result.",
	}, []string{"service", "result"}))

	m.StatusTransitions = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "appointment_status_transitions_total",
		Help: "Appointment status transitions by target status and result.",
	}, []string{"service", "status", "result"}))

	m.CatalogLoadFailures = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_load_failures_total",
		Help: "Failed catalog loads by catalog kind.",
	}, []string{"service", "catalog"}))

	return m
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ServiceName имя сервиса для label "service"
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// IncCommit учитывает результат фиксации бронирования: success, incomplete, rejected
func (m *Metrics) IncCommit(result string) {
	if m == nil {
		return
	}
	m.AppointmentsCommitted.WithLabelValues(m.serviceName, result).Inc()
}

// IncTransition учитывает смену статуса записи
func (m *Metrics) IncTransition(status string, result string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(m.serviceName, status, result).Inc()
}

// IncCatalogFailure учитывает неудачную загрузку каталога: services или barbers
func (m *Metrics) IncCatalogFailure(catalog string) {
	if m == nil {
		return
	}
	m.CatalogLoadFailures.WithLabelValues(m.serviceName, catalog).Inc()
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method string, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}
