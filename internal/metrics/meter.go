package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

//go:generate mockery --with-expecter --name Meter
type Meter interface {
	GetRegistry() *prometheus.Registry
	RouteDecision(decision string)
	BackendRequest(endpoint string, code int, duration time.Duration)
	SessionsPurged(count int64)
}

type metricRegistry struct {
	registry         *prometheus.Registry
	routeDecisions   *prometheus.CounterVec
	backendRequests  *prometheus.CounterVec
	backendDurations *prometheus.HistogramVec
	sessionsPurged   prometheus.Counter
}

func NewRegistry() *metricRegistry {
	mr := &metricRegistry{
		registry: prometheus.NewRegistry(),
		routeDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "truvote",
			Name:      "route_decisions_total",
			Help:      "Route guard decisions by kind.",
		}, []string{"decision"}),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "truvote",
			Name:      "backend_requests_total",
			Help:      "Calls made to the election backend.",
		}, []string{"endpoint", "code"}),
		backendDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "truvote",
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of calls made to the election backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		sessionsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "truvote",
			Name:      "sessions_purged_total",
			Help:      "Expired session records removed by the worker.",
		}),
	}
	mr.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		mr.routeDecisions,
		mr.backendRequests,
		mr.backendDurations,
		mr.sessionsPurged,
	)
	return mr
}

func (r *metricRegistry) GetRegistry() *prometheus.Registry {
	return r.registry
}

func (r *metricRegistry) RouteDecision(decision string) {
	r.routeDecisions.WithLabelValues(decision).Inc()
}

// BackendRequest records a backend call, code 0 means no response was received.
func (r *metricRegistry) BackendRequest(endpoint string, code int, duration time.Duration) {
	r.backendRequests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	r.backendDurations.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (r *metricRegistry) SessionsPurged(count int64) {
	r.sessionsPurged.Add(float64(count))
}
