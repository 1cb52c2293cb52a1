package cacheclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 暴露 rpc_latency_ms / rpc_failures_total / breaker_trips_total。
type Metrics struct {
	rpcLatency   *prometheus.HistogramVec
	rpcFailures  *prometheus.CounterVec
	breakerTrips prometheus.Counter
}

// NewMetrics 在注册器中注册客户端指标。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cache",
			Subsystem: "client",
			Name:      "rpc_latency_ms",
			Help:      "Latency of cache RPCs in milliseconds",
			Buckets:   []float64{0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500},
		}, []string{"method"}),
		rpcFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cache",
			Subsystem: "client",
			Name:      "rpc_failures_total",
			Help:      "Total number of failed cache RPCs",
		}, []string{"method"}),
		breakerTrips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cache",
			Subsystem: "client",
			Name:      "breaker_trips_total",
			Help:      "Total number of circuit breaker trips",
		}),
	}
	reg.MustRegister(m.rpcLatency, m.rpcFailures, m.breakerTrips)
	return m
}

func (m *Metrics) observeRPC(method string, duration time.Duration) {
	if m == nil {
		return
	}
	m.rpcLatency.WithLabelValues(method).Observe(duration.Seconds() * 1000)
}

func (m *Metrics) incFailure(method string) {
	if m == nil {
		return
	}
	m.rpcFailures.WithLabelValues(method).Inc()
}

func (m *Metrics) incBreakerTrip() {
	if m == nil {
		return
	}
	m.breakerTrips.Inc()
}
