package timedmap

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 收敛过期表相关指标。
type Metrics struct {
	inserts        prometheus.Counter
	hits           prometheus.Counter
	misses         prometheus.Counter
	lazyEvictions  prometheus.Counter
	sweeps         prometheus.Counter
	sweepEvictions prometheus.Counter
	entries        prometheus.Gauge
}

// NewMetrics 构造指标集合，reg 为空时默认使用全局注册器。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timedmap_inserts_total",
			Help: "Number of entries written to the map",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timedmap_hits_total",
			Help: "Number of reads returning a live entry",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timedmap_misses_total",
			Help: "Number of reads finding no live entry",
		}),
		lazyEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timedmap_lazy_evictions_total",
			Help: "Number of expired entries removed on access",
		}),
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timedmap_sweeps_total",
			Help: "Number of cleanup passes",
		}),
		sweepEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timedmap_sweep_evictions_total",
			Help: "Number of expired entries removed by cleanup passes",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "timedmap_entries",
			Help: "Number of entries physically present in the table",
		}),
	}
	reg.MustRegister(
		m.inserts,
		m.hits,
		m.misses,
		m.lazyEvictions,
		m.sweeps,
		m.sweepEvictions,
		m.entries,
	)
	return m
}

func (m *Metrics) incInsert() {
	if m == nil {
		return
	}
	m.inserts.Inc()
}

func (m *Metrics) incHit() {
	if m == nil {
		return
	}
	m.hits.Inc()
}

func (m *Metrics) incMiss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}

func (m *Metrics) incLazyEviction() {
	if m == nil {
		return
	}
	m.lazyEvictions.Inc()
}

func (m *Metrics) incSweep() {
	if m == nil {
		return
	}
	m.sweeps.Inc()
}

func (m *Metrics) addSweepEvictions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.sweepEvictions.Add(float64(n))
}

func (m *Metrics) setEntries(n int) {
	if m == nil {
		return
	}
	m.entries.Set(float64(n))
}
