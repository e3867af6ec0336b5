package loop

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/PalmosProject/palmos/pkg/stat"
)

// Metrics exposes loop statistics as a Prometheus collector. The loop
// publishes to it once per reporting second from the loop call stack;
// scrapes read the instruments directly, so an HTTP handler on
// another goroutine never touches loop state.
type Metrics struct {
	// Rate metrics
	tickRate  prometheus.Gauge
	frameRate prometheus.Gauge

	// Duration metrics
	tickAvg  prometheus.Gauge
	frameAvg prometheus.Gauge

	// Lifetime counters
	ticksTotal   prometheus.Counter
	framesTotal  prometheus.Counter
	secondsTotal prometheus.Counter
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		tickRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "palmos_tick_rate",
			Help: "Updates recorded during the last reporting second",
		}),
		frameRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "palmos_frame_rate",
			Help: "Renders recorded during the last reporting second",
		}),
		tickAvg: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "palmos_tick_seconds_avg",
			Help: "Mean update duration in seconds over the loop lifetime",
		}),
		frameAvg: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "palmos_frame_seconds_avg",
			Help: "Mean render duration in seconds over the loop lifetime",
		}),
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "palmos_ticks_total",
			Help: "Total updates across reporting seconds",
		}),
		framesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "palmos_frames_total",
			Help: "Total renders across reporting seconds",
		}),
		secondsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "palmos_seconds_total",
			Help: "Total reporting seconds",
		}),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.tickRate.Describe(ch)
	m.frameRate.Describe(ch)
	m.tickAvg.Describe(ch)
	m.frameAvg.Describe(ch)
	m.ticksTotal.Describe(ch)
	m.framesTotal.Describe(ch)
	m.secondsTotal.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.tickRate.Collect(ch)
	m.frameRate.Collect(ch)
	m.tickAvg.Collect(ch)
	m.frameAvg.Collect(ch)
	m.ticksTotal.Collect(ch)
	m.framesTotal.Collect(ch)
	m.secondsTotal.Collect(ch)
}

// publish records one reporting second. Both stats must already be
// refreshed so Rate reflects the cycle that just ended.
func (m *Metrics) publish(ticks, frames stat.Stat) {
	m.tickRate.Set(float64(ticks.Rate()))
	m.frameRate.Set(float64(frames.Rate()))
	m.tickAvg.Set(ticks.Average().Seconds())
	m.frameAvg.Set(frames.Average().Seconds())
	m.ticksTotal.Add(float64(ticks.Rate()))
	m.framesTotal.Add(float64(frames.Rate()))
	m.secondsTotal.Inc()
}
