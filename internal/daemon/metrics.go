// internal/daemon/metrics.go
package daemon

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

const metricPrefix = "r4dcb08_"

// Metrics is the daemon's prometheus instrumentation. A NaN reading clears
// the connected flag for its channel and leaves the last temperature value
// untouched.
type Metrics struct {
	polls       prometheus.Counter
	pollErrors  prometheus.Counter
	temperature *prometheus.GaugeVec
	connected   *prometheus.GaugeVec
}

// NewMetrics registers the daemon metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		polls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "polls_total",
			Help: "Completed poll cycles",
		}),
		pollErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "poll_errors_total",
			Help: "Poll cycles that failed to read the device",
		}),
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: metricPrefix + "temperature_celsius",
			Help: "Last temperature reading per channel",
		}, []string{"channel"}),
		connected: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: metricPrefix + "sensor_connected",
			Help: "Whether the channel's sensor reports a value (0 = absent or faulted)",
		}, []string{"channel"}),
	}

	reg.MustRegister(m.polls, m.pollErrors, m.temperature, m.connected)
	return m
}

// Observe records one successful poll cycle.
func (m *Metrics) Observe(temps protocol.Temperatures) {
	m.polls.Inc()
	for ch, t := range temps {
		label := strconv.Itoa(ch)
		if t.IsNaN() {
			m.connected.WithLabelValues(label).Set(0)
			continue
		}
		m.connected.WithLabelValues(label).Set(1)
		m.temperature.WithLabelValues(label).Set(float64(t.Value()))
	}
}

// ObserveError records one failed poll cycle.
func (m *Metrics) ObserveError() {
	m.polls.Inc()
	m.pollErrors.Inc()
}
