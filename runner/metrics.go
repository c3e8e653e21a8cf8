package runner

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ezrec/turing/machine"
)

// Metrics of a run, exported through Prometheus.
type Metrics struct {
	Ticks  prometheus.Counter
	Halts  prometheus.Counter
	Errors *prometheus.CounterVec
	Cells  prometheus.Gauge
	Head   prometheus.Gauge
}

// NewMetrics creates the run metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (m *Metrics) {
	m = &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_ticks_total",
			Help: "Total number of transitions taken.",
		}),
		Halts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_halts_total",
			Help: "Total number of runs that reached the halt state.",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "turing_errors_total",
			Help: "Total number of runs stopped early, by reason.",
		}, []string{"kind"}),
		Cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "turing_tape_cells",
			Help: "Materialized tape cells of the current run.",
		}),
		Head: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "turing_head_position",
			Help: "Head position of the current run.",
		}),
	}

	reg.MustRegister(m.Ticks, m.Halts, m.Errors, m.Cells, m.Head)

	return
}

// errorKind labels an error for turing_errors_total.
func errorKind(err error) string {
	switch {
	case errors.Is(err, machine.ErrTransitionUndefined):
		return "undefined"
	case errors.Is(err, ErrLimit):
		return "limit"
	default:
		return "canceled"
	}
}
