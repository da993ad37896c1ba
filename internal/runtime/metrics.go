package runtime

import (
	"context"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports simulation counters to Prometheus.
type Metrics struct {
	simulations *prometheus.CounterVec
	transitions *prometheus.CounterVec
	inputs      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fasim_simulations_total",
				Help: "Total number of simulations run, by outcome",
			},
			[]string{"outcome"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fasim_transitions_total",
				Help: "Total number of inputs consumed, by whether the transition was defined",
			},
			[]string{"defined"},
		),
		inputs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fasim_simulation_inputs",
			Help:    "Number of inputs per simulation request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.simulations, m.transitions, m.inputs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			if e.To.Defined() {
				m.transitions.WithLabelValues("true").Inc()
			} else {
				m.transitions.WithLabelValues("false").Inc()
			}
		},
		OnSimulationEnd: func(_ context.Context, e *domain.SimulationEvent) {
			outcome := "completed"
			if e.Terminated {
				outcome = "terminated"
			}
			m.simulations.WithLabelValues(outcome).Inc()
			m.inputs.Observe(float64(e.Steps))
		},
	}
}
