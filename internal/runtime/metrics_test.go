package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/fasim/internal/runtime"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsSimulations(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := runtime.NewMetrics(reg)
	require.NoError(t, err)

	engine := runtime.NewEngine(parity(), runtime.WithLifecycleHooks(metrics.Hooks()))
	ctx := context.Background()

	_, err = engine.Simulate(ctx, domain.Request{Start: "A", Inputs: symbols("0", "1")})
	require.NoError(t, err)
	_, err = engine.Simulate(ctx, domain.Request{Start: "A", Inputs: symbols("x", "0")})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "fasim_simulations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per outcome")

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "fasim_transitions_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, values["true"])
	assert.Equal(t, 2.0, values["false"])
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := runtime.NewMetrics(reg)
	require.NoError(t, err)

	_, err = runtime.NewMetrics(reg)
	assert.Error(t, err)
}
