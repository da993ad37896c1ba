package domain_test

import (
	"testing"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTrace_Accessors(t *testing.T) {
	trace := domain.Trace{
		{Input: "", To: domain.Some("A")},
		{Input: "0", To: domain.Some("B")},
		{Input: "9", To: domain.Undefined},
		{Input: "0", To: domain.Undefined},
	}

	assert.Equal(t, domain.State("A"), trace.Start())
	assert.Len(t, trace.Steps(), 3)
	assert.True(t, trace.Terminated())
	assert.Equal(t, []domain.State{"A", "B"}, trace.Visited())

	stop, ok := trace.Stop()
	assert.True(t, ok)
	assert.Equal(t, domain.Undefined, stop)
}

func TestTrace_StopWithoutInputs(t *testing.T) {
	trace := domain.Trace{{Input: "", To: domain.Some("A")}}

	_, ok := trace.Stop()
	assert.False(t, ok)
	assert.False(t, trace.Terminated())
	assert.Empty(t, trace.Steps())
}
