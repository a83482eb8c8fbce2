package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTransitions(t *testing.T) {
	order := []State{
		StateIdle,
		StateAuthenticating,
		StateNavigatingPortfolio,
		StateNavigatingHistory,
		StateNavigatingCashflow,
		StateAggregating,
		StateDone,
	}

	for i := 0; i < len(order)-1; i++ {
		assert.True(t, order[i].CanTransition(order[i+1]), "%s -> %s", order[i], order[i+1])
		assert.True(t, order[i].CanTransition(StateFailed), "%s -> failed", order[i])
		if i+2 < len(order) {
			assert.False(t, order[i].CanTransition(order[i+2]), "%s must not skip", order[i])
		}
	}

	assert.False(t, StateDone.CanTransition(StateFailed))
	assert.False(t, StateFailed.CanTransition(StateIdle))
	assert.False(t, StateNavigatingHistory.CanTransition(StateNavigatingPortfolio))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "navigating_cashflow", StateNavigatingCashflow.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.True(t, StateDone.Terminal())
	assert.False(t, StateAggregating.Terminal())
}
