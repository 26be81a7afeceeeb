package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineMetrics_RecordTransition(t *testing.T) {
	em, err := newEngineMetrics()
	require.NoError(t, err)

	st := VehicleState{Phase: Landed, TotalTime: 768.5}
	assert.NotPanics(t, func() {
		em.recordTransition(context.Background(), Transition{From: Ready, To: Launch, Reason: ReasonStart})
		em.recordTransition(context.Background(), Transition{From: Parachute, To: Landed, Reason: ReasonTouchdown, State: st})
	})
}
