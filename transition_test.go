package transitions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlekbai/transitions"
)

func TestTransition_IsReentry(t *testing.T) {
	trans := transitions.Transition[State]{Source: StateA, Destination: StateA, Kind: transitions.Reset}
	assert.True(t, trans.IsReentry(), "expected IsReentry to be true for same source and destination")

	trans2 := transitions.Transition[State]{Source: StateA, Destination: StateB, Kind: transitions.Direct}
	assert.False(t, trans2.IsReentry(), "expected IsReentry to be false for different source and destination")
}

func TestTransitionKind_String(t *testing.T) {
	assert.Equal(t, "direct", transitions.Direct.String())
	assert.Equal(t, "signal", transitions.Signal.String())
	assert.Equal(t, "reset", transitions.Reset.String())
	assert.Equal(t, "unknown", transitions.TransitionKind(42).String())
}

func TestRejectReason_String(t *testing.T) {
	assert.Equal(t, "not_defined", transitions.NotDefined.String())
	assert.Equal(t, "denied", transitions.Denied.String())
}
