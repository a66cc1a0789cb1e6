package transitions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/transitions"
)

func newCarAcceptor(t *testing.T) *transitions.Acceptor[CarState, CarSignal] {
	t.Helper()
	acc, err := transitions.NewAcceptorFor(carStates(), carSignals())
	require.NoError(t, err)
	populateCar(t, acc)
	return acc
}

func TestCarAcceptor(t *testing.T) {
	acc := newCarAcceptor(t)
	require.Equal(t, Off, acc.CurrentState())

	res, err := acc.TransitionSignal(BrakePedalPress)
	require.NoError(t, err)
	assert.Equal(t, transitions.SignalResult[CarState]{State: Breaks, OK: true, Comment: "Breaks"}, res)

	res, err = acc.TransitionSignal(StartEngine)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, Idle, res.State)

	res, err = acc.TransitionSignal(StopEngine)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "state transition function is not defined for the input StopEngine and the current state Idle", res.Comment)
	assert.Equal(t, Idle, res.State)
	assert.Equal(t, Idle, acc.CurrentState())

	for _, step := range []struct {
		input    CarSignal
		expected CarState
	}{
		{LightsOn, IdleLight},
		{ShiftToDrive, DriveLight},
		{LightsOff, Drive},
		{BrakePedalPress, Breaks},
		{StopEngine, Off},
	} {
		res, err := acc.TransitionSignal(step.input)
		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, step.expected, acc.CurrentState())
	}
}

func TestAcceptor_InvalidInputExplanation(t *testing.T) {
	acc := newCarAcceptor(t)
	require.NoError(t, acc.AddInvalidInput(StartEngine, Off, func(state CarState, _ CarSignal) string {
		return "press the brake pedal first"
	}))

	res, err := acc.TransitionSignal(StartEngine)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "press the brake pedal first", res.Comment)
	assert.Equal(t, Off, acc.CurrentState())

	err = acc.AddInvalidInput(StartEngine, Off, nil)
	var popErr *transitions.PopulationError
	require.ErrorAs(t, err, &popErr)
	assert.Equal(t, transitions.DuplicateInvalidInput, popErr.Kind)
}

func TestAcceptor_InvalidInputWithoutExplanation(t *testing.T) {
	acc := newCarAcceptor(t)
	require.NoError(t, acc.AddInvalidInput(StartEngine, Off, nil))

	res, err := acc.TransitionSignal(StartEngine)
	require.NoError(t, err)
	assert.Equal(t, "state transition function is not defined for the input StartEngine and the current state Off", res.Comment)
}

func TestAcceptor_AddTransitionFunctionPartErrors(t *testing.T) {
	acc := newCarAcceptor(t)

	err := acc.AddTransitionFunctionPart(BrakePedalPress, Off, goTo(Breaks))
	var popErr *transitions.PopulationError
	require.ErrorAs(t, err, &popErr)
	assert.Equal(t, transitions.DuplicateTransitionFunction, popErr.Kind)

	err = acc.AddTransitionFunctionPart(BrakePedalRelease, Off, nil)
	var argErr *transitions.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "handler", argErr.ParamName)

	err = acc.AddTransitionFunctionPart(CarSignal(99), Off, goTo(Breaks))
	assert.True(t, transitions.IsUnknownElementError(err))

	err = acc.AddTransitionFunctionPart(BrakePedalRelease, CarState(0x42), goTo(Breaks))
	assert.True(t, transitions.IsUnknownElementError(err))
}

func TestAcceptor_HandlerReturnsUnknownState(t *testing.T) {
	acc := newCarAcceptor(t)
	require.NoError(t, acc.AddTransitionFunctionPart(BrakePedalRelease, Off, goTo(CarState(0x42))))

	_, err := acc.TransitionSignal(BrakePedalRelease)
	require.Error(t, err)
	assert.True(t, transitions.IsUnknownElementError(err))
	assert.Equal(t, Off, acc.CurrentState())
}

func TestAcceptor_UnknownInput(t *testing.T) {
	acc := newCarAcceptor(t)

	_, err := acc.TransitionSignal(CarSignal(99))
	assert.True(t, transitions.IsUnknownElementError(err))
}

func TestAcceptor_FiresGraphEdgeCallback(t *testing.T) {
	ts := newSystem(t)
	var fired []string
	require.NoError(t, ts.AddValidTransition(StateA, StateB, func(start, finish State) {
		fired = append(fired, start.String()+"->"+finish.String())
	}, false))
	require.NoError(t, ts.AddInvalidTransition(StateB, StateC, func(_, _ State) string {
		fired = append(fired, "explained")
		return "no"
	}))

	var kinds []transitions.TransitionKind
	ts.OnTransitioned(func(tr transitions.Transition[State]) { kinds = append(kinds, tr.Kind) })

	acc, err := transitions.NewAcceptor[State](ts, allInputs())
	require.NoError(t, err)
	require.NoError(t, acc.AddTransitionFunctionPart(InputX, StateA, func(State, Input) State { return StateB }))
	require.NoError(t, acc.AddTransitionFunctionPart(InputX, StateB, func(State, Input) State { return StateC }))
	require.NoError(t, acc.AddTransitionFunctionPart(InputY, StateC, func(s State, _ Input) State { return s }))

	res, err := acc.TransitionSignal(InputX)
	require.NoError(t, err)
	assert.True(t, res.OK)

	res, err = acc.TransitionSignal(InputX)
	require.NoError(t, err)
	assert.True(t, res.OK, "the transition function bypasses graph validity")
	assert.Equal(t, StateC, ts.CurrentState())

	res, err = acc.TransitionSignal(InputY)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "attempted transition to the same state: StateC", res.Comment)

	assert.Equal(t, []string{"StateA->StateB"}, fired)
	assert.Equal(t, []transitions.TransitionKind{transitions.Signal, transitions.Signal}, kinds)
}

// recordingCore is a minimal Core used to drive an acceptor without a graph.
type recordingCore struct {
	states  *transitions.Alphabet[State]
	current State
	applied []State
}

func (c *recordingCore) CurrentState() State { return c.current }

func (c *recordingCore) ApplyTransition(target State) (string, error) {
	if _, err := c.states.Find(target); err != nil {
		return "", err
	}
	c.applied = append(c.applied, target)
	c.current = target
	return c.states.Name(target), nil
}

func (c *recordingCore) QueryEdge(State, State) (transitions.Result, error) {
	return transitions.Result{OK: true}, nil
}

func (c *recordingCore) States() *transitions.Alphabet[State] { return c.states }

func TestAcceptor_OverCustomCore(t *testing.T) {
	states, err := transitions.NewAlphabet("state", allStates())
	require.NoError(t, err)
	core := &recordingCore{states: states, current: StateA}

	acc, err := transitions.NewAcceptor[State](core, allInputs())
	require.NoError(t, err)
	assert.Same(t, core, acc.Core())
	require.NoError(t, acc.AddTransitionFunctionPart(InputZ, StateA, func(State, Input) State { return StateD }))

	res, err := acc.TransitionSignal(InputZ)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "StateD", res.Comment)
	assert.Equal(t, []State{StateD}, core.applied)
}

func TestNewAcceptor_Errors(t *testing.T) {
	_, err := transitions.NewAcceptor[State, Input](nil, allInputs())
	var argErr *transitions.ArgumentError
	require.ErrorAs(t, err, &argErr)

	_, err = transitions.NewAcceptor[State](newSystem(t), transitions.List[Input]())
	assert.ErrorIs(t, err, transitions.ErrEmptyAlphabet)
}
