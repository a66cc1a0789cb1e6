package transitions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atlekbai/transitions"
)

// Test state and input types
type (
	State int
	Input int
)

const (
	StateA State = iota
	StateB
	StateC
	StateD
)

const (
	InputX Input = iota
	InputY
	InputZ
)

func (s State) String() string {
	switch s {
	case StateA:
		return "StateA"
	case StateB:
		return "StateB"
	case StateC:
		return "StateC"
	case StateD:
		return "StateD"
	default:
		return "Unknown"
	}
}

func (i Input) String() string {
	switch i {
	case InputX:
		return "InputX"
	case InputY:
		return "InputY"
	case InputZ:
		return "InputZ"
	default:
		return "Unknown"
	}
}

func allStates() transitions.Provider[State] {
	return transitions.Named(StateA, StateB, StateC, StateD)
}

func allInputs() transitions.Provider[Input] {
	return transitions.Named(InputX, InputY, InputZ)
}

func newSystem(t *testing.T, opts ...transitions.Option) *transitions.TransitionSystem[State] {
	t.Helper()
	ts, err := transitions.New(allStates(), opts...)
	require.NoError(t, err)
	return ts
}

// Car dashboard fixtures. The light bit combines with every engine state.
type (
	CarState  byte
	CarSignal int
	CarOutput int
)

const (
	Off CarState = iota
	Breaks
	Idle
	Drive
	Reverse
	Light        CarState = 0xF0
	BreaksLight           = Light | Breaks
	IdleLight             = Light | Idle
	DriveLight            = Light | Drive
	ReverseLight          = Light | Reverse
)

const (
	StartEngine CarSignal = iota
	StopEngine
	BrakePedalPress
	BrakePedalRelease
	ShiftToDrive
	ShiftToReverse
	ShiftToPark
	LightsOn
	LightsOff
)

const (
	Undefined CarOutput = iota
	Fine
	LightsAreOn
	LightsAreOff
)

func carStates() transitions.Provider[CarState] {
	return transitions.List(
		transitions.Entry[CarState]{Name: "Off", Value: Off},
		transitions.Entry[CarState]{Name: "Breaks", Value: Breaks},
		transitions.Entry[CarState]{Name: "Idle", Value: Idle},
		transitions.Entry[CarState]{Name: "Drive", Value: Drive},
		transitions.Entry[CarState]{Name: "Reverse", Value: Reverse},
		transitions.Entry[CarState]{Name: "Light", Value: Light},
		transitions.Entry[CarState]{Name: "BreaksLight", Value: BreaksLight},
		transitions.Entry[CarState]{Name: "IdleLight", Value: IdleLight},
		transitions.Entry[CarState]{Name: "DriveLight", Value: DriveLight},
		transitions.Entry[CarState]{Name: "ReverseLight", Value: ReverseLight},
	)
}

func carSignals() transitions.Provider[CarSignal] {
	names := []string{
		"StartEngine", "StopEngine", "BrakePedalPress", "BrakePedalRelease",
		"ShiftToDrive", "ShiftToReverse", "ShiftToPark", "LightsOn", "LightsOff",
	}
	entries := make([]transitions.Entry[CarSignal], len(names))
	for i, name := range names {
		entries[i] = transitions.Entry[CarSignal]{Name: name, Value: CarSignal(i)}
	}
	return transitions.List(entries...)
}

func carOutputs() transitions.Provider[CarOutput] {
	return transitions.List(
		transitions.Entry[CarOutput]{Name: "Undefined", Value: Undefined},
		transitions.Entry[CarOutput]{Name: "Fine", Value: Fine},
		transitions.Entry[CarOutput]{Name: "LightsOn", Value: LightsAreOn},
		transitions.Entry[CarOutput]{Name: "LightsOff", Value: LightsAreOff},
	)
}

func goTo(next CarState) transitions.Handler[CarState, CarSignal] {
	return func(CarState, CarSignal) CarState { return next }
}

// populateCar registers the dashboard transition function on acc.
func populateCar(t *testing.T, acc *transitions.Acceptor[CarState, CarSignal]) {
	t.Helper()
	parts := []struct {
		input CarSignal
		from  CarState
		to    CarState
	}{
		{BrakePedalPress, Off, Breaks},
		{StartEngine, Breaks, Idle},
		{ShiftToDrive, Idle, Drive},
		{ShiftToReverse, Idle, Reverse},
		{ShiftToDrive, IdleLight, DriveLight},
		{ShiftToReverse, IdleLight, ReverseLight},
		{ShiftToDrive, Reverse, Drive},
		{ShiftToReverse, Drive, Reverse},
		{ShiftToDrive, ReverseLight, DriveLight},
		{ShiftToReverse, DriveLight, ReverseLight},
		{ShiftToPark, Breaks, Idle},
		{ShiftToPark, BreaksLight, IdleLight},
		{BrakePedalPress, Drive, Breaks},
		{BrakePedalPress, Reverse, Breaks},
		{BrakePedalPress, DriveLight, BreaksLight},
		{BrakePedalPress, ReverseLight, BreaksLight},
		{StopEngine, Breaks, Off},
		{StopEngine, BreaksLight, Light},
	}
	for _, p := range parts {
		require.NoError(t, acc.AddTransitionFunctionPart(p.input, p.from, goTo(p.to)))
	}
	for _, engine := range []CarState{Off, Breaks, Idle, Drive, Reverse} {
		require.NoError(t, acc.AddTransitionFunctionPart(LightsOn, engine, goTo(engine|Light)))
		require.NoError(t, acc.AddTransitionFunctionPart(LightsOff, engine|Light, goTo(engine)))
	}
}

// Room door fixtures.
type Door int

const (
	Locked Door = iota
	Closed
	Opened
	OpenedInside
	ClosedInside
	LockedInside
)

func (d Door) String() string {
	return [...]string{"Locked", "Closed", "Opened", "OpenedInside", "ClosedInside", "LockedInside"}[d]
}
