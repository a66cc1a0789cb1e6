package transitions

import (
	"fmt"
	"log/slog"
)

// MachineType tags an output function as Moore or Mealy.
type MachineType int

const (
	// MooreMachine output depends on the state alone.
	MooreMachine MachineType = iota
	// MealyMachine output depends on the state and the input.
	MealyMachine
)

func (t MachineType) String() string {
	if t == MealyMachine {
		return "Mealy"
	}
	return "Moore"
}

// MooreHandler computes an output from a state.
type MooreHandler[S, O comparable] func(state S) O

// MealyHandler computes an output from a state and an input.
type MealyHandler[S, I, O comparable] func(state S, input I) O

// OutputFunction is a tagged Moore or Mealy output handler.
type OutputFunction[S, I, O comparable] struct {
	kind  MachineType
	moore MooreHandler[S, O]
	mealy MealyHandler[S, I, O]
}

// Moore wraps a Moore handler.
func Moore[S, I, O comparable](handler MooreHandler[S, O]) OutputFunction[S, I, O] {
	return OutputFunction[S, I, O]{kind: MooreMachine, moore: handler}
}

// Mealy wraps a Mealy handler.
func Mealy[S, I, O comparable](handler MealyHandler[S, I, O]) OutputFunction[S, I, O] {
	return OutputFunction[S, I, O]{kind: MealyMachine, mealy: handler}
}

// Kind returns the machine type the function was registered with.
func (f OutputFunction[S, I, O]) Kind() MachineType { return f.kind }

func (f OutputFunction[S, I, O]) isNil() bool {
	if f.kind == MealyMachine {
		return f.mealy == nil
	}
	return f.moore == nil
}

func (f OutputFunction[S, I, O]) call(state S, input I) O {
	if f.kind == MealyMachine {
		return f.mealy(state, input)
	}
	return f.moore(state)
}

// SignalOutput is the outcome of Signal. The transition and the output are
// resolved independently; either may fail while the other succeeds.
type SignalOutput[S, O comparable] struct {
	Transition    SignalResult[S]
	Output        O
	OutputOK      bool
	OutputComment string
}

type outputPart[S, I, O comparable] struct {
	key functionKey
	fn  OutputFunction[S, I, O]
}

// Transducer adds an output alphabet and an output function on top of an acceptor.
type Transducer[S, I, O comparable] struct {
	acceptor *Acceptor[S, I]
	outputs  *Alphabet[O]
	name     string
	logger   *slog.Logger

	parts     map[functionKey]*outputPart[S, I, O]
	partOrder []*outputPart[S, I, O]
}

// NewTransducer builds a transducer over acceptor with the output alphabet yielded by outputs.
func NewTransducer[S, I, O comparable](acceptor *Acceptor[S, I], outputs Provider[O], opts ...Option) (*Transducer[S, I, O], error) {
	if acceptor == nil {
		return nil, &ArgumentError{ParamName: "acceptor", Message: "acceptor is nil"}
	}
	cfg := newSettings(opts)
	alphabet, err := NewAlphabet("output", outputs)
	if err != nil {
		return nil, err
	}
	return &Transducer[S, I, O]{
		acceptor: acceptor,
		outputs:  alphabet,
		name:     cfg.name,
		logger:   cfg.logger,
		parts:    make(map[functionKey]*outputPart[S, I, O]),
	}, nil
}

// NewTransducerFor builds the transition system, the acceptor and the
// transducer in one call.
func NewTransducerFor[S, I, O comparable](states Provider[S], inputs Provider[I], outputs Provider[O], opts ...Option) (*Transducer[S, I, O], error) {
	acceptor, err := NewAcceptorFor(states, inputs, opts...)
	if err != nil {
		return nil, err
	}
	return NewTransducer(acceptor, outputs, opts...)
}

// Acceptor returns the acceptor the transducer drives.
func (t *Transducer[S, I, O]) Acceptor() *Acceptor[S, I] { return t.acceptor }

// Outputs returns the output alphabet.
func (t *Transducer[S, I, O]) Outputs() *Alphabet[O] { return t.outputs }

// CurrentState returns the state under the cursor.
func (t *Transducer[S, I, O]) CurrentState() S { return t.acceptor.CurrentState() }

// AddOutputFunctionPart registers the output function for exactly (input, state).
func (t *Transducer[S, I, O]) AddOutputFunctionPart(input I, state S, fn OutputFunction[S, I, O]) error {
	if fn.isNil() {
		return &ArgumentError{ParamName: "fn", Message: "output function handler is nil"}
	}
	key, err := t.acceptor.functionKey(input, state)
	if err != nil {
		return err
	}
	if _, exists := t.parts[key]; exists {
		return newPopulationError(DuplicateOutputFunction,
			"the output handler for the input %s and the state %s is already added to the output function",
			t.acceptor.inputs.Name(input), t.acceptor.core.States().Name(state))
	}
	part := &outputPart[S, I, O]{key: key, fn: fn}
	t.parts[key] = part
	t.partOrder = append(t.partOrder, part)
	t.logger.Debug("output function part added",
		"machine", t.name,
		"input", t.acceptor.inputs.Name(input),
		"state", t.acceptor.core.States().Name(state),
		"kind", fn.kind.String())
	return nil
}

// AddMooreOutputPart registers a Moore output handler.
func (t *Transducer[S, I, O]) AddMooreOutputPart(input I, state S, handler MooreHandler[S, O]) error {
	return t.AddOutputFunctionPart(input, state, Moore[S, I, O](handler))
}

// AddMealyOutputPart registers a Mealy output handler.
func (t *Transducer[S, I, O]) AddMealyOutputPart(input I, state S, handler MealyHandler[S, I, O]) error {
	return t.AddOutputFunctionPart(input, state, Mealy[S, I, O](handler))
}

// Signal feeds input to the acceptor, then computes the output registered
// for input and the state reached.
func (t *Transducer[S, I, O]) Signal(input I) (SignalOutput[S, O], error) {
	transition, err := t.acceptor.TransitionSignal(input)
	if err != nil {
		return SignalOutput[S, O]{Transition: transition}, err
	}
	result := SignalOutput[S, O]{Transition: transition}

	state := t.acceptor.CurrentState()
	key, err := t.acceptor.functionKey(input, state)
	if err != nil {
		return result, err
	}
	part, ok := t.parts[key]
	if !ok {
		result.OutputComment = undefinedOutputFunction(t.acceptor.core.States().Name(state), t.acceptor.inputs.Name(input))
		return result, nil
	}

	output := part.fn.call(state, input)
	if !t.outputs.Contains(output) {
		return result, fmt.Errorf("%s output function for input %s in state %s: %w",
			part.fn.kind, t.acceptor.inputs.Name(input), t.acceptor.core.States().Name(state),
			&UnknownElementError{Alphabet: t.outputs.kind, Value: output})
	}
	result.Output = output
	result.OutputOK = true
	return result, nil
}
