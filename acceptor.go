package transitions

import (
	"fmt"
	"log/slog"
)

// Handler computes the next state for an (input, state) pair.
type Handler[S, I comparable] func(state S, input I) S

// InputExplain produces the reason an input is refused in a state.
type InputExplain[S, I comparable] func(state S, input I) string

// SignalResult is the outcome of TransitionSignal.
type SignalResult[S comparable] struct {
	// State is the current state after the signal.
	State   S
	OK      bool
	Comment string
}

// functionKey addresses a function-table entry by (input, state) index.
type functionKey struct {
	input, state int
}

type functionPart[S, I comparable] struct {
	key     functionKey
	handler Handler[S, I]
}

type invalidInput[S, I comparable] struct {
	key     functionKey
	explain InputExplain[S, I]
}

// Acceptor adds an input alphabet and a transition function on top of a
// transition system. Signals move the cursor through the core's
// ApplyTransition, so callbacks of matching graph edges still run.
type Acceptor[S, I comparable] struct {
	core   Core[S]
	inputs *Alphabet[I]
	name   string
	logger *slog.Logger

	functions     map[functionKey]*functionPart[S, I]
	functionOrder []*functionPart[S, I]
	rejections    map[functionKey]*invalidInput[S, I]
	rejectOrder   []*invalidInput[S, I]
}

// NewAcceptor builds an acceptor over core with the input alphabet yielded by inputs.
func NewAcceptor[S, I comparable](core Core[S], inputs Provider[I], opts ...Option) (*Acceptor[S, I], error) {
	if core == nil {
		return nil, &ArgumentError{ParamName: "core", Message: "core is nil"}
	}
	cfg := newSettings(opts)
	alphabet, err := NewAlphabet("input", inputs)
	if err != nil {
		return nil, err
	}
	return &Acceptor[S, I]{
		core:       core,
		inputs:     alphabet,
		name:       cfg.name,
		logger:     cfg.logger,
		functions:  make(map[functionKey]*functionPart[S, I]),
		rejections: make(map[functionKey]*invalidInput[S, I]),
	}, nil
}

// NewAcceptorFor builds a transition system over states and an acceptor on top of it.
func NewAcceptorFor[S, I comparable](states Provider[S], inputs Provider[I], opts ...Option) (*Acceptor[S, I], error) {
	ts, err := New(states, opts...)
	if err != nil {
		return nil, err
	}
	return NewAcceptor[S, I](ts, inputs, opts...)
}

// Core returns the engine the acceptor drives.
func (a *Acceptor[S, I]) Core() Core[S] { return a.core }

// Inputs returns the input alphabet.
func (a *Acceptor[S, I]) Inputs() *Alphabet[I] { return a.inputs }

// CurrentState returns the state under the core's cursor.
func (a *Acceptor[S, I]) CurrentState() S { return a.core.CurrentState() }

// AddTransitionFunctionPart registers the handler for exactly (input, state).
func (a *Acceptor[S, I]) AddTransitionFunctionPart(input I, state S, handler Handler[S, I]) error {
	if handler == nil {
		return &ArgumentError{ParamName: "handler", Message: "transition function handler is nil"}
	}
	key, err := a.functionKey(input, state)
	if err != nil {
		return err
	}
	if _, exists := a.functions[key]; exists {
		return newPopulationError(DuplicateTransitionFunction,
			"the state handler for the input %s and the state %s is already added to the transition function",
			a.inputs.Name(input), a.core.States().Name(state))
	}
	part := &functionPart[S, I]{key: key, handler: handler}
	a.functions[key] = part
	a.functionOrder = append(a.functionOrder, part)
	a.logger.Debug("transition function part added",
		"machine", a.name, "input", a.inputs.Name(input), "state", a.core.States().Name(state))
	return nil
}

// AddInvalidInput registers the explanation given when input arrives in
// state and no transition function part handles it.
func (a *Acceptor[S, I]) AddInvalidInput(input I, state S, explain InputExplain[S, I]) error {
	key, err := a.functionKey(input, state)
	if err != nil {
		return err
	}
	if _, exists := a.rejections[key]; exists {
		return newPopulationError(DuplicateInvalidInput,
			"the invalid input handler for the input %s and the state %s is already added to the invalid input registry",
			a.inputs.Name(input), a.core.States().Name(state))
	}
	rejection := &invalidInput[S, I]{key: key, explain: explain}
	a.rejections[key] = rejection
	a.rejectOrder = append(a.rejectOrder, rejection)
	return nil
}

// TransitionSignal feeds input to the transition function. On success the
// cursor moves to the handler's result; on failure it stays where it is.
func (a *Acceptor[S, I]) TransitionSignal(input I) (SignalResult[S], error) {
	state := a.core.CurrentState()
	key, err := a.functionKey(input, state)
	if err != nil {
		return SignalResult[S]{State: state}, err
	}

	if part, ok := a.functions[key]; ok {
		next := part.handler(state, input)
		comment, err := a.core.ApplyTransition(next)
		if err != nil {
			return SignalResult[S]{State: state}, fmt.Errorf("transition function for input %s in state %s: %w",
				a.inputs.Name(input), a.core.States().Name(state), err)
		}
		return SignalResult[S]{State: a.core.CurrentState(), OK: true, Comment: comment}, nil
	}

	comment := undefinedTransitionFunction(a.core.States().Name(state), a.inputs.Name(input))
	if rejection, ok := a.rejections[key]; ok && rejection.explain != nil {
		comment = rejection.explain(state, input)
	}
	a.logger.Debug("signal refused",
		"machine", a.name, "input", a.inputs.Name(input), "state", a.core.States().Name(state))
	return SignalResult[S]{State: state, Comment: comment}, nil
}

func (a *Acceptor[S, I]) functionKey(input I, state S) (functionKey, error) {
	in, err := a.inputs.Find(input)
	if err != nil {
		return functionKey{}, err
	}
	st, err := a.core.States().Find(state)
	if err != nil {
		return functionKey{}, err
	}
	return functionKey{input: in.index, state: st.index}, nil
}
