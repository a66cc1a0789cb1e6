package transitions

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Core is the narrow surface an acceptor needs from the engine beneath it.
type Core[S comparable] interface {
	// CurrentState returns the state under the cursor.
	CurrentState() S
	// ApplyTransition moves the cursor without consulting edge validity.
	ApplyTransition(target S) (string, error)
	// QueryEdge reports the validity of a single edge.
	QueryEdge(start, finish S) (Result, error)
	// States returns the state alphabet.
	States() *Alphabet[S]
}

// TransitionSystem is a transition graph over a finite state alphabet with a
// cursor. It is not safe for concurrent use; populate it fully before
// issuing path queries.
type TransitionSystem[S comparable] struct {
	name   string
	states *Alphabet[S]

	// graph holds every registered edge; undirected records appear under
	// both orientations.
	graph   map[edgeKey]*record[S]
	records []*record[S]
	valid   []validEdge
	digest  *digest

	current int
	initial int

	logger         *slog.Logger
	onTransitioned event[Transition[S]]
	onRejected     event[Rejection[S]]
}

var _ Core[int] = (*TransitionSystem[int])(nil)

// New builds a transition system over the state alphabet yielded by states.
func New[S comparable](states Provider[S], opts ...Option) (*TransitionSystem[S], error) {
	cfg := newSettings(opts)
	alphabet, err := NewAlphabet("state", states)
	if err != nil {
		return nil, err
	}

	ts := &TransitionSystem[S]{
		name:   cfg.name,
		states: alphabet,
		graph:  make(map[edgeKey]*record[S]),
		digest: newDigest(alphabet.Len()),
		logger: cfg.logger,
	}
	if ts.initial, err = ts.selectInitial(cfg); err != nil {
		return nil, err
	}
	ts.current = ts.initial
	return ts, nil
}

// MustNew is New that panics on error.
func MustNew[S comparable](states Provider[S], opts ...Option) *TransitionSystem[S] {
	ts, err := New(states, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create transition system: %v", err))
	}
	return ts
}

func (ts *TransitionSystem[S]) selectInitial(cfg *settings) (int, error) {
	fallback := ts.states.defaultIndex()
	if !cfg.hasInitial {
		return fallback, nil
	}
	v, ok := cfg.initial.(S)
	if !ok {
		msg := fmt.Sprintf("initial state %v has type %T, the state alphabet holds %s",
			cfg.initial, cfg.initial, reflect.TypeOf((*S)(nil)).Elem())
		return 0, &ArgumentError{ParamName: "initial", Message: msg}
	}
	if el, err := ts.states.Find(v); err == nil {
		return el.index, nil
	}
	ts.logger.Warn("initial state is not a member of the state alphabet, using default",
		"machine", ts.name,
		"requested", fmt.Sprintf("%v", cfg.initial),
		"default", ts.states.At(fallback).name)
	return fallback, nil
}

// Name returns the label given with WithName.
func (ts *TransitionSystem[S]) Name() string { return ts.name }

// States returns the state alphabet.
func (ts *TransitionSystem[S]) States() *Alphabet[S] { return ts.states }

// CurrentState returns the state under the cursor.
func (ts *TransitionSystem[S]) CurrentState() S {
	return ts.states.At(ts.current).value
}

// InitialState returns the state the cursor started from.
func (ts *TransitionSystem[S]) InitialState() S {
	return ts.states.At(ts.initial).value
}

// ResetState jumps to the initial state unconditionally. The transition
// graph is not consulted and no edge callback runs; observers see a Reset move.
func (ts *TransitionSystem[S]) ResetState() S {
	source := ts.current
	ts.current = ts.initial
	ts.logger.Debug("state reset", "machine", ts.name, "from", ts.states.At(source).name)
	ts.onTransitioned.Invoke(Transition[S]{
		Source:      ts.states.At(source).value,
		Destination: ts.states.At(ts.initial).value,
		Kind:        Reset,
	})
	return ts.InitialState()
}

// OnTransitioned registers a callback invoked after every cursor move.
func (ts *TransitionSystem[S]) OnTransitioned(handler func(Transition[S])) {
	ts.onTransitioned.Register(handler)
}

// OnRejected registers a callback invoked when TryTransitionTo is refused.
func (ts *TransitionSystem[S]) OnRejected(handler func(Rejection[S])) {
	ts.onRejected.Register(handler)
}

// UnregisterAllCallbacks removes all OnTransitioned and OnRejected callbacks.
func (ts *TransitionSystem[S]) UnregisterAllCallbacks() {
	ts.onTransitioned.UnregisterAll()
	ts.onRejected.UnregisterAll()
}

// AddValidTransition registers a permitted edge. A self transition is
// ignored. Registering a key twice, in either orientation for undirected
// edges, is a population error.
func (ts *TransitionSystem[S]) AddValidTransition(start, finish S, action Action[S], undirected bool) error {
	if start == finish {
		return nil
	}
	key, err := ts.edgeKey(start, finish)
	if err != nil {
		return err
	}
	rec := &record[S]{key: key, valid: true, undirected: undirected, action: action}
	if err := ts.store(rec); err != nil {
		return err
	}
	edge := validEdge{key: key, undirected: undirected}
	ts.valid = append(ts.valid, edge)
	ts.digest.update(edge)
	ts.logger.Debug("valid transition added",
		"machine", ts.name,
		"start", ts.states.At(key.start).name,
		"finish", ts.states.At(key.finish).name,
		"undirected", undirected)
	return nil
}

// AddValidTransitionChain adds a valid edge between every two consecutive
// distinct elements of chain and returns the number of edges added.
func (ts *TransitionSystem[S]) AddValidTransitionChain(action Action[S], undirected bool, chain ...S) (int, error) {
	if len(chain) < 2 {
		return 0, nil
	}
	count := 0
	current := chain[0]
	for _, state := range chain[1:] {
		if state == current {
			continue
		}
		if err := ts.AddValidTransition(current, state, action, undirected); err != nil {
			return count, err
		}
		count++
		current = state
	}
	return count, nil
}

// AddInvalidTransition registers a refused edge with an optional explanation.
// A self transition is ignored.
func (ts *TransitionSystem[S]) AddInvalidTransition(start, finish S, explain Explain[S]) error {
	if start == finish {
		return nil
	}
	key, err := ts.edgeKey(start, finish)
	if err != nil {
		return err
	}
	if err := ts.store(&record[S]{key: key, explain: explain}); err != nil {
		return err
	}
	ts.logger.Debug("invalid transition added",
		"machine", ts.name,
		"start", ts.states.At(key.start).name,
		"finish", ts.states.At(key.finish).name)
	return nil
}

// IsTransitionValid reports whether the edge start -> finish is registered
// and permitted, with a human-readable comment.
func (ts *TransitionSystem[S]) IsTransitionValid(start, finish S) (Result, error) {
	key, err := ts.edgeKey(start, finish)
	if err != nil {
		return Result{}, err
	}
	rec, ok := ts.graph[key]
	if !ok {
		return Result{Comment: transitionNotDefined(ts.nameAt(key.start), ts.nameAt(key.finish))}, nil
	}
	return ts.validity(rec, start, finish), nil
}

// QueryEdge implements Core.
func (ts *TransitionSystem[S]) QueryEdge(start, finish S) (Result, error) {
	return ts.IsTransitionValid(start, finish)
}

// TryTransitionTo moves the cursor to target if the edge from the current
// state is valid. The success callback runs before the cursor advances.
func (ts *TransitionSystem[S]) TryTransitionTo(target S) (Result, error) {
	finish, err := ts.states.Find(target)
	if err != nil {
		return Result{}, err
	}
	if finish.index == ts.current {
		return Result{OK: true, Comment: transitionToSameState(finish.name)}, nil
	}

	source := ts.states.At(ts.current)
	rec, ok := ts.graph[edgeKey{start: source.index, finish: finish.index}]
	if !ok {
		comment := transitionNotDefined(source.name, finish.name)
		ts.reject(source.value, target, NotDefined, comment)
		return Result{Comment: comment}, nil
	}
	if verdict := ts.validity(rec, source.value, target); !verdict.OK {
		ts.reject(source.value, target, Denied, verdict.Comment)
		return verdict, nil
	}

	if rec.action != nil {
		rec.action(source.value, target)
	}
	ts.current = finish.index
	ts.logger.Debug("transitioned", "machine", ts.name, "from", source.name, "to", finish.name)
	ts.onTransitioned.Invoke(Transition[S]{Source: source.value, Destination: target, Kind: Direct})
	return Result{OK: true, Comment: finish.name}, nil
}

// ApplyTransition moves the cursor to target without validating the edge.
// If a valid edge from the current state to target exists, its success
// callback runs after the cursor has moved.
func (ts *TransitionSystem[S]) ApplyTransition(target S) (string, error) {
	finish, err := ts.states.Find(target)
	if err != nil {
		return "", err
	}
	if finish.index == ts.current {
		return transitionToSameState(finish.name), nil
	}

	source := ts.states.At(ts.current)
	ts.current = finish.index
	if rec, ok := ts.graph[edgeKey{start: source.index, finish: finish.index}]; ok && rec.valid && rec.action != nil {
		rec.action(source.value, target)
	}
	ts.logger.Debug("transition applied", "machine", ts.name, "from", source.name, "to", finish.name)
	ts.onTransitioned.Invoke(Transition[S]{Source: source.value, Destination: target, Kind: Signal})
	return finish.name, nil
}

func (ts *TransitionSystem[S]) store(rec *record[S]) error {
	reverse := edgeKey{start: rec.key.finish, finish: rec.key.start}
	_, exists := ts.graph[rec.key]
	if !exists && rec.undirected {
		_, exists = ts.graph[reverse]
	}
	if exists {
		return newPopulationError(DuplicateTransition,
			"the transition between %s and %s is already added to the transition system graph",
			ts.nameAt(rec.key.start), ts.nameAt(rec.key.finish))
	}
	ts.graph[rec.key] = rec
	if rec.undirected {
		ts.graph[reverse] = rec
	}
	ts.records = append(ts.records, rec)
	return nil
}

func (ts *TransitionSystem[S]) validity(rec *record[S], start, finish S) Result {
	if rec.valid {
		return Result{OK: true, Comment: transitionPermitted(ts.states.Name(start), ts.states.Name(finish))}
	}
	if rec.explain != nil {
		return Result{Comment: rec.explain(start, finish)}
	}
	return Result{Comment: transitionDenied(ts.states.Name(start), ts.states.Name(finish))}
}

func (ts *TransitionSystem[S]) reject(source, target S, reason RejectReason, comment string) {
	ts.logger.Debug("transition rejected",
		"machine", ts.name,
		"from", ts.states.Name(source),
		"to", ts.states.Name(target),
		"reason", reason.String())
	ts.onRejected.Invoke(Rejection[S]{Source: source, Target: target, Reason: reason, Comment: comment})
}

func (ts *TransitionSystem[S]) edgeKey(start, finish S) (edgeKey, error) {
	s, err := ts.states.Find(start)
	if err != nil {
		return edgeKey{}, err
	}
	f, err := ts.states.Find(finish)
	if err != nil {
		return edgeKey{}, err
	}
	return edgeKey{start: s.index, finish: f.index}, nil
}

func (ts *TransitionSystem[S]) nameAt(i int) string {
	return ts.states.At(i).name
}

// String returns a string representation of the current state.
func (ts *TransitionSystem[S]) String() string {
	return fmt.Sprintf("TransitionSystem { State = %s }", ts.nameAt(ts.current))
}
