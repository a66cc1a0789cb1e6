package definition

import (
	"fmt"

	"github.com/atlekbai/transitions"
)

func provider(names []string) transitions.Provider[string] {
	entries := make([]transitions.Entry[string], len(names))
	for i, name := range names {
		entries[i] = transitions.Entry[string]{Name: name, Value: name}
	}
	return transitions.List(entries...)
}

// StateProvider yields the declared states with the excluded ones filtered out.
func (d *Definition) StateProvider() transitions.Provider[string] {
	excluded := make(map[string]bool, len(d.Exclude))
	for _, name := range d.Exclude {
		excluded[name] = true
	}
	return transitions.Filtered(provider(d.States), func(e transitions.Entry[string]) bool {
		return !excluded[e.Value]
	})
}

func (d *Definition) options(opts []transitions.Option) []transitions.Option {
	base := []transitions.Option{transitions.WithName(d.Name)}
	if d.Initial != "" {
		base = append(base, transitions.WithInitial(d.Initial))
	}
	return append(base, opts...)
}

func reason(text string) transitions.Explain[string] {
	if text == "" {
		return nil
	}
	return func(_, _ string) string { return text }
}

// BuildSystem compiles the states and edges of the definition.
func (d *Definition) BuildSystem(opts ...transitions.Option) (*transitions.TransitionSystem[string], error) {
	ts, err := transitions.New(d.StateProvider(), d.options(opts)...)
	if err != nil {
		return nil, err
	}
	if err := d.populate(ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (d *Definition) populate(ts *transitions.TransitionSystem[string]) error {
	for i, t := range d.Transitions {
		if len(t.Chain) > 0 {
			if _, err := ts.AddValidTransitionChain(nil, t.Undirected, t.Chain...); err != nil {
				return fmt.Errorf("transitions[%d]: %w", i, err)
			}
			continue
		}
		if err := ts.AddValidTransition(t.From, t.To, nil, t.Undirected); err != nil {
			return fmt.Errorf("transitions[%d]: %w", i, err)
		}
	}
	for i, t := range d.Invalid {
		if err := ts.AddInvalidTransition(t.From, t.To, reason(t.Reason)); err != nil {
			return fmt.Errorf("invalid[%d]: %w", i, err)
		}
	}
	return nil
}

func goTo(next string) transitions.Handler[string, string] {
	return func(string, string) string { return next }
}

// BuildAcceptor compiles the definition into an acceptor over its transition system.
func (d *Definition) BuildAcceptor(opts ...transitions.Option) (*transitions.Acceptor[string, string], error) {
	if len(d.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	ts, err := d.BuildSystem(opts...)
	if err != nil {
		return nil, err
	}
	acc, err := transitions.NewAcceptor[string](ts, provider(d.Inputs), d.options(opts)...)
	if err != nil {
		return nil, err
	}

	for i, fn := range d.Functions {
		if fn.Next == "" {
			continue
		}
		if err := acc.AddTransitionFunctionPart(fn.Input, fn.State, goTo(fn.Next)); err != nil {
			return nil, fmt.Errorf("functions[%d]: %w", i, err)
		}
	}
	for i, r := range d.Rejections {
		var explain transitions.InputExplain[string, string]
		if r.Reason != "" {
			text := r.Reason
			explain = func(_, _ string) string { return text }
		}
		if err := acc.AddInvalidInput(r.Input, r.State, explain); err != nil {
			return nil, fmt.Errorf("rejections[%d]: %w", i, err)
		}
	}
	return acc, nil
}

// BuildTransducer compiles the definition into a transducer. The output of
// a function entry is registered for its input and the state it leads to,
// since outputs are looked up after the transition. Entries sharing that key
// carry the same output after validation and are registered once.
func (d *Definition) BuildTransducer(opts ...transitions.Option) (*transitions.Transducer[string, string, string], error) {
	if len(d.Outputs) == 0 {
		return nil, ErrNoOutputs
	}
	acc, err := d.BuildAcceptor(opts...)
	if err != nil {
		return nil, err
	}
	tr, err := transitions.NewTransducer(acc, provider(d.Outputs), d.options(opts)...)
	if err != nil {
		return nil, err
	}

	registered := make(map[partKey]bool)
	for i, fn := range d.Functions {
		if fn.Output == "" {
			continue
		}
		key := fn.outputKey()
		if registered[key] {
			continue
		}
		registered[key] = true

		template := fn.Output
		var out transitions.OutputFunction[string, string, string]
		if fn.outputKind() == KindMealy {
			out = transitions.Mealy[string, string, string](func(state, input string) string {
				return expand(template, state, input)
			})
		} else {
			out = transitions.Moore[string, string, string](func(state string) string {
				return expand(template, state, "")
			})
		}
		if err := tr.AddOutputFunctionPart(key.input, key.state, out); err != nil {
			return nil, fmt.Errorf("functions[%d]: %w", i, err)
		}
	}
	return tr, nil
}
