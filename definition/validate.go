package definition

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ValidationError describes one problem in a definition.
type ValidationError struct {
	// Field locates the problem, e.g. "transitions[2].to".
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type validator struct {
	err error
}

func (v *validator) add(field, format string, args ...any) {
	v.err = multierr.Append(v.err, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) member(field, value string, alphabet map[string]bool, kind string) {
	if value == "" {
		v.add(field, "is required")
		return
	}
	if !alphabet[value] {
		v.add(field, "%q is not a declared %s", value, kind)
	}
}

func (v *validator) alphabet(field string, names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			v.add(fmt.Sprintf("%s[%d]", field, i), "name is empty")
			continue
		}
		if set[name] {
			v.add(fmt.Sprintf("%s[%d]", field, i), "%q is declared more than once", name)
		}
		set[name] = true
	}
	return set
}

// Validate reports every structural problem in the definition. The returned
// error aggregates one *ValidationError per problem.
func (d *Definition) Validate() error {
	v := &validator{}

	if len(d.States) == 0 {
		v.add("states", "at least one state is required")
	}
	states := v.alphabet("states", d.States)
	for i, name := range d.Exclude {
		v.member(fmt.Sprintf("exclude[%d]", i), name, states, "state")
	}
	for _, name := range d.Exclude {
		delete(states, name)
	}
	if len(d.States) > 0 && len(states) == 0 {
		v.add("exclude", "every state is excluded")
	}
	if d.Initial != "" {
		v.member("initial", d.Initial, states, "state")
	}

	for i, t := range d.Transitions {
		field := fmt.Sprintf("transitions[%d]", i)
		switch {
		case len(t.Chain) > 0 && (t.From != "" || t.To != ""):
			v.add(field, "use either from/to or chain, not both")
		case len(t.Chain) > 0:
			for j, name := range t.Chain {
				v.member(fmt.Sprintf("%s.chain[%d]", field, j), name, states, "state")
			}
		default:
			v.member(field+".from", t.From, states, "state")
			v.member(field+".to", t.To, states, "state")
		}
	}
	for i, t := range d.Invalid {
		field := fmt.Sprintf("invalid[%d]", i)
		v.member(field+".from", t.From, states, "state")
		v.member(field+".to", t.To, states, "state")
	}

	inputs := v.alphabet("inputs", d.Inputs)
	outputs := v.alphabet("outputs", d.Outputs)
	if (len(d.Functions) > 0 || len(d.Rejections) > 0) && len(d.Inputs) == 0 {
		v.add("inputs", "functions and rejections require inputs")
	}

	handled := make(map[partKey]int)
	emitted := make(map[partKey]int)
	for i, fn := range d.Functions {
		field := fmt.Sprintf("functions[%d]", i)
		v.member(field+".input", fn.Input, inputs, "input")
		v.member(field+".state", fn.State, states, "state")
		if fn.Next == "" && fn.Output == "" {
			v.add(field, "next or output is required")
		}
		if fn.Next != "" {
			v.member(field+".next", fn.Next, states, "state")
			key := partKey{input: fn.Input, state: fn.State}
			if j, ok := handled[key]; ok {
				v.add(field, "input %q in state %q is already handled by functions[%d]", fn.Input, fn.State, j)
			} else {
				handled[key] = i
			}
		}
		if fn.Output == "" {
			if fn.Kind != "" {
				v.add(field+".kind", "kind requires an output")
			}
			continue
		}
		if len(d.Outputs) == 0 {
			v.add(field+".output", "outputs are not declared")
			continue
		}
		switch strings.ToLower(fn.Kind) {
		case "", KindMoore:
			if strings.Contains(fn.Output, inputPlaceholder) {
				v.add(field+".output", "a moore output cannot depend on the input")
			}
		case KindMealy:
		default:
			v.add(field+".kind", "%q is not one of %s, %s", fn.Kind, KindMoore, KindMealy)
		}
		if !hasPlaceholder(fn.Output) && !outputs[fn.Output] {
			v.add(field+".output", "%q is not a declared output", fn.Output)
		}

		key := fn.outputKey()
		j, ok := emitted[key]
		if !ok {
			emitted[key] = i
			continue
		}
		if other := d.Functions[j]; !fn.sameOutput(other) {
			v.add(field+".output", "conflicts with functions[%d]: both emit for input %q arriving at %q, as %s %q and %s %q",
				j, key.input, key.state, other.outputKind(), other.Output, fn.outputKind(), fn.Output)
		}
	}

	for i, r := range d.Rejections {
		field := fmt.Sprintf("rejections[%d]", i)
		v.member(field+".input", r.Input, inputs, "input")
		v.member(field+".state", r.State, states, "state")
	}

	return v.err
}

// partKey addresses a transition or output function part by names.
type partKey struct {
	input, state string
}

// outputKey is where the output of fn is registered: outputs are looked up
// by the input and the state reached, so entries leading to the same state
// on the same input share one key.
func (fn Function) outputKey() partKey {
	state := fn.State
	if fn.Next != "" {
		state = fn.Next
	}
	return partKey{input: fn.Input, state: state}
}

func (fn Function) outputKind() string {
	if strings.EqualFold(fn.Kind, KindMealy) {
		return KindMealy
	}
	return KindMoore
}

func (fn Function) sameOutput(other Function) bool {
	return fn.Output == other.Output && fn.outputKind() == other.outputKind()
}

const (
	statePlaceholder = "{state}"
	inputPlaceholder = "{input}"
)

func hasPlaceholder(s string) bool {
	return strings.Contains(s, statePlaceholder) || strings.Contains(s, inputPlaceholder)
}

func expand(template, state, input string) string {
	return strings.NewReplacer(statePlaceholder, state, inputPlaceholder, input).Replace(template)
}
