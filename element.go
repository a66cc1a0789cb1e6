package transitions

import (
	"fmt"

	"go.uber.org/multierr"
)

// Entry pairs a display name with a domain value.
type Entry[T comparable] struct {
	Name  string
	Value T
}

// Provider yields the entries of an alphabet. It is consulted exactly once,
// when the alphabet is built.
type Provider[T comparable] interface {
	Entries() []Entry[T]
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc[T comparable] func() []Entry[T]

// Entries implements Provider.
func (f ProviderFunc[T]) Entries() []Entry[T] {
	return f()
}

// List returns a provider yielding the given entries in order.
func List[T comparable](entries ...Entry[T]) Provider[T] {
	return ProviderFunc[T](func() []Entry[T] {
		return entries
	})
}

// Named returns a provider naming each value by its String method.
func Named[T interface {
	comparable
	fmt.Stringer
}](values ...T) Provider[T] {
	return ProviderFunc[T](func() []Entry[T] {
		entries := make([]Entry[T], len(values))
		for i, v := range values {
			entries[i] = Entry[T]{Name: v.String(), Value: v}
		}
		return entries
	})
}

// Filtered returns a provider that drops the entries for which keep returns false.
func Filtered[T comparable](p Provider[T], keep func(Entry[T]) bool) Provider[T] {
	return ProviderFunc[T](func() []Entry[T] {
		var entries []Entry[T]
		for _, e := range p.Entries() {
			if keep(e) {
				entries = append(entries, e)
			}
		}
		return entries
	})
}

// Element is a named member of an alphabet. Its index is stable for the
// lifetime of the alphabet.
type Element[T comparable] struct {
	index int
	name  string
	value T
}

// Name returns the display name.
func (e *Element[T]) Name() string { return e.name }

// Value returns the underlying domain value.
func (e *Element[T]) Value() T { return e.value }

// Index returns the position of the element in its alphabet.
func (e *Element[T]) Index() int { return e.index }

func (e *Element[T]) String() string { return e.name }

// Alphabet is an immutable, ordered directory of elements.
type Alphabet[T comparable] struct {
	kind     string
	elements []*Element[T]
	byValue  map[T]int
}

// NewAlphabet enumerates p once and builds the directory. Every duplicate
// value or name is reported; the returned error aggregates them.
func NewAlphabet[T comparable](kind string, p Provider[T]) (*Alphabet[T], error) {
	if p == nil {
		return nil, &ArgumentError{ParamName: "provider", Message: "alphabet provider is nil"}
	}
	entries := p.Entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s alphabet: %w", kind, ErrEmptyAlphabet)
	}

	a := &Alphabet[T]{
		kind:     kind,
		elements: make([]*Element[T], 0, len(entries)),
		byValue:  make(map[T]int, len(entries)),
	}
	names := make(map[string]int, len(entries))

	var err error
	for _, e := range entries {
		if prev, ok := a.byValue[e.Value]; ok {
			err = multierr.Append(err, newPopulationError(DuplicateValue,
				"%s entries %q and %q share the value %v", kind, a.elements[prev].name, e.Name, e.Value))
			continue
		}
		if _, ok := names[e.Name]; ok {
			err = multierr.Append(err, newPopulationError(DuplicateName,
				"%s name %q is used by more than one entry", kind, e.Name))
			continue
		}
		idx := len(a.elements)
		a.elements = append(a.elements, &Element[T]{index: idx, name: e.Name, value: e.Value})
		a.byValue[e.Value] = idx
		names[e.Name] = idx
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Kind returns the alphabet kind, e.g. "state".
func (a *Alphabet[T]) Kind() string { return a.kind }

// Len returns the number of elements.
func (a *Alphabet[T]) Len() int { return len(a.elements) }

// Contains reports whether v is a member.
func (a *Alphabet[T]) Contains(v T) bool {
	_, ok := a.byValue[v]
	return ok
}

// Find returns the element holding v.
func (a *Alphabet[T]) Find(v T) (*Element[T], error) {
	idx, ok := a.byValue[v]
	if !ok {
		return nil, &UnknownElementError{Alphabet: a.kind, Value: v}
	}
	return a.elements[idx], nil
}

// At returns the element at index i.
func (a *Alphabet[T]) At(i int) *Element[T] {
	return a.elements[i]
}

// Values returns the member values in provider order.
func (a *Alphabet[T]) Values() []T {
	values := make([]T, len(a.elements))
	for i, e := range a.elements {
		values[i] = e.value
	}
	return values
}

// Name returns the display name of v, or its %v rendering if v is not a member.
func (a *Alphabet[T]) Name(v T) string {
	if idx, ok := a.byValue[v]; ok {
		return a.elements[idx].name
	}
	return fmt.Sprintf("%v", v)
}

// defaultIndex is the intrinsic default: the zero value if it is a member,
// otherwise the first entry.
func (a *Alphabet[T]) defaultIndex() int {
	var zero T
	if idx, ok := a.byValue[zero]; ok {
		return idx
	}
	return 0
}
