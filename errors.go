package transitions

import (
	"errors"
	"fmt"
)

// ErrEmptyAlphabet is returned when a provider yields no entries.
var ErrEmptyAlphabet = errors.New("alphabet provider yielded no entries")

// PopulationKind classifies setup-time errors.
type PopulationKind int

const (
	// DuplicateTransition means the transition graph already holds the key.
	DuplicateTransition PopulationKind = iota
	// DuplicateTransitionFunction means an (input, state) handler is already registered.
	DuplicateTransitionFunction
	// DuplicateInvalidInput means an (input, state) rejection is already registered.
	DuplicateInvalidInput
	// DuplicateOutputFunction means an (input, state) output function is already registered.
	DuplicateOutputFunction
	// DuplicateValue means two alphabet entries share an underlying value.
	DuplicateValue
	// DuplicateName means two alphabet entries share a name.
	DuplicateName
)

func (k PopulationKind) String() string {
	switch k {
	case DuplicateTransition:
		return "DuplicateTransition"
	case DuplicateTransitionFunction:
		return "DuplicateTransitionFunction"
	case DuplicateInvalidInput:
		return "DuplicateInvalidInput"
	case DuplicateOutputFunction:
		return "DuplicateOutputFunction"
	case DuplicateValue:
		return "DuplicateValue"
	case DuplicateName:
		return "DuplicateName"
	default:
		return "Unknown"
	}
}

// PopulationError indicates a programmer error while populating a graph,
// a function table or an alphabet. The failing call has no effect.
type PopulationError struct {
	Kind    PopulationKind
	Message string
}

func (e *PopulationError) Error() string {
	return e.Message
}

func newPopulationError(kind PopulationKind, format string, args ...any) *PopulationError {
	return &PopulationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// UnknownElementError is returned when a value is not a member of an alphabet.
type UnknownElementError struct {
	// Alphabet is the kind of alphabet searched: "state", "input" or "output".
	Alphabet string
	Value    any
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("the value %v is not a part of the %s alphabet", e.Value, e.Alphabet)
}

// ArgumentError indicates an invalid argument was passed.
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}

// IsPopulationError reports whether err wraps a *PopulationError.
func IsPopulationError(err error) bool {
	var e *PopulationError
	return errors.As(err, &e)
}

// IsUnknownElementError reports whether err wraps an *UnknownElementError.
func IsUnknownElementError(err error) bool {
	var e *UnknownElementError
	return errors.As(err, &e)
}
