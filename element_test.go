package transitions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/atlekbai/transitions"
)

func TestNewAlphabet_PreservesProviderOrder(t *testing.T) {
	alphabet, err := transitions.NewAlphabet("state", transitions.Named(StateC, StateA, StateB))
	require.NoError(t, err)

	assert.Equal(t, "state", alphabet.Kind())
	assert.Equal(t, 3, alphabet.Len())
	assert.Equal(t, []State{StateC, StateA, StateB}, alphabet.Values())

	el, err := alphabet.Find(StateA)
	require.NoError(t, err)
	assert.Equal(t, 1, el.Index())
	assert.Equal(t, "StateA", el.Name())
	assert.Equal(t, StateA, el.Value())
	assert.Same(t, el, alphabet.At(1))
}

func TestNewAlphabet_Empty(t *testing.T) {
	_, err := transitions.NewAlphabet("state", transitions.List[State]())
	assert.ErrorIs(t, err, transitions.ErrEmptyAlphabet)
}

func TestNewAlphabet_NilProvider(t *testing.T) {
	_, err := transitions.NewAlphabet[State]("state", nil)
	var argErr *transitions.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "provider", argErr.ParamName)
}

func TestNewAlphabet_ReportsEveryDuplicate(t *testing.T) {
	_, err := transitions.NewAlphabet("input", transitions.List(
		transitions.Entry[int]{Name: "one", Value: 1},
		transitions.Entry[int]{Name: "uno", Value: 1},
		transitions.Entry[int]{Name: "two", Value: 2},
		transitions.Entry[int]{Name: "two", Value: 3},
	))
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var first, second *transitions.PopulationError
	require.True(t, errors.As(errs[0], &first))
	require.True(t, errors.As(errs[1], &second))
	assert.Equal(t, transitions.DuplicateValue, first.Kind)
	assert.Equal(t, transitions.DuplicateName, second.Kind)
	assert.True(t, transitions.IsPopulationError(err))
}

func TestAlphabet_FindUnknown(t *testing.T) {
	alphabet, err := transitions.NewAlphabet("state", transitions.Named(StateA))
	require.NoError(t, err)

	_, err = alphabet.Find(StateD)
	require.Error(t, err)
	assert.True(t, transitions.IsUnknownElementError(err))
	assert.Equal(t, "the value StateD is not a part of the state alphabet", err.Error())
	assert.False(t, alphabet.Contains(StateD))
	assert.True(t, alphabet.Contains(StateA))
}

func TestAlphabet_NameFallsBackToValue(t *testing.T) {
	alphabet, err := transitions.NewAlphabet("state", transitions.List(
		transitions.Entry[int]{Name: "zero", Value: 0},
	))
	require.NoError(t, err)

	assert.Equal(t, "zero", alphabet.Name(0))
	assert.Equal(t, "7", alphabet.Name(7))
}

func TestFiltered_DropsExcludedEntries(t *testing.T) {
	provider := transitions.Filtered(allStates(), func(e transitions.Entry[State]) bool {
		return e.Value != StateB
	})

	alphabet, err := transitions.NewAlphabet("state", provider)
	require.NoError(t, err)
	assert.Equal(t, []State{StateA, StateC, StateD}, alphabet.Values())
}

func TestNew_InitialState(t *testing.T) {
	tests := []struct {
		name     string
		states   transitions.Provider[State]
		opts     []transitions.Option
		expected State
	}{
		{"zero value when member", transitions.Named(StateC, StateA), nil, StateA},
		{"first entry when zero value is absent", transitions.Named(StateC, StateB), nil, StateC},
		{"explicit", allStates(), []transitions.Option{transitions.WithInitial(StateD)}, StateD},
		{"non-member falls back", transitions.Named(StateB, StateC), []transitions.Option{transitions.WithInitial(StateA)}, StateB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := transitions.New(tt.states, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ts.InitialState())
			assert.Equal(t, tt.expected, ts.CurrentState())
		})
	}
}

func TestNew_InitialStateOfWrongType(t *testing.T) {
	for _, initial := range []any{2, "StateC", int64(StateC)} {
		_, err := transitions.New(allStates(), transitions.WithInitial(initial))
		require.Error(t, err, "%T", initial)

		var argErr *transitions.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "initial", argErr.ParamName)
	}

	ts, err := transitions.New(allStates(), transitions.WithInitial(State(2)))
	require.NoError(t, err)
	assert.Equal(t, StateC, ts.InitialState())
}
