package transitions

import "fmt"

func transitionNotDefined(start, finish string) string {
	return fmt.Sprintf("the transition between %s and %s is not defined", start, finish)
}

func transitionPermitted(start, finish string) string {
	return fmt.Sprintf("the transition between %s and %s is permitted", start, finish)
}

func transitionDenied(start, finish string) string {
	return fmt.Sprintf("the transition between %s and %s is not permitted", start, finish)
}

func transitionToSameState(state string) string {
	return fmt.Sprintf("attempted transition to the same state: %s", state)
}

func undefinedTransitionFunction(state, input string) string {
	return fmt.Sprintf("state transition function is not defined for the input %s and the current state %s", input, state)
}

func undefinedOutputFunction(state, input string) string {
	return fmt.Sprintf("output function is not defined for the input %s and the current state %s", input, state)
}
