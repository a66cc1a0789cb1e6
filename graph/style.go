package graph

import (
	"strings"
)

// Style defines the interface for formatting state graphs.
type Style interface {
	// GetPrefix returns the text that starts a new graph.
	GetPrefix() string

	// GetInitialTransition returns the text for the initial state transition.
	GetInitialTransition(initialState *State) string

	// FormatOneState formats a single state.
	FormatOneState(state *State) string

	// FormatOneDecisionNode formats a decision node.
	FormatOneDecisionNode(nodeName, label string) string

	// FormatAllTransitions formats all transitions.
	FormatAllTransitions(transitions []*Transition) []string

	// FormatOneTransition formats a single transition.
	FormatOneTransition(transit *Transition) string
}

// FormatTransitions is a helper that formats all transitions using the given style.
func FormatTransitions(style Style, transitions []*Transition) []string {
	var lines []string

	for _, transit := range transitions {
		if transit.DestinationNodeName == "" {
			continue
		}
		if line := style.FormatOneTransition(transit); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// transitionLabel renders "trigger / actions [notes]".
func transitionLabel(transit *Transition) string {
	var sb strings.Builder

	sb.WriteString(transit.Trigger)

	if len(transit.Actions) > 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("/ ")
		sb.WriteString(strings.Join(transit.Actions, ", "))
	}

	for _, note := range transit.Notes {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[")
		sb.WriteString(note)
		sb.WriteString("]")
	}

	return sb.String()
}
