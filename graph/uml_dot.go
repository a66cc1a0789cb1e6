package graph

import (
	"fmt"
	"strings"

	"github.com/atlekbai/transitions"
)

// UmlDotGraphStyle generates DOT graphs in basic UML style. Refused edges
// are dashed; undirected edges carry arrowheads at both ends.
type UmlDotGraphStyle struct{}

// NewUmlDotGraphStyle creates a new UML DOT graph style.
func NewUmlDotGraphStyle() *UmlDotGraphStyle {
	return &UmlDotGraphStyle{}
}

// GetPrefix returns the text that starts a new DOT graph.
func (s *UmlDotGraphStyle) GetPrefix() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("compound=true;\n")
	sb.WriteString("node [shape=Mrecord]\n")
	sb.WriteString("rankdir=\"LR\"\n")
	return sb.String()
}

// FormatOneState formats a single state.
func (s *UmlDotGraphStyle) FormatOneState(state *State) string {
	escapedName := EscapeLabel(state.StateName)
	return fmt.Sprintf("\"%s\" [label=\"%s\"];\n", EscapeLabel(state.NodeName), escapedName)
}

// FormatOneDecisionNode formats a decision node.
func (s *UmlDotGraphStyle) FormatOneDecisionNode(nodeName, label string) string {
	return fmt.Sprintf("\"%s\" [shape = \"diamond\", label = \"%s\"];\n",
		EscapeLabel(nodeName), EscapeLabel(label))
}

// FormatAllTransitions formats all transitions.
func (s *UmlDotGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *UmlDotGraphStyle) FormatOneTransition(transit *Transition) string {
	style := "solid"
	if !transit.Valid {
		style = "dashed"
	}
	var extra string
	if transit.Undirected {
		extra = ", dir=\"both\""
	}
	return fmt.Sprintf("\"%s\" -> \"%s\" [style=\"%s\"%s, label=\"%s\"];",
		EscapeLabel(transit.SourceNodeName), EscapeLabel(transit.DestinationNodeName),
		style, extra, EscapeLabel(transitionLabel(transit)))
}

// GetInitialTransition returns the text for the initial state transition.
func (s *UmlDotGraphStyle) GetInitialTransition(initialState *State) string {
	if initialState == nil {
		return "\n}"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(" init [label=\"\", shape=point];")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\"[style = \"solid\"]", EscapeLabel(initialState.NodeName)))
	sb.WriteString("\n")
	sb.WriteString("}")

	return sb.String()
}

// EscapeLabel escapes special characters in a label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}

// UmlDotGraph generates a UML DOT graph from transition system info.
func UmlDotGraph(info *transitions.SystemInfo) string {
	return NewStateGraph(info).ToGraph(NewUmlDotGraphStyle())
}

// AcceptorDotGraph generates a UML DOT graph from acceptor info.
func AcceptorDotGraph(info *transitions.AcceptorInfo) string {
	return NewAcceptorGraph(info).ToGraph(NewUmlDotGraphStyle())
}
