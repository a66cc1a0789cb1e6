package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atlekbai/transitions"
)

// MermaidGraphDirection specifies the direction of the Mermaid graph.
type MermaidGraphDirection int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom MermaidGraphDirection = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

// ParseMermaidGraphDirection parses TB, BT, LR or RL.
func ParseMermaidGraphDirection(code string) (MermaidGraphDirection, error) {
	switch strings.ToUpper(code) {
	case "TB", "TD":
		return TopToBottom, nil
	case "BT":
		return BottomToTop, nil
	case "LR":
		return LeftToRight, nil
	case "RL":
		return RightToLeft, nil
	default:
		return TopToBottom, fmt.Errorf("unknown mermaid direction %q", code)
	}
}

// MermaidGraphStyle generates Mermaid state diagrams. Mermaid has no
// bidirectional arrow, so an undirected edge is drawn once per direction.
type MermaidGraphStyle struct {
	graph     *StateGraph
	direction *MermaidGraphDirection
	// aliases maps node names to sanitized names, in state order.
	aliases     map[string]string
	aliasOrder  []string
	initialized bool
}

// NewMermaidGraphStyle creates a new Mermaid graph style.
func NewMermaidGraphStyle(graph *StateGraph, direction *MermaidGraphDirection) *MermaidGraphStyle {
	return &MermaidGraphStyle{
		graph:     graph,
		direction: direction,
		aliases:   make(map[string]string),
	}
}

// GetPrefix returns the text that starts a new Mermaid graph.
func (s *MermaidGraphStyle) GetPrefix() string {
	s.buildSanitizedNamedStateMap()

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2")

	if s.direction != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("\tdirection %s", getDirectionCode(*s.direction)))
	}

	for _, nodeName := range s.aliasOrder {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("\t%s : %s", s.aliases[nodeName], nodeName))
	}

	return sb.String()
}

// FormatOneState formats a single state (Mermaid doesn't need explicit state definitions).
func (s *MermaidGraphStyle) FormatOneState(_ *State) string {
	return ""
}

// FormatOneDecisionNode formats a decision node.
func (s *MermaidGraphStyle) FormatOneDecisionNode(nodeName, _ string) string {
	return fmt.Sprintf("\n\tstate %s <<choice>>", nodeName)
}

// FormatAllTransitions formats all transitions.
func (s *MermaidGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *MermaidGraphStyle) FormatOneTransition(transit *Transition) string {
	label := transitionLabel(transit)
	if !transit.Valid {
		label = strings.TrimSpace("denied " + label)
	}

	source := s.getSanitizedStateName(transit.SourceNodeName)
	dest := s.getSanitizedStateName(transit.DestinationNodeName)

	line := formatMermaidLine(source, dest, label)
	if transit.Undirected {
		line += "\n" + formatMermaidLine(dest, source, label)
	}
	return line
}

func formatMermaidLine(source, dest, label string) string {
	if label == "" {
		return fmt.Sprintf("\t%s --> %s", source, dest)
	}
	return fmt.Sprintf("\t%s --> %s : %s", source, dest, label)
}

// GetInitialTransition returns the text for the initial state transition.
func (s *MermaidGraphStyle) GetInitialTransition(initialState *State) string {
	if initialState == nil {
		return ""
	}
	return fmt.Sprintf("\n[*] --> %s", s.getSanitizedStateName(initialState.NodeName))
}

// buildSanitizedNamedStateMap assigns a unique sanitized alias to every
// state whose name Mermaid cannot use as is.
func (s *MermaidGraphStyle) buildSanitizedNamedStateMap() {
	if s.initialized {
		return
	}

	taken := make(map[string]bool, len(s.graph.States))
	for _, state := range s.graph.States {
		taken[state.NodeName] = true
	}

	for _, state := range s.graph.States {
		sanitizedName := sanitizeStateName(state.NodeName)
		if sanitizedName == state.NodeName {
			continue
		}
		count := 1
		tempName := sanitizedName
		for taken[tempName] {
			tempName = fmt.Sprintf("%s_%d", sanitizedName, count)
			count++
		}
		taken[tempName] = true
		s.aliases[state.NodeName] = tempName
		s.aliasOrder = append(s.aliasOrder, state.NodeName)
	}

	s.initialized = true
}

// getSanitizedStateName returns the sanitized name for a node.
func (s *MermaidGraphStyle) getSanitizedStateName(nodeName string) string {
	if alias, ok := s.aliases[nodeName]; ok {
		return alias
	}
	return nodeName
}

// sanitizeStateName removes characters that would cause invalid Mermaid graphs.
func sanitizeStateName(name string) string {
	var result strings.Builder
	for _, c := range name {
		if !unicode.IsSpace(c) && c != ':' && c != '-' {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// getDirectionCode returns the Mermaid direction code.
func getDirectionCode(direction MermaidGraphDirection) string {
	switch direction {
	case TopToBottom:
		return "TB"
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// MermaidGraph generates a Mermaid graph from transition system info.
func MermaidGraph(info *transitions.SystemInfo, direction *MermaidGraphDirection) string {
	graph := NewStateGraph(info)
	return graph.ToGraph(NewMermaidGraphStyle(graph, direction))
}

// AcceptorMermaidGraph generates a Mermaid graph from acceptor info.
func AcceptorMermaidGraph(info *transitions.AcceptorInfo, direction *MermaidGraphDirection) string {
	graph := NewAcceptorGraph(info)
	return graph.ToGraph(NewMermaidGraphStyle(graph, direction))
}
