// Package graph provides visualization utilities for transition systems and acceptors.
package graph

import (
	"github.com/atlekbai/transitions"
)

// State represents a state in the graph.
type State struct {
	// StateName is the display name of the state.
	StateName string

	// NodeName is the name used for the node in the graph.
	NodeName string

	// Leaving are the transitions leaving this state.
	Leaving []*Transition

	// Arriving are the transitions arriving at this state.
	Arriving []*Transition
}

// Decision represents a transition function part whose destination is
// computed at signal time.
type Decision struct {
	// NodeName is the name of the decision node.
	NodeName string

	// Method contains information about the transition function handler.
	Method transitions.InvocationInfo

	// Arriving are the transitions arriving at this decision node.
	Arriving []*Transition
}

// Transition represents an edge in the graph.
type Transition struct {
	// Trigger is the input that causes this transition. It is empty for
	// edges of the transition graph itself.
	Trigger string

	// SourceNodeName is the node the edge leaves.
	SourceNodeName string

	// DestinationNodeName is the node the edge reaches; a state or a decision node.
	DestinationNodeName string

	// Actions are the success callbacks run when the edge is taken.
	Actions []string

	// Notes are the explanations attached to a refused edge.
	Notes []string

	// Valid is false for edges that exist only to refuse a move.
	Valid bool

	// Undirected edges may be taken in both directions.
	Undirected bool
}
