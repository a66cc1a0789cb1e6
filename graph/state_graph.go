package graph

import (
	"fmt"
	"strings"

	"github.com/atlekbai/transitions"
)

// StateGraph generates a symbolic representation of the graph structure.
type StateGraph struct {
	// InitialState is the initial state of the machine.
	InitialState *State

	// States contains all states in alphabet order.
	States []*State

	// Transitions contains all transitions in registration order.
	Transitions []*Transition

	// Decisions contains all decision nodes in registration order.
	Decisions []*Decision

	byName map[string]*State
}

// NewStateGraph creates a new state graph from transition system info.
func NewStateGraph(info *transitions.SystemInfo) *StateGraph {
	sg := &StateGraph{byName: make(map[string]*State)}
	sg.addStates(info.States)
	sg.InitialState = sg.byName[info.Initial.Name]
	sg.addEdges(info.Edges)
	return sg
}

// NewAcceptorGraph creates a state graph from acceptor info. Every transition
// function part becomes a decision node reached through its input; every
// invalid input becomes a refused self edge.
func NewAcceptorGraph(info *transitions.AcceptorInfo) *StateGraph {
	sg := &StateGraph{byName: make(map[string]*State)}
	if info.System != nil {
		sg.addStates(info.System.States)
		sg.InitialState = sg.byName[info.System.Initial.Name]
		sg.addEdges(info.System.Edges)
	}

	for _, fn := range info.Functions {
		from := sg.ensureState(fn.State.Name)
		decide := &Decision{
			NodeName: fmt.Sprintf("Decision%d", len(sg.Decisions)+1),
			Method:   fn.Handler,
		}
		sg.Decisions = append(sg.Decisions, decide)

		trans := &Transition{
			Trigger:             fn.Input.Name,
			SourceNodeName:      from.NodeName,
			DestinationNodeName: decide.NodeName,
			Valid:               true,
		}
		sg.Transitions = append(sg.Transitions, trans)
		from.Leaving = append(from.Leaving, trans)
		decide.Arriving = append(decide.Arriving, trans)
	}

	for _, rejected := range info.InvalidInputs {
		state := sg.ensureState(rejected.State.Name)
		trans := &Transition{
			Trigger:             rejected.Input.Name,
			SourceNodeName:      state.NodeName,
			DestinationNodeName: state.NodeName,
		}
		if rejected.Handler.MethodName != "" {
			trans.Notes = []string{rejected.Handler.Description()}
		}
		sg.Transitions = append(sg.Transitions, trans)
		state.Leaving = append(state.Leaving, trans)
		state.Arriving = append(state.Arriving, trans)
	}

	return sg
}

// addStates adds one node per alphabet element.
func (sg *StateGraph) addStates(states []transitions.ElementInfo) {
	for _, el := range states {
		sg.ensureState(el.Name)
	}
}

func (sg *StateGraph) ensureState(name string) *State {
	if state, ok := sg.byName[name]; ok {
		return state
	}
	state := &State{StateName: name, NodeName: name}
	sg.byName[name] = state
	sg.States = append(sg.States, state)
	return state
}

// addEdges adds the registered edges of the transition graph.
func (sg *StateGraph) addEdges(edges []transitions.EdgeInfo) {
	for _, edge := range edges {
		from := sg.ensureState(edge.Start.Name)
		to := sg.ensureState(edge.Finish.Name)

		trans := &Transition{
			SourceNodeName:      from.NodeName,
			DestinationNodeName: to.NodeName,
			Valid:               edge.Valid,
			Undirected:          edge.Undirected,
		}
		if edge.Callback.MethodName != "" {
			if edge.Valid {
				trans.Actions = []string{edge.Callback.Description()}
			} else {
				trans.Notes = []string{edge.Callback.Description()}
			}
		}
		sg.Transitions = append(sg.Transitions, trans)
		from.Leaving = append(from.Leaving, trans)
		to.Arriving = append(to.Arriving, trans)
		if edge.Undirected {
			to.Leaving = append(to.Leaving, trans)
			from.Arriving = append(from.Arriving, trans)
		}
	}
}

// ToGraph converts the state graph to a string representation using the specified style.
func (sg *StateGraph) ToGraph(style Style) string {
	var sb strings.Builder

	sb.WriteString(style.GetPrefix())

	for _, state := range sg.States {
		sb.WriteString(style.FormatOneState(state))
	}

	for _, dec := range sg.Decisions {
		sb.WriteString(style.FormatOneDecisionNode(dec.NodeName, dec.Method.Description()))
	}

	lines := style.FormatAllTransitions(sg.Transitions)
	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}

	sb.WriteString(style.GetInitialTransition(sg.InitialState))

	return sb.String()
}
