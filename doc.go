// Package transitions provides a generic engine for finite transition systems.
//
// A transition system is a directed graph over a finite alphabet of states
// with a cursor marking the current state. On top of it the package layers:
//
//   - Valid and invalid edges with success callbacks and explanations
//   - Undirected edges stored once and matched in both orientations
//   - Exhaustive simple-path enumeration and reachability reports
//   - Acceptors driven by an input alphabet and a transition function
//   - Moore and Mealy transducers with an output alphabet
//   - Introspection and graph generation
//
// # Basic Usage
//
// Create a transition system over a state alphabet:
//
//	ts, err := transitions.New(transitions.Named(Opened, Closed, Locked),
//	    transitions.WithInitial(Closed))
//
// Register edges:
//
//	ts.AddValidTransition(Closed, Opened, nil, true)
//	ts.AddInvalidTransition(Locked, Opened, func(_, _ Door) string {
//	    return "unlock the door first"
//	})
//
// Move the cursor:
//
//	res, err := ts.TryTransitionTo(Opened)
//
// # Path Queries
//
// Enumerate every simple path between two states:
//
//	paths, err := ts.Labyrinth(Closed, Locked, false)
//
// # Acceptors and Transducers
//
// Feed inputs through a transition function:
//
//	acc, err := transitions.NewAcceptor[Door](ts, transitions.Named(Push, Pull))
//	acc.AddTransitionFunctionPart(Push, Closed, func(Door, Gesture) Door { return Opened })
//	res, err := acc.TransitionSignal(Push)
//
// # Graph Generation
//
// Export to DOT or Mermaid format:
//
//	import "github.com/atlekbai/transitions/graph"
//	dot := graph.UmlDotGraph(ts.Info())
package transitions
