package transitions

// TransitionKind tells how the cursor was moved.
type TransitionKind int

const (
	// Direct is a move made by TryTransitionTo over a valid edge.
	Direct TransitionKind = iota
	// Signal is a move made through ApplyTransition, usually by an acceptor.
	Signal
	// Reset is an unconditional jump back to the initial state.
	Reset
)

func (k TransitionKind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Signal:
		return "signal"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition describes a completed cursor move.
type Transition[S comparable] struct {
	// Source is the state transitioned from.
	Source S

	// Destination is the state transitioned to.
	Destination S

	// Kind is the primitive that moved the cursor.
	Kind TransitionKind
}

// IsReentry returns true if the transition is the identity transition.
func (t Transition[S]) IsReentry() bool {
	return t.Source == t.Destination
}

// RejectReason classifies a refused TryTransitionTo.
type RejectReason int

const (
	// NotDefined means no record exists for the edge.
	NotDefined RejectReason = iota
	// Denied means the edge is registered as invalid.
	Denied
)

func (r RejectReason) String() string {
	if r == Denied {
		return "denied"
	}
	return "not_defined"
}

// Rejection describes a refused TryTransitionTo.
type Rejection[S comparable] struct {
	Source  S
	Target  S
	Reason  RejectReason
	Comment string
}

// Result is the outcome of a validity query or a transition attempt.
type Result struct {
	OK      bool
	Comment string
}

// Action is the success callback of a valid edge.
type Action[S comparable] func(start, finish S)

// Explain produces the reason an invalid edge is refused.
type Explain[S comparable] func(start, finish S) string

// edgeKey addresses a directed edge by element index.
type edgeKey struct {
	start, finish int
}

// record is the value stored for an edge. An undirected edge shares one
// record between both orientations.
type record[S comparable] struct {
	key        edgeKey
	valid      bool
	undirected bool
	action     Action[S]
	explain    Explain[S]
}
