package transitions

// Pair is an ordered pair of states.
type Pair[S comparable] struct {
	Start  S
	Finish S
}

// LongestPathsReport is the result of LongestPaths.
type LongestPathsReport[S comparable] struct {
	// PathCount is the number of simple paths over all ordered pairs.
	PathCount int
	// MaxLength is the length of the longest path, or -1 if there are none.
	MaxLength int
	// Paths holds every path of MaxLength.
	Paths [][]S
}

// MaximumPathsReport is the result of MaximumPaths.
type MaximumPathsReport[S comparable] struct {
	// Count is the greatest number of simple paths between an ordered pair.
	Count int
	// Pairs holds every pair with Count paths.
	Pairs []Pair[S]
}

// Labyrinth enumerates every simple path from start to finish over the valid
// edges. A path lists the states after start, ending with finish; a query
// with start equal to finish yields a single empty path. With shortest set,
// only the paths of minimal length are returned.
//
// The search is exhaustive and exponential in the branching factor.
func (ts *TransitionSystem[S]) Labyrinth(start, finish S, shortest bool) ([][]S, error) {
	key, err := ts.edgeKey(start, finish)
	if err != nil {
		return nil, err
	}
	return ts.labyrinth(key.start, key.finish, shortest), nil
}

func (ts *TransitionSystem[S]) labyrinth(start, finish int, shortest bool) [][]S {
	ts.digest.build(ts.valid)

	var solution [][]int
	visited := make([]bool, ts.states.Len())
	var path []int

	var walk func(from int)
	walk = func(from int) {
		if from == finish {
			solution = append(solution, append([]int(nil), path...))
			return
		}
		visited[from] = true
		for _, next := range ts.digest.following[from] {
			if visited[next] {
				continue
			}
			path = append(path, next)
			walk(next)
			path = path[:len(path)-1]
		}
		visited[from] = false
	}
	walk(start)

	minLength := -1
	for _, p := range solution {
		if minLength < 0 || len(p) < minLength {
			minLength = len(p)
		}
	}

	paths := make([][]S, 0, len(solution))
	for _, p := range solution {
		if shortest && len(p) != minLength {
			continue
		}
		paths = append(paths, ts.valuesOf(p))
	}
	return paths
}

// FindDeadEnds returns every state other than start that appears in none of
// allPaths, in alphabet order.
func (ts *TransitionSystem[S]) FindDeadEnds(start S, allPaths [][]S) ([]S, error) {
	first, err := ts.states.Find(start)
	if err != nil {
		return nil, err
	}
	found := make([]bool, ts.states.Len())
	found[first.index] = true
	for _, path := range allPaths {
		for _, state := range path {
			el, err := ts.states.Find(state)
			if err != nil {
				return nil, err
			}
			found[el.index] = true
		}
	}

	var deadEnds []S
	for i, seen := range found {
		if !seen {
			deadEnds = append(deadEnds, ts.states.At(i).value)
		}
	}
	return deadEnds, nil
}

// FindDeadEndsBetween enumerates all paths from start to finish and the
// states none of them visit.
func (ts *TransitionSystem[S]) FindDeadEndsBetween(start, finish S) ([][]S, []S, error) {
	allPaths, err := ts.Labyrinth(start, finish, false)
	if err != nil {
		return nil, nil, err
	}
	deadEnds, err := ts.FindDeadEnds(start, allPaths)
	if err != nil {
		return nil, nil, err
	}
	return allPaths, deadEnds, nil
}

// LongestPaths enumerates the paths between every ordered pair of states and
// reports the longest ones. The cost is quadratic in the alphabet size times
// the cost of Labyrinth.
func (ts *TransitionSystem[S]) LongestPaths() LongestPathsReport[S] {
	report := LongestPathsReport[S]{MaxLength: -1}
	n := ts.states.Len()
	for start := 0; start < n; start++ {
		for finish := 0; finish < n; finish++ {
			solution := ts.labyrinth(start, finish, false)
			report.PathCount += len(solution)
			for _, path := range solution {
				if len(path) < report.MaxLength {
					continue
				}
				if len(path) > report.MaxLength {
					report.Paths = nil
					report.MaxLength = len(path)
				}
				report.Paths = append(report.Paths, path)
			}
		}
	}
	return report
}

// MaximumPaths finds the ordered pairs of states connected by the greatest
// number of distinct simple paths.
func (ts *TransitionSystem[S]) MaximumPaths() MaximumPathsReport[S] {
	var report MaximumPathsReport[S]
	n := ts.states.Len()
	for start := 0; start < n; start++ {
		for finish := 0; finish < n; finish++ {
			count := len(ts.labyrinth(start, finish, false))
			if count < report.Count {
				continue
			}
			if count > report.Count {
				report.Pairs = nil
				report.Count = count
			}
			report.Pairs = append(report.Pairs, Pair[S]{
				Start:  ts.states.At(start).value,
				Finish: ts.states.At(finish).value,
			})
		}
	}
	return report
}

// Successors returns the states directly reachable from state over valid edges.
func (ts *TransitionSystem[S]) Successors(state S) ([]S, error) {
	el, err := ts.states.Find(state)
	if err != nil {
		return nil, err
	}
	ts.digest.build(ts.valid)
	return ts.valuesOf(ts.digest.following[el.index]), nil
}

// Terminals returns the states with no outgoing valid edge.
func (ts *TransitionSystem[S]) Terminals() []S {
	ts.digest.build(ts.valid)
	var terminals []S
	for i, following := range ts.digest.following {
		if len(following) == 0 {
			terminals = append(terminals, ts.states.At(i).value)
		}
	}
	return terminals
}

func (ts *TransitionSystem[S]) valuesOf(indexes []int) []S {
	values := make([]S, len(indexes))
	for i, idx := range indexes {
		values[i] = ts.states.At(idx).value
	}
	return values
}
