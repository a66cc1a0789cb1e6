package transitions

import (
	"reflect"
	"runtime"
	"strings"
)

// InvocationInfo describes a registered callback.
type InvocationInfo struct {
	// MethodName is the name of the function as reported by the runtime.
	MethodName string
}

// DefaultFunctionDescription is the text returned for compiler-generated
// functions such as closures.
var DefaultFunctionDescription = "Function"

// NullString is the string representation of a missing callback.
const NullString = "<null>"

// CreateInvocationInfo creates InvocationInfo from a function value.
func CreateInvocationInfo(fn any) InvocationInfo {
	return InvocationInfo{MethodName: getFunctionName(fn)}
}

// Description returns the method name, DefaultFunctionDescription for
// anonymous functions, or NullString when there is no callback.
func (i InvocationInfo) Description() string {
	if i.MethodName == "" {
		return NullString
	}
	// Check for anonymous/compiler-generated function names
	if strings.Contains(i.MethodName, ".func") {
		return DefaultFunctionDescription
	}
	if idx := strings.LastIndex(i.MethodName, "."); idx >= 0 {
		return i.MethodName[idx+1:]
	}
	return i.MethodName
}

// getFunctionName returns the name of a function.
func getFunctionName(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	name := runtime.FuncForPC(v.Pointer()).Name()
	// Extract just the function name from the full path
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// ElementInfo describes one alphabet member.
type ElementInfo struct {
	Name  string
	Value any
}

// EdgeInfo describes one registered edge of the transition graph.
type EdgeInfo struct {
	Start      ElementInfo
	Finish     ElementInfo
	Valid      bool
	Undirected bool
	// Callback is the success callback of a valid edge or the explanation of
	// an invalid one.
	Callback InvocationInfo
}

// SystemInfo exposes the states and edges of a transition system.
type SystemInfo struct {
	Name    string
	Initial ElementInfo
	Current ElementInfo
	States  []ElementInfo
	// Edges are listed in registration order; an undirected edge appears once.
	Edges     []EdgeInfo
	StateType string
}

// FunctionInfo describes one transition function part or one invalid-input entry.
type FunctionInfo struct {
	Input   ElementInfo
	State   ElementInfo
	Handler InvocationInfo
}

// AcceptorInfo exposes the transition function of an acceptor.
type AcceptorInfo struct {
	System        *SystemInfo
	Inputs        []ElementInfo
	Functions     []FunctionInfo
	InvalidInputs []FunctionInfo
	InputType     string
}

// OutputFunctionInfo describes one output function part.
type OutputFunctionInfo struct {
	FunctionInfo
	Kind MachineType
}

// TransducerInfo exposes the output function of a transducer.
type TransducerInfo struct {
	Acceptor        *AcceptorInfo
	Outputs         []ElementInfo
	OutputFunctions []OutputFunctionInfo
	OutputType      string
}

func elementInfo[T comparable](e *Element[T]) ElementInfo {
	return ElementInfo{Name: e.name, Value: e.value}
}

func alphabetInfo[T comparable](a *Alphabet[T]) []ElementInfo {
	infos := make([]ElementInfo, len(a.elements))
	for i, e := range a.elements {
		infos[i] = elementInfo(e)
	}
	return infos
}

// Info returns a snapshot of the transition system for introspection.
func (ts *TransitionSystem[S]) Info() *SystemInfo {
	info := &SystemInfo{
		Name:      ts.name,
		Initial:   elementInfo(ts.states.At(ts.initial)),
		Current:   elementInfo(ts.states.At(ts.current)),
		States:    alphabetInfo(ts.states),
		Edges:     make([]EdgeInfo, 0, len(ts.records)),
		StateType: reflect.TypeOf((*S)(nil)).Elem().String(),
	}
	for _, rec := range ts.records {
		edge := EdgeInfo{
			Start:      elementInfo(ts.states.At(rec.key.start)),
			Finish:     elementInfo(ts.states.At(rec.key.finish)),
			Valid:      rec.valid,
			Undirected: rec.undirected,
		}
		if rec.valid {
			edge.Callback = CreateInvocationInfo(rec.action)
		} else {
			edge.Callback = CreateInvocationInfo(rec.explain)
		}
		info.Edges = append(info.Edges, edge)
	}
	return info
}

// Info returns a snapshot of the acceptor for introspection. System is nil
// when the core is not a *TransitionSystem.
func (a *Acceptor[S, I]) Info() *AcceptorInfo {
	info := &AcceptorInfo{
		Inputs:    alphabetInfo(a.inputs),
		InputType: reflect.TypeOf((*I)(nil)).Elem().String(),
	}
	if ts, ok := a.core.(*TransitionSystem[S]); ok {
		info.System = ts.Info()
	}
	states := a.core.States()
	for _, part := range a.functionOrder {
		info.Functions = append(info.Functions, FunctionInfo{
			Input:   elementInfo(a.inputs.At(part.key.input)),
			State:   elementInfo(states.At(part.key.state)),
			Handler: CreateInvocationInfo(part.handler),
		})
	}
	for _, rejection := range a.rejectOrder {
		info.InvalidInputs = append(info.InvalidInputs, FunctionInfo{
			Input:   elementInfo(a.inputs.At(rejection.key.input)),
			State:   elementInfo(states.At(rejection.key.state)),
			Handler: CreateInvocationInfo(rejection.explain),
		})
	}
	return info
}

// Info returns a snapshot of the transducer for introspection.
func (t *Transducer[S, I, O]) Info() *TransducerInfo {
	info := &TransducerInfo{
		Acceptor:   t.acceptor.Info(),
		Outputs:    alphabetInfo(t.outputs),
		OutputType: reflect.TypeOf((*O)(nil)).Elem().String(),
	}
	states := t.acceptor.core.States()
	for _, part := range t.partOrder {
		var handler any = part.fn.moore
		if part.fn.kind == MealyMachine {
			handler = part.fn.mealy
		}
		info.OutputFunctions = append(info.OutputFunctions, OutputFunctionInfo{
			FunctionInfo: FunctionInfo{
				Input:   elementInfo(t.acceptor.inputs.At(part.key.input)),
				State:   elementInfo(states.At(part.key.state)),
				Handler: CreateInvocationInfo(handler),
			},
			Kind: part.fn.kind,
		})
	}
	return info
}
