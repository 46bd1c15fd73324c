package wasm

import "github.com/wasmruntime/wasmcore/api"

// Label is a control marker: the arity of the block/loop/if it belongs to,
// and the value-region length recorded when the label was pushed. Storing
// Offset lets jump truncate the value region without scanning for it.
type Label struct {
	N      int
	Offset int
}

// Frame is a single function activation: the instance whose globals and
// type table govern the call, and the function's locals (params followed
// by zero-initialized declared locals). Frames are not stored on Stack;
// they live on the Go call stack as exec/step recurse, the same way the
// reference implementation threads a &mut Frame through its recursive walk.
type Frame struct {
	InstanceAddr Addr
	Local        []api.Value
}

// Stack hosts the two logically-independent regions described in §4.1: an
// operand value region and a control-label region. (The third region named
// in the data model, activation frames, is realized as Go call frames
// rather than data here — see Frame.)
type Stack struct {
	values []api.Value
	labels []Label
}

// PushValue pushes an operand.
func (s *Stack) PushValue(v api.Value) { s.values = append(s.values, v) }

// PopValue pops and returns the top operand. Callers never pop an empty
// Stack for a module the core assumes is valid; see Invariant 2 in §3.
func (s *Stack) PopValue() api.Value {
	n := len(s.values) - 1
	v := s.values[n]
	s.values = s.values[:n]
	return v
}

// ValuesLen returns the current operand count.
func (s *Stack) ValuesLen() int { return len(s.values) }

// GetReturns drains every remaining operand, in order, for use as a
// function's (or invocation's) result list.
func (s *Stack) GetReturns() []api.Value {
	vs := s.values
	s.values = nil
	return vs
}

// PushLabel pushes a control label; it never touches the value region.
func (s *Stack) PushLabel(l Label) { s.labels = append(s.labels, l) }

// PopLabel pops the innermost control label.
func (s *Stack) PopLabel() Label {
	n := len(s.labels) - 1
	l := s.labels[n]
	s.labels = s.labels[:n]
	return l
}

// ThLabel peeks the l-th-from-top label without removing it; l=0 is the
// innermost active label.
func (s *Stack) ThLabel(l int) Label {
	return s.labels[len(s.labels)-1-l]
}

// LabelsLen returns the current count of active labels.
func (s *Stack) LabelsLen() int { return len(s.labels) }
