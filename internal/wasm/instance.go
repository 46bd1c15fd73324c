package wasm

import "github.com/wasmruntime/wasmcore/api"

// Instance is a module brought to life against a Store: its function and
// global addresses (resolved once, at new_instance time, for both locally
// defined and imported items), its type table (for block-type arity
// lookups), its export table, and its own operand/label Stack.
//
// An Instance's Stack is expected to be empty at the start and end of every
// top-level Runtime.Invoke; values left over mid-call-chain by a
// cross-instance Call are drained explicitly (see step's OpCall handling).
type Instance struct {
	FuncAddrs   []Addr
	GlobalAddrs []Addr
	Types       []FuncType
	Start       *Index
	Exports     []Export
	Stack       Stack
}

// BlockArity returns the number of values a block/loop/if of the given
// BlockType leaves behind on normal completion: 0 for Empty, 1 for Val, or
// the result arity of the referenced function type for TypeIdx.
func (i *Instance) BlockArity(bt BlockType) int {
	switch bt.Kind {
	case BlockKindEmpty:
		return 0
	case BlockKindVal:
		return 1
	case BlockKindTypeIdx:
		return len(i.Types[bt.TypeIdx].Results)
	}
	return 0
}

// ExportedFunc returns the function Addr exported under name, and false if
// no function export carries that name.
func (i *Instance) ExportedFunc(name string) (Addr, bool) {
	for _, e := range i.Exports {
		if e.Name == name && e.Desc.Kind == ExportKindFunc {
			return i.FuncAddrs[e.Desc.Index], true
		}
	}
	return 0, false
}

// ExportedGlobal returns the global Addr exported under name, and false if
// no global export carries that name.
func (i *Instance) ExportedGlobal(name string) (Addr, bool) {
	for _, e := range i.Exports {
		if e.Name == name && e.Desc.Kind == ExportKindGlobal {
			return i.GlobalAddrs[e.Desc.Index], true
		}
	}
	return 0, false
}

// Jump implements the branch-target unwind described in §4.6: it transfers
// the target label's arity worth of operands across the gap opened by
// branching l levels out, discarding everything else the branch skips
// past, label included.
//
//  1. label = the l-th label from the top (0 = innermost).
//  2. Pop label.N values into a buffer (the results the branch carries).
//  3. Pop values until the operand count returns to label.Offset,
//     discarding everything a block/loop left mid-stack.
//  4. Pop labels 0..=l inclusive — every label the branch passes through,
//     including its target.
//  5. Push the buffered values back, restoring their original order.
func (i *Instance) Jump(l int) {
	label := i.Stack.ThLabel(l)

	values := make([]api.Value, 0, label.N)
	for k := 0; k < label.N; k++ {
		values = append(values, i.Stack.PopValue())
	}

	for i.Stack.ValuesLen() > label.Offset {
		i.Stack.PopValue()
	}

	for k := 0; k <= l; k++ {
		i.Stack.PopLabel()
	}

	for k := len(values) - 1; k >= 0; k-- {
		i.Stack.PushValue(values[k])
	}
}
