package wasm

import (
	"math"

	"github.com/wasmruntime/wasmcore/api"
)

// ExecKind distinguishes the three ways running a sequence of instructions
// can end, mirroring the reference's Continue | Breaking | Return sum type:
// it ran to the end of the sequence normally (Continue); a Br/BrIf/BrTable
// is unwinding toward an enclosing label (Breaking); or an explicit Return
// was executed and must unwind all the way to the call site (Return),
// skipping every remaining instruction in every enclosing block and loop
// along the way. See Exec and the Block/Loop arms of step.
type ExecKind byte

const (
	// ExecContinue means the instruction sequence ran to its end without
	// branching or returning. A Block/If absorbs this (pops its label,
	// falls through to the next instruction); a Loop ends on it and
	// propagates it outward unchanged.
	ExecContinue ExecKind = iota
	// ExecBreaking means a Br/BrIf/BrTable is unwinding toward the label
	// Depth levels out from the construct currently handling it.
	ExecBreaking
	// ExecReturn means an explicit Return was executed: every enclosing
	// Block, If, and Loop propagates it unchanged, and Exec stops running
	// further instructions in any sequence it is threaded through.
	ExecReturn
)

// ExecState is the result of running a sequence of instructions, or a
// single one. Depth is only meaningful when Kind is ExecBreaking.
type ExecState struct {
	Kind  ExecKind
	Depth int
}

var (
	stateContinue = ExecState{Kind: ExecContinue}
	stateReturn   = ExecState{Kind: ExecReturn}
)

func breaking(depth int) ExecState { return ExecState{Kind: ExecBreaking, Depth: depth} }

// Interpreter runs function bodies against a fixed Store and the set of
// Instances allocated against it. It holds no per-call state of its own;
// Frame carries that across the recursive exec/step walk, the same
// division of responsibility as the reference implementation this core is
// modeled on (original_source/src/exec/runtime.rs).
type Interpreter struct {
	Store            *Store
	Instances        []*Instance
	Env              HostEnv
	CallStackCeiling int
	RecoverPanic     bool
}

// NewInterpreter returns an Interpreter over store and instances, calling
// into env for host-resolved imports. A CallStackCeiling of 0 means
// unbounded (no depth check is performed).
func NewInterpreter(store *Store, instances []*Instance, env HostEnv, callStackCeiling int, recoverPanic bool) *Interpreter {
	return &Interpreter{
		Store:            store,
		Instances:        instances,
		Env:              env,
		CallStackCeiling: callStackCeiling,
		RecoverPanic:     recoverPanic,
	}
}

// Exec runs instrs in order against frame, returning once either the
// sequence is exhausted (ExecContinue), an instruction triggers a branch
// that does not resolve within instrs (ExecBreaking), an explicit Return is
// executed (ExecReturn, which short-circuits immediately rather than
// running any further instructions), or a Trap is raised.
func (ip *Interpreter) Exec(instrs Expr, frame *Frame, depth int) (ExecState, *Trap) {
	for _, instr := range instrs {
		state, trap := ip.step(instr, frame, depth)
		if trap != nil {
			return ExecState{}, trap
		}
		if state.Kind != ExecContinue {
			return state, nil
		}
	}
	return stateContinue, nil
}

// step executes a single instruction against frame, mutating the owning
// Instance's Stack (and, for Call, recursing into Exec for the callee
// body). The Op switch is the heart of the engine: every opcode the core
// implements has an arm here.
func (ip *Interpreter) step(instr Instr, frame *Frame, depth int) (ExecState, *Trap) {
	instance := ip.Instances[frame.InstanceAddr]

	switch instr.Op {
	case OpUnreachable:
		return ExecState{}, NewTrap(TrapUnreachable)
	case OpNop:
		// no-op

	case OpBlock, OpIf:
		taken := instr.Then
		if instr.Op == OpIf {
			cond := instance.Stack.PopValue().I32()
			if cond == 0 {
				taken = instr.Else // nil Else behaves as an empty body
			}
		}
		instance.Stack.PushLabel(Label{N: instance.BlockArity(instr.Block), Offset: instance.Stack.ValuesLen()})
		state, trap := ip.Exec(taken, frame, depth)
		if trap != nil {
			return ExecState{}, trap
		}
		switch {
		case state.Kind == ExecBreaking && state.Depth > 0:
			return breaking(state.Depth - 1), nil
		case state.Kind == ExecBreaking:
			// Breaking(0): Jump (invoked by the Br/BrIf/BrTable that
			// produced this state) already popped this label; nothing
			// further to do before resuming after the block.
		case state.Kind == ExecReturn:
			// An explicit Return unwinds straight to the call site: this
			// label was never touched by a Jump, so pop it here, then
			// propagate unchanged instead of resuming after the block.
			instance.Stack.PopLabel()
			return state, nil
		default:
			// ExecContinue: the body ran off its end without branching or
			// returning. This label was never popped by a Jump, so pop it
			// here before resuming after the block.
			instance.Stack.PopLabel()
		}

	case OpLoop:
		for {
			instance.Stack.PushLabel(Label{N: instance.BlockArity(instr.Block), Offset: instance.Stack.ValuesLen()})
			state, trap := ip.Exec(instr.Then, frame, depth)
			if trap != nil {
				return ExecState{}, trap
			}
			switch {
			case state.Kind == ExecBreaking && state.Depth > 0:
				return breaking(state.Depth - 1), nil
			case state.Kind == ExecBreaking:
				// Breaking(0) targets the loop itself: Jump already popped
				// this label; re-enter from the top with a fresh one, per
				// §4.6.
				continue
			case state.Kind == ExecReturn:
				instance.Stack.PopLabel()
				return state, nil
			default:
				// ExecContinue propagates out of Loop unchanged, unlike
				// Block: a loop body that completes without branching ends
				// the loop and hands control to whatever is running the
				// sequence that contains it.
				instance.Stack.PopLabel()
				return state, nil
			}
		}

	case OpBr:
		instance.Jump(int(instr.Index))
		return breaking(int(instr.Index)), nil

	case OpBrIf:
		cond := instance.Stack.PopValue().I32()
		if cond != 0 {
			instance.Jump(int(instr.Index))
			return breaking(int(instr.Index)), nil
		}

	case OpBrTable:
		i := instance.Stack.PopValue().I32()
		target := instr.Default
		if i >= 0 && int(i) < len(instr.Indexes) {
			target = instr.Indexes[i]
		}
		instance.Jump(int(target))
		return breaking(int(target)), nil

	case OpReturn:
		return stateReturn, nil

	case OpCall:
		return ip.call(instance, frame, int(instr.Index), depth)

	case OpDrop:
		instance.Stack.PopValue()

	case OpSelect:
		cond := instance.Stack.PopValue().I32()
		b := instance.Stack.PopValue()
		a := instance.Stack.PopValue()
		if cond != 0 {
			instance.Stack.PushValue(a)
		} else {
			instance.Stack.PushValue(b)
		}

	case OpLocalGet:
		instance.Stack.PushValue(frame.Local[instr.Index])
	case OpLocalSet:
		frame.Local[instr.Index] = instance.Stack.PopValue()
	case OpLocalTee:
		v := instance.Stack.PopValue()
		frame.Local[instr.Index] = v
		instance.Stack.PushValue(v)

	case OpGlobalGet:
		addr := instance.GlobalAddrs[instr.Index]
		instance.Stack.PushValue(ip.Store.Global(addr).Value)
	case OpGlobalSet:
		v := instance.Stack.PopValue()
		addr := instance.GlobalAddrs[instr.Index]
		global := ip.Store.Global(addr)
		if global.Type.Mut != MutVar {
			// Resolves Open Question 2: a validator would reject this
			// statically; the core still checks dynamically and traps
			// rather than silently mutating an immutable global.
			return ExecState{}, NewTrapf(TrapNotImplemented, "global.set on immutable global")
		}
		ip.Store.SetGlobal(addr, v)

	case OpI32Const:
		instance.Stack.PushValue(api.ValueI32(instr.I32))
	case OpI64Const:
		instance.Stack.PushValue(api.ValueI64(instr.I64))
	case OpF32Const:
		instance.Stack.PushValue(api.ValueF32(instr.F32))
	case OpF64Const:
		instance.Stack.PushValue(api.ValueF64(instr.F64))

	case OpI32Eqz:
		pushBool(instance, instance.Stack.PopValue().I32() == 0)
	case OpI32Eq, OpI32Ne, OpI32LtS, OpI32LtU, OpI32GtS, OpI32GtU, OpI32LeS, OpI32LeU, OpI32GeS, OpI32GeU:
		rhs := instance.Stack.PopValue().I32()
		lhs := instance.Stack.PopValue().I32()
		pushBool(instance, i32Compare(instr.Op, lhs, rhs))
	case OpI32Add, OpI32Sub, OpI32Mul, OpI32And, OpI32Or, OpI32Xor, OpI32Shl, OpI32ShrS, OpI32ShrU:
		rhs := instance.Stack.PopValue().I32()
		lhs := instance.Stack.PopValue().I32()
		instance.Stack.PushValue(api.ValueI32(i32Arith(instr.Op, lhs, rhs)))
	case OpI32DivS:
		rhs := instance.Stack.PopValue().I32()
		lhs := instance.Stack.PopValue().I32()
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		if lhs == math.MinInt32 && rhs == -1 {
			return ExecState{}, NewTrap(TrapIntegerOverflow)
		}
		instance.Stack.PushValue(api.ValueI32(lhs / rhs))
	case OpI32DivU:
		rhs := uint32(instance.Stack.PopValue().I32())
		lhs := uint32(instance.Stack.PopValue().I32())
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		instance.Stack.PushValue(api.ValueI32(int32(lhs / rhs)))
	case OpI32RemS:
		rhs := instance.Stack.PopValue().I32()
		lhs := instance.Stack.PopValue().I32()
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		instance.Stack.PushValue(api.ValueI32(lhs % rhs))
	case OpI32RemU:
		rhs := uint32(instance.Stack.PopValue().I32())
		lhs := uint32(instance.Stack.PopValue().I32())
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		instance.Stack.PushValue(api.ValueI32(int32(lhs % rhs)))

	case OpI64Eqz:
		pushBool(instance, instance.Stack.PopValue().I64() == 0)
	case OpI64Eq, OpI64Ne, OpI64LtS, OpI64LtU, OpI64GtS, OpI64GtU, OpI64LeS, OpI64LeU, OpI64GeS, OpI64GeU:
		rhs := instance.Stack.PopValue().I64()
		lhs := instance.Stack.PopValue().I64()
		pushBool(instance, i64Compare(instr.Op, lhs, rhs))
	case OpI64Add, OpI64Sub, OpI64Mul, OpI64And, OpI64Or, OpI64Xor, OpI64Shl, OpI64ShrS, OpI64ShrU:
		rhs := instance.Stack.PopValue().I64()
		lhs := instance.Stack.PopValue().I64()
		instance.Stack.PushValue(api.ValueI64(i64Arith(instr.Op, lhs, rhs)))
	case OpI64DivS:
		rhs := instance.Stack.PopValue().I64()
		lhs := instance.Stack.PopValue().I64()
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return ExecState{}, NewTrap(TrapIntegerOverflow)
		}
		instance.Stack.PushValue(api.ValueI64(lhs / rhs))
	case OpI64DivU:
		rhs := uint64(instance.Stack.PopValue().I64())
		lhs := uint64(instance.Stack.PopValue().I64())
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		instance.Stack.PushValue(api.ValueI64(int64(lhs / rhs)))
	case OpI64RemS:
		rhs := instance.Stack.PopValue().I64()
		lhs := instance.Stack.PopValue().I64()
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		instance.Stack.PushValue(api.ValueI64(lhs % rhs))
	case OpI64RemU:
		rhs := uint64(instance.Stack.PopValue().I64())
		lhs := uint64(instance.Stack.PopValue().I64())
		if rhs == 0 {
			return ExecState{}, NewTrap(TrapIntegerDivideByZero)
		}
		instance.Stack.PushValue(api.ValueI64(int64(lhs % rhs)))

	case OpF32Add, OpF32Sub, OpF32Mul, OpF32Div:
		rhs := instance.Stack.PopValue().F32()
		lhs := instance.Stack.PopValue().F32()
		instance.Stack.PushValue(api.ValueF32(f32Arith(instr.Op, lhs, rhs)))
	case OpF64Add, OpF64Sub, OpF64Mul, OpF64Div:
		rhs := instance.Stack.PopValue().F64()
		lhs := instance.Stack.PopValue().F64()
		instance.Stack.PushValue(api.ValueF64(f64Arith(instr.Op, lhs, rhs)))

	default:
		return ExecState{}, NewTrap(TrapNotImplemented)
	}

	return stateContinue, nil
}

// call implements the OpCall arm: resolving the callee (host or
// module-defined), transferring parameters, recursing into the callee
// body, and — for a cross-instance call — draining the callee's leftover
// operand stack back onto the caller's.
func (ip *Interpreter) call(caller *Instance, frame *Frame, index int, depth int) (ExecState, *Trap) {
	addr := caller.FuncAddrs[index]
	inst := ip.Store.Func(addr)

	switch fn := inst.(type) {
	case *HostFunc:
		if trap := ip.callHost(fn, &caller.Stack); trap != nil {
			return ExecState{}, trap
		}
		return stateContinue, nil

	case *InnerFunc:
		if ip.CallStackCeiling > 0 && depth+1 > ip.CallStackCeiling {
			return ExecState{}, NewTrap(TrapCallStackExhausted)
		}

		n := len(fn.Type.Params)
		params := make([]api.Value, n)
		for k := n - 1; k >= 0; k-- {
			params[k] = caller.Stack.PopValue()
		}
		locals := append(params, zeroValues(fn.Func.Locals)...)

		newFrame := &Frame{InstanceAddr: fn.InstanceAddr, Local: locals}
		if _, trap := ip.Exec(fn.Func.Body, newFrame, depth+1); trap != nil {
			return ExecState{}, trap
		}

		if newFrame.InstanceAddr != frame.InstanceAddr {
			callee := ip.Instances[newFrame.InstanceAddr]
			for _, v := range callee.Stack.GetReturns() {
				caller.Stack.PushValue(v)
			}
		}
		return stateContinue, nil
	}

	return ExecState{}, NewTrap(TrapNotImplemented)
}

// InvokeFunc runs the function at addr from outside any instruction
// stream — the entry point Runtime.Invoke and Runtime.Start use, as
// opposed to step's OpCall arm which runs a call from inside one. Unlike a
// nested Call, there is no caller Stack to push results onto; the callee's
// own leftover operands become the return values directly.
func (ip *Interpreter) InvokeFunc(addr Addr, args []api.Value) ([]api.Value, *Trap) {
	switch fn := ip.Store.Func(addr).(type) {
	case *HostFunc:
		var stack Stack
		for _, a := range args {
			stack.PushValue(a)
		}
		if trap := ip.callHost(fn, &stack); trap != nil {
			return nil, trap
		}
		return stack.GetReturns(), nil

	case *InnerFunc:
		locals := append(append([]api.Value{}, args...), zeroValues(fn.Func.Locals)...)
		frame := &Frame{InstanceAddr: fn.InstanceAddr, Local: locals}
		if _, trap := ip.Exec(fn.Func.Body, frame, 0); trap != nil {
			return nil, trap
		}
		callee := ip.Instances[fn.InstanceAddr]
		return callee.Stack.GetReturns(), nil
	}
	return nil, NewTrap(TrapNotImplemented)
}

// callHost dispatches to a host function through Env, recovering from a
// panicking host implementation into a TrapHostFunctionPanicked when
// RecoverPanic is set (per SPEC_FULL.md §4.8), and letting the panic
// propagate otherwise so a misbehaving host is visible during development.
func (ip *Interpreter) callHost(fn *HostFunc, stack *Stack) (trap *Trap) {
	if ip.RecoverPanic {
		defer func() {
			if r := recover(); r != nil {
				trap = NewTrapf(TrapHostFunctionPanicked, panicDetail(r))
			}
		}()
	}
	ip.Env.Call(fn.Name, stack)
	return nil
}

func panicDetail(r interface{}) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "recovered panic"
}

// zeroValues returns the zero-initialized locals a function frame appends
// after its parameters, one per declared local type.
func zeroValues(types []api.ValueType) []api.Value {
	vs := make([]api.Value, len(types))
	for i, t := range types {
		vs[i] = zeroValue(t)
	}
	return vs
}

func zeroValue(t api.ValueType) api.Value {
	switch t {
	case api.ValueTypeI32:
		return api.ValueI32(0)
	case api.ValueTypeI64:
		return api.ValueI64(0)
	case api.ValueTypeF32:
		return api.ValueF32(0)
	case api.ValueTypeF64:
		return api.ValueF64(0)
	case api.ValueTypeFuncref:
		return api.ValueFuncref(nil)
	case api.ValueTypeExternref:
		return api.ValueExternref(nil)
	}
	return api.Value{}
}

func pushBool(instance *Instance, b bool) {
	if b {
		instance.Stack.PushValue(api.ValueI32(1))
	} else {
		instance.Stack.PushValue(api.ValueI32(0))
	}
}
