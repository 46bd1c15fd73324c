package wasm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmruntime/wasmcore/api"
)

// newTestInterpreter returns an Interpreter with a single empty Instance at
// Addr 0, ready to exec bare instruction sequences against an empty Frame.
func newTestInterpreter() (*Interpreter, *Instance, *Frame) {
	instance := &Instance{}
	ip := NewInterpreter(NewStore(), []*Instance{instance}, NopHostEnv, 0, false)
	frame := &Frame{InstanceAddr: 0}
	return ip, instance, frame
}

func TestExecArithmeticWrapsOnOverflow(t *testing.T) {
	ip, instance, frame := newTestInterpreter()
	expr := Expr{
		{Op: OpI32Const, I32: math.MaxInt32},
		{Op: OpI32Const, I32: 1},
		{Op: OpI32Add},
	}
	state, trap := ip.Exec(expr, frame, 0)
	require.Nil(t, trap)
	require.Equal(t, ExecContinue, state.Kind)
	require.True(t, instance.Stack.PopValue().Equal(api.ValueI32(math.MinInt32)))
}

func TestExecI32DivSTrapsOnDivideByZero(t *testing.T) {
	ip, _, frame := newTestInterpreter()
	expr := Expr{
		{Op: OpI32Const, I32: 1},
		{Op: OpI32Const, I32: 0},
		{Op: OpI32DivS},
	}
	_, trap := ip.Exec(expr, frame, 0)
	require.ErrorIs(t, trap, ErrIntegerDivideByZero)
}

func TestExecI32DivSTrapsOnSignedOverflow(t *testing.T) {
	ip, _, frame := newTestInterpreter()
	expr := Expr{
		{Op: OpI32Const, I32: math.MinInt32},
		{Op: OpI32Const, I32: -1},
		{Op: OpI32DivS},
	}
	_, trap := ip.Exec(expr, frame, 0)
	require.ErrorIs(t, trap, ErrIntegerOverflow)
}

func TestExecI32RemSDoesNotTrapOnMinIntByMinusOne(t *testing.T) {
	ip, instance, frame := newTestInterpreter()
	expr := Expr{
		{Op: OpI32Const, I32: math.MinInt32},
		{Op: OpI32Const, I32: -1},
		{Op: OpI32RemS},
	}
	_, trap := ip.Exec(expr, frame, 0)
	require.Nil(t, trap)
	require.True(t, instance.Stack.PopValue().Equal(api.ValueI32(0)))
}

func TestExecI32DivUTreatsOperandsAsUnsigned(t *testing.T) {
	ip, instance, frame := newTestInterpreter()
	expr := Expr{
		{Op: OpI32Const, I32: -1}, // 0xffffffff as unsigned
		{Op: OpI32Const, I32: 2},
		{Op: OpI32DivU},
	}
	_, trap := ip.Exec(expr, frame, 0)
	require.Nil(t, trap)
	require.True(t, instance.Stack.PopValue().Equal(api.ValueI32(int32(uint32(0xffffffff)/2))))
}

func TestExecUnreachableTraps(t *testing.T) {
	ip, _, frame := newTestInterpreter()
	_, trap := ip.Exec(Expr{{Op: OpUnreachable}}, frame, 0)
	require.ErrorIs(t, trap, ErrUnreachable)
}

func TestExecBlockBranchOut(t *testing.T) {
	// (block (result i32) (i32.const 9) (br 0)) -- the const survives the
	// branch because the label's arity is 1.
	ip, instance, frame := newTestInterpreter()
	instance.Types = []FuncType{{Results: []api.ValueType{api.ValueTypeI32}}}
	expr := Expr{
		{Op: OpBlock, Block: BlockType{Kind: BlockKindTypeIdx, TypeIdx: 0}, Then: Expr{
			{Op: OpI32Const, I32: 9},
			{Op: OpBr, Index: 0},
			{Op: OpI32Const, I32: 404}, // unreachable after the branch
		}},
	}
	state, trap := ip.Exec(expr, frame, 0)
	require.Nil(t, trap)
	require.Equal(t, ExecContinue, state.Kind)
	require.Equal(t, 0, instance.Stack.LabelsLen())
	require.True(t, instance.Stack.PopValue().Equal(api.ValueI32(9)))
}

func TestExecLoopBreakZeroReenters(t *testing.T) {
	// A loop counting a local down from 3 to 0 via br_if 0. Each iteration
	// pushes an i32.const 1; a taken br_if 0 discards it (the loop label has
	// arity 0) and the final iteration drops its own, so the stack ends
	// empty. The local reaching 0 confirms the body ran three times.
	ip, instance, frame := newTestInterpreter()
	frame.Local = []api.Value{api.ValueI32(3)}
	expr := Expr{
		{Op: OpLoop, Then: Expr{
			{Op: OpI32Const, I32: 1},
			{Op: OpLocalGet, Index: 0},
			{Op: OpI32Const, I32: 1},
			{Op: OpI32Sub},
			{Op: OpLocalTee, Index: 0},
			{Op: OpBrIf, Index: 0},
			{Op: OpDrop},
		}},
	}
	state, trap := ip.Exec(expr, frame, 0)
	require.Nil(t, trap)
	require.Equal(t, ExecContinue, state.Kind)
	require.Equal(t, 0, instance.Stack.ValuesLen())
	require.True(t, frame.Local[0].Equal(api.ValueI32(0)))
}

func TestExecReturnShortCircuitsRemainingInstructions(t *testing.T) {
	// i32.const 5; return; i32.const 99 -- the const after the return must
	// never execute.
	ip, instance, frame := newTestInterpreter()
	expr := Expr{
		{Op: OpI32Const, I32: 5},
		{Op: OpReturn},
		{Op: OpI32Const, I32: 99},
	}
	state, trap := ip.Exec(expr, frame, 0)
	require.Nil(t, trap)
	require.Equal(t, ExecReturn, state.Kind)
	require.Equal(t, 1, instance.Stack.ValuesLen())
	require.True(t, instance.Stack.PopValue().Equal(api.ValueI32(5)))
}

func TestExecReturnUnwindsThroughNestedBlocksAndLoops(t *testing.T) {
	// A return from inside a loop nested in a block must propagate past
	// both constructs, popping their labels along the way, rather than
	// resuming after the block or re-entering the loop.
	ip, instance, frame := newTestInterpreter()
	expr := Expr{
		{Op: OpBlock, Block: BlockType{Kind: BlockKindEmpty}, Then: Expr{
			{Op: OpLoop, Block: BlockType{Kind: BlockKindEmpty}, Then: Expr{
				{Op: OpI32Const, I32: 7},
				{Op: OpReturn},
			}},
			{Op: OpI32Const, I32: 404}, // unreachable after the return
		}},
	}
	state, trap := ip.Exec(expr, frame, 0)
	require.Nil(t, trap)
	require.Equal(t, ExecReturn, state.Kind)
	require.Equal(t, 0, instance.Stack.LabelsLen())
	require.Equal(t, 1, instance.Stack.ValuesLen())
	require.True(t, instance.Stack.PopValue().Equal(api.ValueI32(7)))
}

func TestExecGlobalSetOnImmutableTraps(t *testing.T) {
	ip, instance, frame := newTestInterpreter()
	addr := ip.Store.AllocateGlobal(GlobalInst{Type: GlobalType{ValType: api.ValueTypeI32, Mut: MutConst}, Value: api.ValueI32(1)})
	instance.GlobalAddrs = []Addr{addr}
	expr := Expr{
		{Op: OpI32Const, I32: 2},
		{Op: OpGlobalSet, Index: 0},
	}
	_, trap := ip.Exec(expr, frame, 0)
	require.NotNil(t, trap)
}

func TestCallStackCeilingTraps(t *testing.T) {
	store := NewStore()
	instance := &Instance{}
	ft := FuncType{}
	selfCallAddr := store.AllocateFunc(&InnerFunc{Type: ft})
	store.Func(selfCallAddr).(*InnerFunc).Func = Func{Body: Expr{{Op: OpCall, Index: 0}}}
	instance.FuncAddrs = []Addr{selfCallAddr}
	ip := NewInterpreter(store, []*Instance{instance}, NopHostEnv, 8, false)
	frame := &Frame{InstanceAddr: 0}

	_, trap := ip.Exec(Expr{{Op: OpCall, Index: 0}}, frame, 0)
	require.ErrorIs(t, trap, ErrCallStackExhausted)
}

func TestCallHostFunction(t *testing.T) {
	store := NewStore()
	instance := &Instance{}
	hostAddr := store.AllocateFunc(&HostFunc{Type: FuncType{Params: []api.ValueType{api.ValueTypeI32}, Results: []api.ValueType{api.ValueTypeI32}}, Name: "double"})
	instance.FuncAddrs = []Addr{hostAddr}

	env := HostEnvFunc(func(name string, stack *Stack) {
		require.Equal(t, "double", name)
		v := stack.PopValue().I32()
		stack.PushValue(api.ValueI32(v * 2))
	})
	ip := NewInterpreter(store, []*Instance{instance}, env, 0, false)
	frame := &Frame{InstanceAddr: 0}

	_, trap := ip.Exec(Expr{{Op: OpI32Const, I32: 21}, {Op: OpCall, Index: 0}}, frame, 0)
	require.Nil(t, trap)
	require.True(t, instance.Stack.PopValue().Equal(api.ValueI32(42)))
}

func TestCallHostPanicRecovered(t *testing.T) {
	store := NewStore()
	instance := &Instance{}
	hostAddr := store.AllocateFunc(&HostFunc{Name: "boom"})
	instance.FuncAddrs = []Addr{hostAddr}

	env := HostEnvFunc(func(string, *Stack) { panic("kaboom") })
	ip := NewInterpreter(store, []*Instance{instance}, env, 0, true)
	frame := &Frame{InstanceAddr: 0}

	_, trap := ip.Exec(Expr{{Op: OpCall, Index: 0}}, frame, 0)
	require.ErrorIs(t, trap, ErrHostFunctionPanicked)
}
