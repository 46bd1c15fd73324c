package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmruntime/wasmcore/api"
)

func TestInstanceBlockArity(t *testing.T) {
	i := &Instance{Types: []FuncType{{Results: []api.ValueType{api.ValueTypeI32, api.ValueTypeI64}}}}

	require.Equal(t, 0, i.BlockArity(BlockType{Kind: BlockKindEmpty}))
	require.Equal(t, 1, i.BlockArity(BlockType{Kind: BlockKindVal, Val: api.ValueTypeI32}))
	require.Equal(t, 2, i.BlockArity(BlockType{Kind: BlockKindTypeIdx, TypeIdx: 0}))
}

func TestInstanceJumpTransfersArityAndDiscards(t *testing.T) {
	i := &Instance{}

	i.Stack.PushValue(api.ValueI32(100)) // sits below the label, stays
	i.Stack.PushLabel(Label{N: 1, Offset: i.Stack.ValuesLen()})
	i.Stack.PushValue(api.ValueI32(7)) // mid-stack junk a branch discards
	i.Stack.PushValue(api.ValueI32(42)) // the label's one carried result

	i.Jump(0)

	require.Equal(t, 0, i.Stack.LabelsLen())
	require.Equal(t, 2, i.Stack.ValuesLen())
	require.True(t, i.Stack.PopValue().Equal(api.ValueI32(42)))
	require.True(t, i.Stack.PopValue().Equal(api.ValueI32(100)))
}

func TestInstanceJumpMultiLevelPopsEveryLabelThrough(t *testing.T) {
	i := &Instance{}
	i.Stack.PushLabel(Label{N: 0, Offset: 0})
	i.Stack.PushLabel(Label{N: 0, Offset: 0})
	i.Stack.PushLabel(Label{N: 0, Offset: 0})

	i.Jump(2)

	require.Equal(t, 0, i.Stack.LabelsLen())
}

func TestInstanceExportedFunc(t *testing.T) {
	i := &Instance{
		FuncAddrs: []Addr{10, 20},
		Exports: []Export{
			{Name: "main", Desc: ExportDesc{Kind: ExportKindFunc, Index: 1}},
		},
	}

	addr, ok := i.ExportedFunc("main")
	require.True(t, ok)
	require.Equal(t, 20, addr)

	_, ok = i.ExportedFunc("missing")
	require.False(t, ok)
}
