package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmruntime/wasmcore/api"
)

func TestEvalConstAcceptsSingleNumericConst(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want api.Value
	}{
		{"i32", Expr{{Op: OpI32Const, I32: 7}}, api.ValueI32(7)},
		{"i64", Expr{{Op: OpI64Const, I64: -9}}, api.ValueI64(-9)},
		{"f32", Expr{{Op: OpF32Const, F32: 1.5}}, api.ValueF32(1.5)},
		{"f64", Expr{{Op: OpF64Const, F64: 2.5}}, api.ValueF64(2.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvalConst(tt.expr)
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want))
		})
	}
}

func TestEvalConstRejectsNonConst(t *testing.T) {
	_, err := EvalConst(Expr{{Op: OpGlobalGet, Index: 0}})
	require.ErrorIs(t, err, ErrConstantExpression)
}

func TestEvalConstRejectsMultiInstruction(t *testing.T) {
	_, err := EvalConst(Expr{{Op: OpI32Const, I32: 1}, {Op: OpI32Const, I32: 2}})
	require.ErrorIs(t, err, ErrConstantExpression)
}

func TestEvalConstRejectsEmpty(t *testing.T) {
	_, err := EvalConst(nil)
	require.ErrorIs(t, err, ErrConstantExpression)
}
