package wasm

import "github.com/wasmruntime/wasmcore/api"

// EvalConst evaluates a global or element initializer expression. Per §4.3
// and the original source's eval_const, only the four numeric *Const
// instructions are accepted, and only as a single-instruction expression —
// no arithmetic, no global.get, nothing referencing another part of the
// module. Anything else returns ErrConstantExpression.
func EvalConst(expr Expr) (api.Value, error) {
	if len(expr) != 1 {
		return api.Value{}, ErrConstantExpression
	}
	switch expr[0].Op {
	case OpI32Const:
		return api.ValueI32(expr[0].I32), nil
	case OpI64Const:
		return api.ValueI64(expr[0].I64), nil
	case OpF32Const:
		return api.ValueF32(expr[0].F32), nil
	case OpF64Const:
		return api.ValueF64(expr[0].F64), nil
	default:
		return api.Value{}, ErrConstantExpression
	}
}
