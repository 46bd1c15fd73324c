package wasmcore

import "github.com/wasmruntime/wasmcore/internal/wasm"

// TrapKind enumerates the dynamic failures the interpreter can raise
// during Start or Invoke. See Trap.
type TrapKind = wasm.TrapKind

const (
	TrapUnreachable              = wasm.TrapUnreachable
	TrapNotImplemented           = wasm.TrapNotImplemented
	TrapIntegerDivideByZero      = wasm.TrapIntegerDivideByZero
	TrapIntegerOverflow          = wasm.TrapIntegerOverflow
	TrapCallStackExhausted       = wasm.TrapCallStackExhausted
	TrapIndirectCallTypeMismatch = wasm.TrapIndirectCallTypeMismatch
	TrapOutOfBoundsMemoryAccess  = wasm.TrapOutOfBoundsMemoryAccess
	TrapOutOfBoundsTableAccess   = wasm.TrapOutOfBoundsTableAccess
	TrapHostFunctionPanicked     = wasm.TrapHostFunctionPanicked
)

// Trap is the error a trapped Start or Invoke call returns, wrapped inside
// a RuntimeError. Use errors.Is against the Err* sentinels below, or
// errors.As with a *wasmcore.Trap target (var t *wasmcore.Trap;
// errors.As(err, &t)) to inspect Kind directly.
type Trap = wasm.Trap

// RuntimeError is returned by Instantiate, Start, and Invoke. Use
// errors.As to recover it and inspect Kind, ModuleName, or Trap.
type RuntimeError = wasm.RuntimeError

// Sentinel errors for use with errors.Is against a returned RuntimeError
// or Trap.
var (
	ErrModuleNotFound       = wasm.ErrModuleNotFound
	ErrConstantExpression   = wasm.ErrConstantExpression
	ErrUnreachable          = wasm.ErrUnreachable
	ErrIntegerDivideByZero  = wasm.ErrIntegerDivideByZero
	ErrIntegerOverflow      = wasm.ErrIntegerOverflow
	ErrCallStackExhausted   = wasm.ErrCallStackExhausted
	ErrHostFunctionPanicked = wasm.ErrHostFunctionPanicked
)
