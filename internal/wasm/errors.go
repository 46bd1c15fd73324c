package wasm

import "errors"

// Sentinel errors for instantiation-time failures, distinct from Trap
// (which only covers failures raised by a running instruction stream).
var (
	// ErrModuleNotFound is returned when an Import names a module the
	// configured Importer cannot resolve.
	ErrModuleNotFound = errors.New("module not found")
	// ErrConstantExpression is returned when a global or element
	// initializer expression is not one of the four *Const instructions
	// the spec allows, or is not exactly one instruction long.
	ErrConstantExpression = errors.New("invalid constant expression")
)

// RuntimeErrorKind distinguishes the instantiation-time failure modes from
// a trap raised during execution.
type RuntimeErrorKind int

const (
	// RuntimeErrModuleNotFound wraps ErrModuleNotFound.
	RuntimeErrModuleNotFound RuntimeErrorKind = iota
	// RuntimeErrConstantExpression wraps ErrConstantExpression.
	RuntimeErrConstantExpression
	// RuntimeErrTrap wraps a Trap that occurred while running a start
	// function or an invoked function.
	RuntimeErrTrap
)

// RuntimeError is returned by module instantiation and by Runtime.Invoke.
// It distinguishes the three failure modes new_instance and invoke can
// produce: an unresolved import, an invalid constant expression, and a
// Trap propagated from execution.
type RuntimeError struct {
	Kind       RuntimeErrorKind
	ModuleName string
	Trap       *Trap
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case RuntimeErrModuleNotFound:
		return "module not found: " + e.ModuleName
	case RuntimeErrConstantExpression:
		return ErrConstantExpression.Error()
	case RuntimeErrTrap:
		return e.Trap.Error()
	}
	return "runtime error"
}

// Unwrap lets errors.Is/errors.As reach the underlying sentinel or Trap.
func (e *RuntimeError) Unwrap() error {
	switch e.Kind {
	case RuntimeErrModuleNotFound:
		return ErrModuleNotFound
	case RuntimeErrConstantExpression:
		return ErrConstantExpression
	case RuntimeErrTrap:
		return e.Trap
	}
	return nil
}

// NewModuleNotFoundError reports that moduleName could not be resolved by
// the configured Importer.
func NewModuleNotFoundError(moduleName string) *RuntimeError {
	return &RuntimeError{Kind: RuntimeErrModuleNotFound, ModuleName: moduleName}
}

// NewConstantExpressionError reports an invalid global/element initializer.
func NewConstantExpressionError() *RuntimeError {
	return &RuntimeError{Kind: RuntimeErrConstantExpression}
}

// NewTrapError wraps a Trap raised while running a start function or an
// invoked function.
func NewTrapError(trap *Trap) *RuntimeError {
	return &RuntimeError{Kind: RuntimeErrTrap, Trap: trap}
}
