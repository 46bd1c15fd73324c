package wasmcore

// RuntimeConfig holds the knobs a new Runtime is built with. The zero value
// is usable (CallStackCeiling 0 means unbounded, RecoverPanic false means a
// panicking host function crashes the process, matching Go's normal
// panic/recover contract), but callers typically use NewRuntimeConfig with
// one or more Option to get sensible defaults.
type RuntimeConfig struct {
	// CallStackCeiling bounds the number of nested Call instructions a
	// single Invoke may perform before the interpreter traps with
	// TrapCallStackExhausted rather than growing the Go call stack
	// without limit. 0 means unbounded.
	CallStackCeiling int
	// RecoverPanic, when true, turns a panicking host function (called
	// through HostEnv.Call) into a TrapHostFunctionPanicked instead of
	// propagating the panic to the embedder.
	RecoverPanic bool
}

// defaultCallStackCeiling mirrors the order of magnitude wazero's
// buildoptions.CallStackCeiling defaults to: generous enough for realistic
// recursive Wasm programs, small enough to fail fast on a runaway one.
const defaultCallStackCeiling = 2000

// Option configures a RuntimeConfig. See WithCallStackCeiling and
// WithRecoverPanic.
type Option func(*RuntimeConfig)

// NewRuntimeConfig returns a RuntimeConfig with the package defaults
// applied, then overridden by opts in order.
func NewRuntimeConfig(opts ...Option) RuntimeConfig {
	cfg := RuntimeConfig{CallStackCeiling: defaultCallStackCeiling}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCallStackCeiling overrides the call-stack depth ceiling. Passing 0
// makes calls unbounded.
func WithCallStackCeiling(n int) Option {
	return func(c *RuntimeConfig) { c.CallStackCeiling = n }
}

// WithRecoverPanic enables recovering a panicking host function into a
// TrapHostFunctionPanicked.
func WithRecoverPanic(recoverPanic bool) Option {
	return func(c *RuntimeConfig) { c.RecoverPanic = recoverPanic }
}
