package wasm

// HostModule is the reserved import module name that marks an import as
// resolved by the embedder's HostEnv rather than by an Importer-provided
// Module.
const HostModule = "__env"

// HostEnv is the host-function boundary: a call whose Import.Module is
// HostModule is dispatched here by import name, with the calling
// instance's operand Stack passed through so the host can pop its
// parameters and push its results exactly like a module-defined function
// would.
type HostEnv interface {
	Call(name string, stack *Stack)
}

// HostEnvFunc adapts a plain function to HostEnv, the same pattern as
// http.HandlerFunc: most embedders have one dispatch function, not a type
// worth naming.
type HostEnvFunc func(name string, stack *Stack)

// Call implements HostEnv.
func (f HostEnvFunc) Call(name string, stack *Stack) { f(name, stack) }

// NopHostEnv is a HostEnv that ignores every call, leaving the operand
// stack untouched. Useful for tests of modules that declare host imports
// they never actually invoke.
var NopHostEnv HostEnv = HostEnvFunc(func(string, *Stack) {})
