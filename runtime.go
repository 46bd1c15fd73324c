// Package wasmcore is the public facade of a structured-control-flow
// WebAssembly core execution engine: given an already-decoded Module, it
// resolves imports, allocates the module into a Store as a new Instance,
// and runs exported functions against a recursive tree-walking
// interpreter. It does not parse Wasm binaries or text format — see
// internal/wasm's Module doc comment — and it does not implement tables,
// linear memory, or SIMD; see SPEC_FULL.md for the exact boundary.
package wasmcore

import (
	"sync"

	"github.com/wasmruntime/wasmcore/api"
	"github.com/wasmruntime/wasmcore/internal/wasm"
)

// Runtime links and runs WebAssembly modules. A Runtime owns one Store
// shared by every Instance it creates, so instances can call into and read
// globals from one another once linked.
//
// A Runtime's exported methods are guarded by a mutex: concurrent
// Instantiate/Start/Invoke calls on the same Runtime are serialized rather
// than racing on the shared Store, the same documented-and-enforced
// contract wazero's Store gives its callers.
type Runtime struct {
	mu       sync.Mutex
	config   RuntimeConfig
	importer wasm.Importer
	env      wasm.HostEnv

	store     *wasm.Store
	instances []*wasm.Instance
	named     map[string]int
}

// NewRuntime returns a Runtime that resolves non-host imports through
// importer (pass nil if every module instantiated is self-contained or
// only imports host functions) and dispatches host calls through env (pass
// wasm.NopHostEnv if none are expected).
func NewRuntime(importer wasm.Importer, env wasm.HostEnv, opts ...Option) *Runtime {
	if env == nil {
		env = wasm.NopHostEnv
	}
	return &Runtime{
		config:   NewRuntimeConfig(opts...),
		importer: importer,
		env:      env,
		store:    wasm.NewStore(),
		named:    make(map[string]int),
	}
}

// Instantiate allocates module into the Runtime's Store as a new Instance
// registered under name, resolving its imports against already-registered
// instances and, failing that, against the Runtime's Importer. It does not
// run the module's start function; call Start explicitly once every
// module it might depend on has also been instantiated.
func (r *Runtime) Instantiate(module *wasm.Module, name string) (*wasm.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.instantiateLocked(module, name)
}

func (r *Runtime) instantiateLocked(module *wasm.Module, name string) (*wasm.Instance, error) {
	var funcAddrs, globalAddrs []wasm.Addr

	for _, im := range module.Imports {
		switch im.Desc.Kind {
		case wasm.ImportKindFunc:
			addr, err := r.resolveFuncImport(module, im)
			if err != nil {
				return nil, err
			}
			funcAddrs = append(funcAddrs, addr)
		case wasm.ImportKindGlobal:
			addr, err := r.resolveGlobalImport(im)
			if err != nil {
				return nil, err
			}
			globalAddrs = append(globalAddrs, addr)
		default:
			return nil, wasm.NewModuleNotFoundError(im.Module + "." + im.Name)
		}
	}

	localFuncAddrs := make([]wasm.Addr, len(module.Funcs))
	for i, f := range module.Funcs {
		localFuncAddrs[i] = r.store.AllocateFunc(&wasm.InnerFunc{
			Type: module.Types[f.TypeIdx],
			Func: f,
		})
	}
	funcAddrs = append(funcAddrs, localFuncAddrs...)

	for _, g := range module.Globals {
		value, err := wasm.EvalConst(g.Init)
		if err != nil {
			return nil, wasm.NewConstantExpressionError()
		}
		globalAddrs = append(globalAddrs, r.store.AllocateGlobal(wasm.GlobalInst{Type: g.Type, Value: value}))
	}

	instance := &wasm.Instance{
		FuncAddrs:   funcAddrs,
		GlobalAddrs: globalAddrs,
		Types:       module.Types,
		Start:       module.Start,
		Exports:     module.Exports,
	}
	instanceAddr := len(r.instances)
	r.instances = append(r.instances, instance)
	r.store.UpdateFuncInst(localFuncAddrs, instanceAddr)

	if name != "" {
		r.named[name] = instanceAddr
	}
	return instance, nil
}

func (r *Runtime) resolveFuncImport(module *wasm.Module, im wasm.Import) (wasm.Addr, error) {
	if im.Module == wasm.HostModule {
		return r.store.AllocateFunc(&wasm.HostFunc{Type: module.Types[im.Desc.TypeIdx], Name: im.Name}), nil
	}
	dep, err := r.resolveInstance(im.Module)
	if err != nil {
		return 0, err
	}
	addr, ok := dep.ExportedFunc(im.Name)
	if !ok {
		return 0, wasm.NewModuleNotFoundError(im.Module + "." + im.Name)
	}
	return addr, nil
}

func (r *Runtime) resolveGlobalImport(im wasm.Import) (wasm.Addr, error) {
	dep, err := r.resolveInstance(im.Module)
	if err != nil {
		return 0, err
	}
	addr, ok := dep.ExportedGlobal(im.Name)
	if !ok {
		return 0, wasm.NewModuleNotFoundError(im.Module + "." + im.Name)
	}
	return addr, nil
}

// resolveInstance finds an already-registered instance by name, or asks
// the Importer for its Module and instantiates it (unnamed dependencies
// are instantiated exactly once, on first reference, and cached under the
// name they were imported by).
func (r *Runtime) resolveInstance(name string) (*wasm.Instance, error) {
	if idx, ok := r.named[name]; ok {
		return r.instances[idx], nil
	}
	if r.importer == nil {
		return nil, wasm.NewModuleNotFoundError(name)
	}
	dep, ok := r.importer.Import(name)
	if !ok {
		return nil, wasm.NewModuleNotFoundError(name)
	}
	return r.instantiateLocked(dep, name)
}

func (r *Runtime) interpreter() *wasm.Interpreter {
	return wasm.NewInterpreter(r.store, r.instances, r.env, r.config.CallStackCeiling, r.config.RecoverPanic)
}

// Start runs the start function of the instance registered under name, if
// it declares one. Its results, if any, are discarded, matching a Wasm
// start function's niladic, no-result signature.
func (r *Runtime) Start(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.named[name]
	if !ok {
		return wasm.NewModuleNotFoundError(name)
	}
	instance := r.instances[idx]
	if instance.Start == nil {
		return nil
	}
	addr := instance.FuncAddrs[*instance.Start]
	if _, trap := r.interpreter().InvokeFunc(addr, nil); trap != nil {
		return wasm.NewTrapError(trap)
	}
	return nil
}

// Invoke calls the function exported as funcName by the instance
// registered under name, with args as its parameters, and returns its
// results in order.
func (r *Runtime) Invoke(name, funcName string, args ...api.Value) ([]api.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.named[name]
	if !ok {
		return nil, wasm.NewModuleNotFoundError(name)
	}
	instance := r.instances[idx]
	addr, ok := instance.ExportedFunc(funcName)
	if !ok {
		return nil, wasm.NewModuleNotFoundError(name + "." + funcName)
	}
	results, trap := r.interpreter().InvokeFunc(addr, args)
	if trap != nil {
		return nil, wasm.NewTrapError(trap)
	}
	return results, nil
}
