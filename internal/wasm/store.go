package wasm

import "github.com/wasmruntime/wasmcore/api"

// Addr is a Store-relative allocation address: stable for the lifetime of
// the Store, unlike an Index, which is only meaningful relative to a single
// Module. Allocation happens once, at new_instance time; addresses are
// never reused or reclaimed.
type Addr = int

// FuncInst is a function instance: either a module-defined function bound
// to the instance that owns it, or a host function resolved by name
// through HostEnv. Stored as a pointer so UpdateFuncInst can rebind
// InstanceAddr after allocation, mirroring the two-pass new_instance
// sequence (allocate funcs referencing a not-yet-known instance address,
// then patch them once the Instance exists).
type FuncInst interface {
	Signature() FuncType
	isFuncInst()
}

// InnerFunc is a FuncInst backed by a module-defined function body.
type InnerFunc struct {
	Type         FuncType
	InstanceAddr Addr
	Func         Func
}

func (f *InnerFunc) Signature() FuncType { return f.Type }
func (f *InnerFunc) isFuncInst()         {}

// HostFunc is a FuncInst resolved dynamically by name through HostEnv at
// call time; it carries no body of its own.
type HostFunc struct {
	Type FuncType
	Name string
}

func (f *HostFunc) Signature() FuncType { return f.Type }
func (f *HostFunc) isFuncInst()         {}

// GlobalInst is a global instance: its static type and current value.
type GlobalInst struct {
	Type  GlobalType
	Value api.Value
}

// Store owns every function and global instance allocated across every
// Instance created from a Runtime. It outlives any single Instance and is
// never compacted; Addr values it hands out stay valid for the Store's
// whole lifetime, matching §5's allocate-once-drop-never model.
type Store struct {
	funcs   []FuncInst
	globals []GlobalInst
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// AllocateFunc appends f and returns its new Addr.
func (s *Store) AllocateFunc(f FuncInst) Addr {
	s.funcs = append(s.funcs, f)
	return len(s.funcs) - 1
}

// AllocateGlobal appends g and returns its new Addr.
func (s *Store) AllocateGlobal(g GlobalInst) Addr {
	s.globals = append(s.globals, g)
	return len(s.globals) - 1
}

// Func returns the function instance at addr.
func (s *Store) Func(addr Addr) FuncInst { return s.funcs[addr] }

// Global returns the global instance at addr.
func (s *Store) Global(addr Addr) GlobalInst { return s.globals[addr] }

// SetGlobal overwrites the value of the global instance at addr. The core
// trusts module validity (global.set only targets a GlobalType with
// Mut == MutVar); see the mutability check performed by the interpreter
// before calling this, resolving Open Question 2.
func (s *Store) SetGlobal(addr Addr, v api.Value) { s.globals[addr].Value = v }

// UpdateFuncInst rebinds every InnerFunc addressed by addrs to instanceAddr.
// new_instance allocates a module's functions before the Instance they
// belong to exists (the functions may reference each other, including
// recursively, before any of them has a home instance); this patches that
// forward reference once the Instance address is known. HostFunc entries
// are left untouched since they carry no InstanceAddr.
func (s *Store) UpdateFuncInst(addrs []Addr, instanceAddr Addr) {
	for _, a := range addrs {
		if inner, ok := s.funcs[a].(*InnerFunc); ok {
			inner.InstanceAddr = instanceAddr
		}
	}
}
