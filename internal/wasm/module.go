// Package wasm holds the runtime core: the Module data contract produced by
// an external decoder, the Store/Instance allocation model, the value and
// label stack, the const evaluator, and the structured-control interpreter.
//
// Nothing in this package parses WebAssembly binaries or text format; a
// Module arrives already decoded. See the wasmcore package for the public
// facade that wires this package's pieces together for an embedder.
package wasm

import "github.com/wasmruntime/wasmcore/api"

// Index is a positional reference into one of a Module's index spaces
// (types, functions, globals, locals). It is always module-relative; it
// becomes an Addr only once allocated into a Store.
type Index = uint32

// FuncType is a function signature: an ordered parameter list and an
// ordered result list.
type FuncType struct {
	Params  []api.ValueType
	Results []api.ValueType
}

// Mut is the mutability of a global.
type Mut byte

const (
	// MutConst marks a global whose value is fixed after initialization.
	MutConst Mut = iota
	// MutVar marks a global that global.set may write to.
	MutVar
)

// GlobalType is the static type of a global: its value type and mutability.
type GlobalType struct {
	ValType api.ValueType
	Mut     Mut
}

// Limits bounds a growable space (tables and memories in the full spec;
// this core only needs the shape to describe them). Min<=Max is required
// when Max is present.
type Limits struct {
	Min uint32
	Max *uint32 // nil means unbounded (Limits::Min in the source model)
}

// Valid reports whether the limits are internally consistent.
func (l Limits) Valid() bool { return l.Max == nil || l.Min <= *l.Max }

// Expr is a short instruction sequence: a function body or an initializer.
type Expr []Instr

// Func is a module-defined function: its declared type and its body. Locals
// declared after the parameters are zero-valued at call entry.
type Func struct {
	TypeIdx Index
	Locals  []api.ValueType
	Body    Expr
}

// Global is a module-defined global: its type and its (constant-only) init
// expression.
type Global struct {
	Type GlobalType
	Init Expr
}

// ImportKind distinguishes the import descriptor kinds. Function and
// global imports are resolved by this core; Non-goals exclude table and
// memory subsystems, so those kinds are represented, but an import of
// either kind fails instantiation with a module-not-found error.
type ImportKind byte

const (
	ImportKindFunc ImportKind = iota
	ImportKindTable
	ImportKindMemory
	ImportKindGlobal
)

// ImportDesc is an import's descriptor. For ImportKindFunc, TypeIdx names
// the signature in the importing module's type section.
type ImportDesc struct {
	Kind    ImportKind
	TypeIdx Index
}

// Import is one entry of a Module's import section: a reference to
// (module name, name) resolved either by the host environment (when
// Module == HostModule) or by the Importer.
type Import struct {
	Module string
	Name   string
	Desc   ImportDesc
}

// ExportKind distinguishes export descriptor kinds; this core resolves
// ExportKindFunc lookups (invoke, cross-module call) and ExportKindGlobal
// lookups (global imports), and leaves the rest as data the embedder may
// still introspect.
type ExportKind byte

const (
	ExportKindFunc ExportKind = iota
	ExportKindTable
	ExportKindMemory
	ExportKindGlobal
)

// ExportDesc is an export's descriptor: its kind and the module-relative
// index of the exported item.
type ExportDesc struct {
	Kind  ExportKind
	Index Index
}

// Export is one entry of a Module's export section.
type Export struct {
	Name string
	Desc ExportDesc
}

// Module is the decoded WebAssembly unit this core consumes. It is assumed
// to be structurally valid (index references in range, block types
// resolvable) by the time it reaches new_instance; the core trusts indices
// but still traps on dynamically illegal operations such as unreachable.
type Module struct {
	Types   []FuncType
	Imports []Import
	Funcs   []Func
	Globals []Global
	Start   *Index
	Exports []Export
}
