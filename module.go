package wasmcore

import "github.com/wasmruntime/wasmcore/internal/wasm"

// Module is the decoded WebAssembly unit a Runtime instantiates. Nothing in
// this package decodes Wasm binaries or text format; construct one
// directly (or adapt it from a separate decoder) before calling
// Runtime.Instantiate.
type Module = wasm.Module

// FuncType, Func, Global, Import, ImportDesc, Export, and ExportDesc make
// up a Module; see internal/wasm's doc comments for each field's meaning.
type (
	FuncType   = wasm.FuncType
	Func       = wasm.Func
	Global     = wasm.Global
	GlobalType = wasm.GlobalType
	Import     = wasm.Import
	ImportDesc = wasm.ImportDesc
	Export     = wasm.Export
	ExportDesc = wasm.ExportDesc
	Limits     = wasm.Limits
	Index      = wasm.Index
	Expr       = wasm.Expr
	Instr      = wasm.Instr
	Op         = wasm.Op
	BlockType  = wasm.BlockType
	BlockKind  = wasm.BlockKind
	Mut        = wasm.Mut
)

// Import/export kind constants.
const (
	ImportKindFunc   = wasm.ImportKindFunc
	ImportKindTable  = wasm.ImportKindTable
	ImportKindMemory = wasm.ImportKindMemory
	ImportKindGlobal = wasm.ImportKindGlobal

	ExportKindFunc   = wasm.ExportKindFunc
	ExportKindTable  = wasm.ExportKindTable
	ExportKindMemory = wasm.ExportKindMemory
	ExportKindGlobal = wasm.ExportKindGlobal

	MutConst = wasm.MutConst
	MutVar   = wasm.MutVar

	BlockKindEmpty   = wasm.BlockKindEmpty
	BlockKindVal     = wasm.BlockKindVal
	BlockKindTypeIdx = wasm.BlockKindTypeIdx
)

// Re-exported instruction opcodes, for embedders constructing a Module's
// function bodies directly rather than through a decoder. This covers the
// full representative opcode set internal/wasm implements — structured
// control, calls, locals/globals, constants, and the i32/i64/f32/f64
// comparison and arithmetic families — not just the control-flow subset.
const (
	OpUnreachable = wasm.OpUnreachable
	OpNop         = wasm.OpNop
	OpBlock       = wasm.OpBlock
	OpLoop        = wasm.OpLoop
	OpIf          = wasm.OpIf
	OpBr          = wasm.OpBr
	OpBrIf        = wasm.OpBrIf
	OpBrTable     = wasm.OpBrTable
	OpReturn      = wasm.OpReturn
	OpCall        = wasm.OpCall
	OpDrop        = wasm.OpDrop
	OpSelect      = wasm.OpSelect
	OpLocalGet    = wasm.OpLocalGet
	OpLocalSet    = wasm.OpLocalSet
	OpLocalTee    = wasm.OpLocalTee
	OpGlobalGet   = wasm.OpGlobalGet
	OpGlobalSet   = wasm.OpGlobalSet

	OpI32Const = wasm.OpI32Const
	OpI64Const = wasm.OpI64Const
	OpF32Const = wasm.OpF32Const
	OpF64Const = wasm.OpF64Const

	OpI32Eqz  = wasm.OpI32Eqz
	OpI32Eq   = wasm.OpI32Eq
	OpI32Ne   = wasm.OpI32Ne
	OpI32LtS  = wasm.OpI32LtS
	OpI32LtU  = wasm.OpI32LtU
	OpI32GtS  = wasm.OpI32GtS
	OpI32GtU  = wasm.OpI32GtU
	OpI32LeS  = wasm.OpI32LeS
	OpI32LeU  = wasm.OpI32LeU
	OpI32GeS  = wasm.OpI32GeS
	OpI32GeU  = wasm.OpI32GeU
	OpI32Add  = wasm.OpI32Add
	OpI32Sub  = wasm.OpI32Sub
	OpI32Mul  = wasm.OpI32Mul
	OpI32DivS = wasm.OpI32DivS
	OpI32DivU = wasm.OpI32DivU
	OpI32RemS = wasm.OpI32RemS
	OpI32RemU = wasm.OpI32RemU
	OpI32And  = wasm.OpI32And
	OpI32Or   = wasm.OpI32Or
	OpI32Xor  = wasm.OpI32Xor
	OpI32Shl  = wasm.OpI32Shl
	OpI32ShrS = wasm.OpI32ShrS
	OpI32ShrU = wasm.OpI32ShrU

	OpI64Eqz  = wasm.OpI64Eqz
	OpI64Eq   = wasm.OpI64Eq
	OpI64Ne   = wasm.OpI64Ne
	OpI64LtS  = wasm.OpI64LtS
	OpI64LtU  = wasm.OpI64LtU
	OpI64GtS  = wasm.OpI64GtS
	OpI64GtU  = wasm.OpI64GtU
	OpI64LeS  = wasm.OpI64LeS
	OpI64LeU  = wasm.OpI64LeU
	OpI64GeS  = wasm.OpI64GeS
	OpI64GeU  = wasm.OpI64GeU
	OpI64Add  = wasm.OpI64Add
	OpI64Sub  = wasm.OpI64Sub
	OpI64Mul  = wasm.OpI64Mul
	OpI64DivS = wasm.OpI64DivS
	OpI64DivU = wasm.OpI64DivU
	OpI64RemS = wasm.OpI64RemS
	OpI64RemU = wasm.OpI64RemU
	OpI64And  = wasm.OpI64And
	OpI64Or   = wasm.OpI64Or
	OpI64Xor  = wasm.OpI64Xor
	OpI64Shl  = wasm.OpI64Shl
	OpI64ShrS = wasm.OpI64ShrS
	OpI64ShrU = wasm.OpI64ShrU

	OpF32Add = wasm.OpF32Add
	OpF32Sub = wasm.OpF32Sub
	OpF32Mul = wasm.OpF32Mul
	OpF32Div = wasm.OpF32Div

	OpF64Add = wasm.OpF64Add
	OpF64Sub = wasm.OpF64Sub
	OpF64Mul = wasm.OpF64Mul
	OpF64Div = wasm.OpF64Div
)

// Addr is a Store-relative allocation address, stable for a Runtime's
// lifetime.
type Addr = wasm.Addr

// Stack is the operand stack a HostEnv implementation pops parameters from
// and pushes results onto.
type Stack = wasm.Stack

// Importer resolves a module name to a Module for linking. See
// DefaultImporter for a simple in-memory implementation.
type Importer = wasm.Importer

// DefaultImporter is a name-to-Module map implementing Importer.
type DefaultImporter = wasm.DefaultImporter

// NewDefaultImporter returns an empty DefaultImporter.
func NewDefaultImporter() *DefaultImporter { return wasm.NewDefaultImporter() }

// HostModule is the reserved import module name resolved through HostEnv
// rather than through an Importer-provided Module.
const HostModule = wasm.HostModule

// HostEnv dispatches calls to imports whose Import.Module is HostModule.
type HostEnv = wasm.HostEnv

// HostEnvFunc adapts a plain function to HostEnv.
type HostEnvFunc = wasm.HostEnvFunc

// NopHostEnv is a HostEnv that ignores every call.
var NopHostEnv = wasm.NopHostEnv
