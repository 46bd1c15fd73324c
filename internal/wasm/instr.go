package wasm

import "github.com/wasmruntime/wasmcore/api"

// Op is an instruction opcode. The set implemented here is the
// "representative, extensible subset" the core targets: structured control,
// locals/globals, calls, and the i32/i64/f32/f64 constant and arithmetic
// families. An Instr carrying an Op outside this set falls through to the
// interpreter's default arm and traps with TrapNotImplemented.
//
// This mirrors wazeroir's UnionOperation: one instruction struct carries a
// Kind plus whichever immediate fields that Kind needs, instead of one Go
// type per opcode.
type Op byte

const (
	OpUnreachable Op = iota
	OpNop
	OpBlock
	OpLoop
	OpIf
	OpBr
	OpBrIf
	OpBrTable
	OpReturn
	OpCall
	OpDrop
	OpSelect
	OpLocalGet
	OpLocalSet
	OpLocalTee
	OpGlobalGet
	OpGlobalSet

	OpI32Const
	OpI64Const
	OpF32Const
	OpF64Const

	// Comparison and arithmetic families. Us holds no operands; these act
	// on the operand stack only.
	OpI32Eqz
	OpI32Eq
	OpI32Ne
	OpI32LtS
	OpI32LtU
	OpI32GtS
	OpI32GtU
	OpI32LeS
	OpI32LeU
	OpI32GeS
	OpI32GeU
	OpI32Add
	OpI32Sub
	OpI32Mul
	OpI32DivS
	OpI32DivU
	OpI32RemS
	OpI32RemU
	OpI32And
	OpI32Or
	OpI32Xor
	OpI32Shl
	OpI32ShrS
	OpI32ShrU

	OpI64Eqz
	OpI64Eq
	OpI64Ne
	OpI64LtS
	OpI64LtU
	OpI64GtS
	OpI64GtU
	OpI64LeS
	OpI64LeU
	OpI64GeS
	OpI64GeU
	OpI64Add
	OpI64Sub
	OpI64Mul
	OpI64DivS
	OpI64DivU
	OpI64RemS
	OpI64RemU
	OpI64And
	OpI64Or
	OpI64Xor
	OpI64Shl
	OpI64ShrS
	OpI64ShrU

	OpF32Add
	OpF32Sub
	OpF32Mul
	OpF32Div

	OpF64Add
	OpF64Sub
	OpF64Mul
	OpF64Div

	opEnd // sentinel, not a real opcode
)

// names is indexed by Op for String/debugging; kept separate from the Op
// declaration block so adding an opcode can't silently desync the two.
var names = [...]string{
	OpUnreachable: "unreachable", OpNop: "nop", OpBlock: "block", OpLoop: "loop", OpIf: "if",
	OpBr: "br", OpBrIf: "br_if", OpBrTable: "br_table", OpReturn: "return", OpCall: "call",
	OpDrop: "drop", OpSelect: "select",
	OpLocalGet: "local.get", OpLocalSet: "local.set", OpLocalTee: "local.tee",
	OpGlobalGet: "global.get", OpGlobalSet: "global.set",
	OpI32Const: "i32.const", OpI64Const: "i64.const", OpF32Const: "f32.const", OpF64Const: "f64.const",
	OpI32Eqz: "i32.eqz", OpI32Eq: "i32.eq", OpI32Ne: "i32.ne",
	OpI32LtS: "i32.lt_s", OpI32LtU: "i32.lt_u", OpI32GtS: "i32.gt_s", OpI32GtU: "i32.gt_u",
	OpI32LeS: "i32.le_s", OpI32LeU: "i32.le_u", OpI32GeS: "i32.ge_s", OpI32GeU: "i32.ge_u",
	OpI32Add: "i32.add", OpI32Sub: "i32.sub", OpI32Mul: "i32.mul",
	OpI32DivS: "i32.div_s", OpI32DivU: "i32.div_u", OpI32RemS: "i32.rem_s", OpI32RemU: "i32.rem_u",
	OpI32And: "i32.and", OpI32Or: "i32.or", OpI32Xor: "i32.xor",
	OpI32Shl: "i32.shl", OpI32ShrS: "i32.shr_s", OpI32ShrU: "i32.shr_u",
	OpI64Eqz: "i64.eqz", OpI64Eq: "i64.eq", OpI64Ne: "i64.ne",
	OpI64LtS: "i64.lt_s", OpI64LtU: "i64.lt_u", OpI64GtS: "i64.gt_s", OpI64GtU: "i64.gt_u",
	OpI64LeS: "i64.le_s", OpI64LeU: "i64.le_u", OpI64GeS: "i64.ge_s", OpI64GeU: "i64.ge_u",
	OpI64Add: "i64.add", OpI64Sub: "i64.sub", OpI64Mul: "i64.mul",
	OpI64DivS: "i64.div_s", OpI64DivU: "i64.div_u", OpI64RemS: "i64.rem_s", OpI64RemU: "i64.rem_u",
	OpI64And: "i64.and", OpI64Or: "i64.or", OpI64Xor: "i64.xor",
	OpI64Shl: "i64.shl", OpI64ShrS: "i64.shr_s", OpI64ShrU: "i64.shr_u",
	OpF32Add: "f32.add", OpF32Sub: "f32.sub", OpF32Mul: "f32.mul", OpF32Div: "f32.div",
	OpF64Add: "f64.add", OpF64Sub: "f64.sub", OpF64Mul: "f64.mul", OpF64Div: "f64.div",
}

// String returns the instruction's textual mnemonic, or "unknown" for an Op
// outside the known range.
func (o Op) String() string {
	if int(o) < len(names) && names[o] != "" {
		return names[o]
	}
	return "unknown"
}

// BlockKind selects how a BlockType's arity is computed, per §4.6: Empty has
// arity 0, Val has arity 1, and TypeIdx looks up the result count in the
// enclosing instance's type table.
type BlockKind byte

const (
	BlockKindEmpty BlockKind = iota
	BlockKindVal
	BlockKindTypeIdx
)

// BlockType is the arity descriptor carried by block/loop/if.
type BlockType struct {
	Kind    BlockKind
	Val     api.ValueType
	TypeIdx Index
}

// Instr is a single instruction. Only the fields relevant to Op are
// meaningful; the rest are zero. Block/Loop carry a nested body in Then;
// If carries its true branch in Then and, optionally, its false branch in
// Else.
type Instr struct {
	Op Op

	I32 int32
	I64 int64
	F32 float32
	F64 float64

	Index    Index   // local/global/function index, or branch depth for Br/BrIf
	Indexes  []Index // br_table targets
	Default  Index   // br_table default target
	Block    BlockType
	Then     Expr
	Else     Expr
}
