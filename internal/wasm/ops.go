package wasm

// i32Compare and i64Compare implement the comparison opcode families, and
// the *Arith helpers the non-trapping arithmetic, bitwise, and shift
// operators (shift counts masked to the operand width); division and
// remainder are handled directly in step because they need their own trap
// checks, so only the trap-free operators are factored out here.

func i32Compare(op Op, lhs, rhs int32) bool {
	switch op {
	case OpI32Eq:
		return lhs == rhs
	case OpI32Ne:
		return lhs != rhs
	case OpI32LtS:
		return lhs < rhs
	case OpI32LtU:
		return uint32(lhs) < uint32(rhs)
	case OpI32GtS:
		return lhs > rhs
	case OpI32GtU:
		return uint32(lhs) > uint32(rhs)
	case OpI32LeS:
		return lhs <= rhs
	case OpI32LeU:
		return uint32(lhs) <= uint32(rhs)
	case OpI32GeS:
		return lhs >= rhs
	case OpI32GeU:
		return uint32(lhs) >= uint32(rhs)
	}
	return false
}

func i32Arith(op Op, lhs, rhs int32) int32 {
	switch op {
	case OpI32Add:
		return lhs + rhs
	case OpI32Sub:
		return lhs - rhs
	case OpI32Mul:
		return lhs * rhs
	case OpI32And:
		return lhs & rhs
	case OpI32Or:
		return lhs | rhs
	case OpI32Xor:
		return lhs ^ rhs
	case OpI32Shl:
		return lhs << (uint32(rhs) & 31)
	case OpI32ShrS:
		return lhs >> (uint32(rhs) & 31)
	case OpI32ShrU:
		return int32(uint32(lhs) >> (uint32(rhs) & 31))
	}
	return 0
}

func i64Compare(op Op, lhs, rhs int64) bool {
	switch op {
	case OpI64Eq:
		return lhs == rhs
	case OpI64Ne:
		return lhs != rhs
	case OpI64LtS:
		return lhs < rhs
	case OpI64LtU:
		return uint64(lhs) < uint64(rhs)
	case OpI64GtS:
		return lhs > rhs
	case OpI64GtU:
		return uint64(lhs) > uint64(rhs)
	case OpI64LeS:
		return lhs <= rhs
	case OpI64LeU:
		return uint64(lhs) <= uint64(rhs)
	case OpI64GeS:
		return lhs >= rhs
	case OpI64GeU:
		return uint64(lhs) >= uint64(rhs)
	}
	return false
}

func i64Arith(op Op, lhs, rhs int64) int64 {
	switch op {
	case OpI64Add:
		return lhs + rhs
	case OpI64Sub:
		return lhs - rhs
	case OpI64Mul:
		return lhs * rhs
	case OpI64And:
		return lhs & rhs
	case OpI64Or:
		return lhs | rhs
	case OpI64Xor:
		return lhs ^ rhs
	case OpI64Shl:
		return lhs << (uint64(rhs) & 63)
	case OpI64ShrS:
		return lhs >> (uint64(rhs) & 63)
	case OpI64ShrU:
		return int64(uint64(lhs) >> (uint64(rhs) & 63))
	}
	return 0
}

func f32Arith(op Op, lhs, rhs float32) float32 {
	switch op {
	case OpF32Add:
		return lhs + rhs
	case OpF32Sub:
		return lhs - rhs
	case OpF32Mul:
		return lhs * rhs
	case OpF32Div:
		return lhs / rhs
	}
	return 0
}

func f64Arith(op Op, lhs, rhs float64) float64 {
	switch op {
	case OpF64Add:
		return lhs + rhs
	case OpF64Sub:
		return lhs - rhs
	case OpF64Mul:
		return lhs * rhs
	case OpF64Div:
		return lhs / rhs
	}
	return 0
}
