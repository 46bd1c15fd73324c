package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestValueRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		give Value
	}{
		{"i32", ValueI32(-10)},
		{"i64", ValueI64(1 << 40)},
		{"f32", ValueF32(3.5)},
		{"f64", ValueF64(-2.25)},
		{"funcref null", ValueFuncref(nil)},
		{"externref", ValueExternref(addrPtr(7))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueFromBits(tt.give.Type, tt.give.Bits())
			require.True(t, cmp.Equal(tt.give, got))
		})
	}
}

func TestValueAccessors(t *testing.T) {
	require.Equal(t, int32(-10), ValueI32(-10).I32())
	require.Equal(t, int64(42), ValueI64(42).I64())
	require.Equal(t, float32(1.5), ValueF32(1.5).F32())
	require.Equal(t, 2.5, ValueF64(2.5).F64())

	_, ok := ValueFuncref(nil).Ref()
	require.False(t, ok)

	addr, ok := ValueExternref(addrPtr(3)).Ref()
	require.True(t, ok)
	require.Equal(t, uint64(3), addr)
}

func TestValueTypeName(t *testing.T) {
	require.Equal(t, "i32", ValueTypeName(ValueTypeI32))
	require.Equal(t, "funcref", ValueTypeName(ValueTypeFuncref))
	require.Equal(t, "unknown", ValueTypeName(0xff))
}

func addrPtr(v uint64) *uint64 { return &v }
