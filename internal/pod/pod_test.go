package pod

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedPair struct {
	A uint32
	B uint32
}

type pointerCarrier struct {
	P *int
}

type colorCode uint16

func TestFixed(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{name: "uint8", typ: reflect.TypeFor[uint8](), want: true},
		{name: "int64", typ: reflect.TypeFor[int64](), want: true},
		{name: "float64", typ: reflect.TypeFor[float64](), want: true},
		{name: "bool", typ: reflect.TypeFor[bool](), want: true},
		{name: "complex128", typ: reflect.TypeFor[complex128](), want: true},
		{name: "named integer", typ: reflect.TypeFor[colorCode](), want: true},
		{name: "array", typ: reflect.TypeFor[[4]uint32](), want: true},
		{name: "struct", typ: reflect.TypeFor[fixedPair](), want: true},
		{name: "string", typ: reflect.TypeFor[string](), want: false},
		{name: "slice", typ: reflect.TypeFor[[]byte](), want: false},
		{name: "pointer", typ: reflect.TypeFor[*int](), want: false},
		{name: "map", typ: reflect.TypeFor[map[int]int](), want: false},
		{name: "chan", typ: reflect.TypeFor[chan int](), want: false},
		{name: "func", typ: reflect.TypeFor[func()](), want: false},
		{name: "interface", typ: reflect.TypeFor[any](), want: false},
		// Accepted on the caller's word, even though it is unsafe to copy.
		{name: "pointer-carrying struct", typ: reflect.TypeFor[pointerCarrier](), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Fixed(tt.typ))
		})
	}
}

func TestSwappable(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{name: "uint16", typ: reflect.TypeFor[uint16](), want: true},
		{name: "int64", typ: reflect.TypeFor[int64](), want: true},
		{name: "float32", typ: reflect.TypeFor[float32](), want: true},
		{name: "uintptr", typ: reflect.TypeFor[uintptr](), want: true},
		{name: "named integer", typ: reflect.TypeFor[colorCode](), want: true},
		{name: "bool", typ: reflect.TypeFor[bool](), want: false},
		{name: "complex64", typ: reflect.TypeFor[complex64](), want: false},
		{name: "array", typ: reflect.TypeFor[[2]uint16](), want: false},
		{name: "struct", typ: reflect.TypeFor[fixedPair](), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Swappable(tt.typ))
		})
	}
}

func TestSizeOf(t *testing.T) {
	require := require.New(t)

	require.Equal(1, SizeOf[uint8]())
	require.Equal(2, SizeOf[colorCode]())
	require.Equal(8, SizeOf[float64]())
	require.Equal(8, SizeOf[fixedPair]())
	require.Equal(16, SizeOf[[4]uint32]())
}

func TestBytes_AliasesValue(t *testing.T) {
	require := require.New(t)

	v := fixedPair{A: 1, B: 2}
	b := Bytes(&v)
	require.Len(b, 8)

	// Zeroing the bytes zeroes the value.
	for i := range b {
		b[i] = 0
	}
	require.Equal(fixedPair{}, v)
}

func TestSliceBytes(t *testing.T) {
	require := require.New(t)

	require.Nil(SliceBytes[uint32](nil))
	require.Nil(SliceBytes([]uint32{}))

	s := []uint16{0x0102, 0x0304}
	b := SliceBytes(s)
	require.Len(b, 4)

	b[0] ^= 0xFF
	require.NotEqual(uint16(0x0102), s[0])
}

func TestCastSlice_RoundTrip(t *testing.T) {
	require := require.New(t)

	require.Nil(CastSlice[uint32](nil, 0))
	require.Nil(CastSlice[uint32](nil, -2))
	require.Nil(CastSlice[uint32]([]byte{}, 1))

	src := []uint64{10, 20, 30}
	b := SliceBytes(src)
	back := CastSlice[uint64](b, 3)
	require.Equal(src, back)

	// Both views share storage.
	back[1] = 99
	require.Equal(uint64(99), src[1])
}
