// Package pod classifies plain-old-data types and exposes raw byte views of
// their in-memory representation.
//
// A plain-old-data type has a fixed size and a self-contained byte layout
// that is safe to copy verbatim: no internal pointers, no dynamic layout.
// The cursor and filestream packages use these helpers to validate generic
// type parameters at run time, replacing the compile-time capability bound a
// language with traits or concepts would use.
package pod

import (
	"reflect"
	"unsafe"
)

// Fixed reports whether values of type t have a fixed, self-contained byte
// layout safe to copy verbatim. Pointer-carrying kinds (pointers, maps,
// slices, strings, channels, functions, interfaces) are rejected.
//
// Struct and array types are accepted on the caller's word: the caller must
// guarantee their fields and elements are themselves plain-old-data. A struct
// containing a pointer or slice slips past this check and yields garbage when
// round-tripped; there is no way to catch that without walking the type with
// reflection on every call.
func Fixed(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}

// Swappable reports whether t is an integral, floating-point, or enumeration
// type whose multi-byte representation can be byte-swapped without corrupting
// it. Named integer types (Go's enumerations) reduce to their integer kind
// and therefore qualify. Aggregates and complex numbers do not: reversing
// their bytes wholesale would scramble the internal field layout.
func Swappable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// SizeOf returns the in-memory byte size of T.
func SizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Bytes returns the memory of *v as a byte slice of length unsafe.Sizeof(*v).
// The slice aliases v; it is valid only while v is.
func Bytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// SliceBytes returns the memory backing s as a byte slice of length
// len(s) * sizeof(T), without copying.
func SliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// CastSlice reinterprets b as a slice of n values of T without copying.
// The caller must guarantee b holds at least n * sizeof(T) bytes and that
// the memory is suitably aligned for T.
func CastSlice[T any](b []byte, n int) []T {
	if n <= 0 || len(b) == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
