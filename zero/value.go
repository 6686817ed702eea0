// Package zero provides utilities for working with zero and nil values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T.
// This is useful when you need to explicitly obtain the zero value of a generic type parameter.
//
// Example:
//
//	var origin = zero.Value[float64]()   // returns 0
//	var empty = zero.Value[*big.Int]()   // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// Numbers compare with ==, so -0.0 counts as zero and NaN never does.
// Other kinds fall back to reflect.DeepEqual.
//
// Example:
//
//	zero.IsZero(0)      // returns true
//	zero.IsZero(-0.0)   // returns true
//	zero.IsZero("")     // returns true
//	zero.IsZero(42)     // returns false
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}

// Nillable reports whether values of type T can be nil at all
// (pointers, interfaces, maps, slices, channels and functions).
func Nillable[T any]() bool {
	typ := reflect.TypeFor[T]()

	return nillableKind(typ.Kind())
}

// IsNil reports whether value is nil. Values whose type can never be nil
// (numbers, strings, structs, arrays) always report false.
//
// Example:
//
//	zero.IsNil[*int](nil)      // returns true
//	zero.IsNil[any](nil)       // returns true
//	zero.IsNil(0)              // returns false
func IsNil[T any](value T) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		// nil interface
		return true
	}

	if !nillableKind(rv.Kind()) {
		return false
	}

	return rv.IsNil()
}

func nillableKind(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
