package tuple

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/zero"
)

// WithinMargin reports whether |v| <= margin. The bound is inclusive.
// A negative or NaN margin admits nothing.
func WithinMargin[T Number](v, margin T) bool {
	if margin < 0 {
		return false
	}

	if v >= 0 {
		return v <= margin
	}

	// v < 0 implies a signed or float type; -margin can't overflow here.
	return -margin <= v
}

// IsZero reports whether every component of r equals exactly zero.
func IsZero[T Number](r Readable[T]) bool {
	for i := range r.Len() {
		if r.Get(i) != 0 {
			return false
		}
	}

	return true
}

// IsZeroWithMargin reports whether every component of r lies within
// [-margin, margin]. IsZeroWithMargin(r, 0) is equivalent to IsZero(r).
func IsZeroWithMargin[T Number](r Readable[T], margin T) bool {
	for i := range r.Len() {
		if !WithinMargin(r.Get(i), margin) {
			return false
		}
	}

	return true
}

// IsValid reports whether no component of r is nil. Tuples of types that
// can't hold nil are always valid.
func IsValid[T any](r Readable[T]) bool {
	for i := range r.Len() {
		if zero.IsNil(r.Get(i)) {
			return false
		}
	}

	return true
}

// Validate is IsValid with an explanation: it returns one
// errors.ErrNilComponent per nil component, joined.
func Validate[T any](r Readable[T]) error {
	var errs errors.Collection

	for i := range r.Len() {
		if zero.IsNil(r.Get(i)) {
			errs.Addf(errors.ErrNilComponent, "component %d", i)
		}
	}

	return errs.GetError()
}

// Equal reports whether a and b have the same length and equal components.
func Equal[T comparable](a, b Readable[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied component comparison.
func EqualFunc[T any](a, b Readable[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if !eq(a.Get(i), b.Get(i)) {
			return false
		}
	}

	return true
}

// Hash writes the components of any Readable to h, in the same layout the
// concrete tuples use for UpdateHash.
func Hash[T any](h hash.Hash, r Readable[T]) error {
	return updateHash(h, readAll(r))
}

// Map applies f to every component of r, producing a tuple of the same length.
func Map[T, U any](r Readable[T], f func(T) U) *TupN[U] {
	out := make([]U, r.Len())
	for i := range out {
		out[i] = f(r.Get(i))
	}

	return &TupN[U]{c: out}
}

// Must returns v, panicking if err is non-nil. It pairs with the
// FromSlice constructors when the length is known to be right.
func Must[S any](v S, err error) S { //nolint:ireturn
	if err != nil {
		panic(fmt.Errorf("tuple: %w", err))
	}

	return v
}
