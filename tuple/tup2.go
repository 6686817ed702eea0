package tuple

import (
	"hash"
	"iter"

	"github.com/amp-labs/amp-tuple/errors"
	"gopkg.in/yaml.v3"
)

const arity2 = 2

// Tup2 is a mutable tuple with an x and a y component.
// The zero value is the all-zero tuple and is ready to use.
type Tup2[T any] struct {
	c [arity2]T
}

// NewTup2 creates a Tup2 from explicit components.
func NewTup2[T any](x, y T) *Tup2[T] {
	return &Tup2[T]{c: [arity2]T{x, y}}
}

// NewTup2Scalar creates a Tup2 with both components set to v.
func NewTup2Scalar[T any](v T) *Tup2[T] {
	return NewTup2(v, v)
}

// NewTup2Array creates a Tup2 from an array.
func NewTup2Array[T any](a [2]T) *Tup2[T] {
	return &Tup2[T]{c: a}
}

// NewTup2From copies the components of another two-component value.
func NewTup2From[T any](other Readable2[T]) *Tup2[T] {
	return NewTup2(other.X(), other.Y())
}

// Tup2FromSlice creates a Tup2 from a slice, which must have exactly two elements.
func Tup2FromSlice[T any](values []T) (*Tup2[T], error) {
	if err := errors.CheckLength(arity2, len(values)); err != nil {
		return nil, err
	}

	return NewTup2(values[0], values[1]), nil
}

func (t *Tup2[T]) X() T { return t.c[0] } //nolint:ireturn

func (t *Tup2[T]) Y() T { return t.c[1] } //nolint:ireturn

func (t *Tup2[T]) Len() int { return arity2 }

// Get returns component i, panicking with an *errors.IndexError if i is not 0 or 1.
func (t *Tup2[T]) Get(i int) T { //nolint:ireturn
	return get(t.c[:], i)
}

// TryGet is Get with the index error returned rather than raised.
func (t *Tup2[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c[:], i)
}

func (t *Tup2[T]) SetX(x T) *Tup2[T] {
	t.c[0] = x

	return t
}

func (t *Tup2[T]) SetY(y T) *Tup2[T] {
	t.c[1] = y

	return t
}

// Set assigns both components. The other bulk setters all end up here.
func (t *Tup2[T]) Set(x, y T) *Tup2[T] {
	return t.SetX(x).SetY(y)
}

// SetAt assigns component i, panicking with an *errors.IndexError if i is not 0 or 1.
func (t *Tup2[T]) SetAt(i int, v T) *Tup2[T] {
	setAt(t.c[:], i, v)

	return t
}

// TrySetAt is SetAt with the index error returned rather than raised.
// The tuple is unchanged on error.
func (t *Tup2[T]) TrySetAt(i int, v T) error {
	return trySetAt(t.c[:], i, v)
}

func (t *Tup2[T]) Fill(v T) *Tup2[T] {
	return t.Set(v, v)
}

// SetFrom copies another tuple, which must have exactly two components.
func (t *Tup2[T]) SetFrom(other Readable[T]) *Tup2[T] {
	mustLength(arity2, other.Len())

	return t.Set(other.Get(0), other.Get(1))
}

func (t *Tup2[T]) SetFrom2(other Readable2[T]) *Tup2[T] {
	return t.Set(other.X(), other.Y())
}

func (t *Tup2[T]) SetArray(a [2]T) *Tup2[T] {
	return t.Set(a[0], a[1])
}

// SetSlice copies values, panicking with an *errors.LengthError unless it
// has exactly two elements.
func (t *Tup2[T]) SetSlice(values []T) *Tup2[T] {
	mustLength(arity2, len(values))

	return t.Set(values[0], values[1])
}

func (t *Tup2[T]) ToArray() []T {
	return copyInto(t.c[:], nil)
}

func (t *Tup2[T]) CopyInto(dst []T) []T {
	return copyInto(t.c[:], dst)
}

// Array returns the components as a fixed-size array.
func (t *Tup2[T]) Array() [2]T {
	return t.c
}

func (t *Tup2[T]) All() iter.Seq2[int, T] {
	return all(t.c[:])
}

// IsZero reports whether both components are the zero value of T.
func (t *Tup2[T]) IsZero() bool {
	return allZero(t.c[:])
}

// IsValid reports whether neither component is nil.
func (t *Tup2[T]) IsValid() bool {
	return noneNil(t.c[:])
}

// Derive returns a new Tup2 holding x and y. The receiver is not touched,
// and may be nil.
func (t *Tup2[T]) Derive(x, y T) *Tup2[T] {
	return NewTup2(x, y)
}

func (t *Tup2[T]) DeriveFrom(other Readable[T]) *Tup2[T] {
	mustLength(arity2, other.Len())

	return t.Derive(other.Get(0), other.Get(1))
}

func (t *Tup2[T]) DeriveScalar(v T) *Tup2[T] {
	return t.Derive(v, v)
}

func (t *Tup2[T]) DeriveArray(a [2]T) *Tup2[T] {
	return t.Derive(a[0], a[1])
}

func (t *Tup2[T]) DeriveSlice(values []T) *Tup2[T] {
	mustLength(arity2, len(values))

	return t.Derive(values[0], values[1])
}

// Freeze returns an immutable copy.
func (t *Tup2[T]) Freeze() ImmutableTup2[T] {
	return ImmutableTup2[T]{c: t.c}
}

func (t *Tup2[T]) String() string {
	return format(t.c[:], true)
}

func (t *Tup2[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c[:])
}

func (t Tup2[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.c[:])
}

func (t *Tup2[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, arity2)
	if err != nil {
		return err
	}

	t.SetSlice(values)

	return nil
}

func (t Tup2[T]) MarshalYAML() (any, error) {
	return t.c[:], nil
}

func (t *Tup2[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, arity2)
	if err != nil {
		return err
	}

	t.SetSlice(values)

	return nil
}

// ImmutableTup2 is a two-component tuple whose values are fixed at
// construction. Functional updates (With, WithX, WithY) return copies.
type ImmutableTup2[T any] struct {
	c [arity2]T
}

func NewImmutableTup2[T any](x, y T) ImmutableTup2[T] {
	return ImmutableTup2[T]{c: [arity2]T{x, y}}
}

func NewImmutableTup2Scalar[T any](v T) ImmutableTup2[T] {
	return NewImmutableTup2(v, v)
}

func NewImmutableTup2Array[T any](a [2]T) ImmutableTup2[T] {
	return ImmutableTup2[T]{c: a}
}

func NewImmutableTup2From[T any](other Readable2[T]) ImmutableTup2[T] {
	return NewImmutableTup2(other.X(), other.Y())
}

func ImmutableTup2FromSlice[T any](values []T) (ImmutableTup2[T], error) {
	if err := errors.CheckLength(arity2, len(values)); err != nil {
		return ImmutableTup2[T]{}, err
	}

	return NewImmutableTup2(values[0], values[1]), nil
}

func (t ImmutableTup2[T]) X() T { return t.c[0] } //nolint:ireturn

func (t ImmutableTup2[T]) Y() T { return t.c[1] } //nolint:ireturn

func (t ImmutableTup2[T]) Len() int { return arity2 }

func (t ImmutableTup2[T]) Get(i int) T { //nolint:ireturn
	return get(t.c[:], i)
}

func (t ImmutableTup2[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c[:], i)
}

func (t ImmutableTup2[T]) ToArray() []T {
	return copyInto(t.c[:], nil)
}

func (t ImmutableTup2[T]) CopyInto(dst []T) []T {
	return copyInto(t.c[:], dst)
}

func (t ImmutableTup2[T]) Array() [2]T {
	return t.c
}

func (t ImmutableTup2[T]) All() iter.Seq2[int, T] {
	return all(t.c[:])
}

func (t ImmutableTup2[T]) IsZero() bool {
	return allZero(t.c[:])
}

func (t ImmutableTup2[T]) IsValid() bool {
	return noneNil(t.c[:])
}

// With returns a copy with component i replaced.
func (t ImmutableTup2[T]) With(i int, v T) ImmutableTup2[T] {
	setAt(t.c[:], i, v)

	return t
}

func (t ImmutableTup2[T]) WithX(x T) ImmutableTup2[T] {
	return t.Derive(x, t.c[1])
}

func (t ImmutableTup2[T]) WithY(y T) ImmutableTup2[T] {
	return t.Derive(t.c[0], y)
}

func (t ImmutableTup2[T]) Derive(x, y T) ImmutableTup2[T] {
	return NewImmutableTup2(x, y)
}

func (t ImmutableTup2[T]) DeriveFrom(other Readable[T]) ImmutableTup2[T] {
	mustLength(arity2, other.Len())

	return t.Derive(other.Get(0), other.Get(1))
}

func (t ImmutableTup2[T]) DeriveScalar(v T) ImmutableTup2[T] {
	return t.Derive(v, v)
}

func (t ImmutableTup2[T]) DeriveArray(a [2]T) ImmutableTup2[T] {
	return t.Derive(a[0], a[1])
}

func (t ImmutableTup2[T]) DeriveSlice(values []T) ImmutableTup2[T] {
	mustLength(arity2, len(values))

	return t.Derive(values[0], values[1])
}

// Thaw returns a mutable copy.
func (t ImmutableTup2[T]) Thaw() *Tup2[T] {
	return &Tup2[T]{c: t.c}
}

func (t ImmutableTup2[T]) String() string {
	return format(t.c[:], true)
}

func (t ImmutableTup2[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c[:])
}

func (t ImmutableTup2[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.c[:])
}

// UnmarshalJSON exists for decoding only; it is the one place an
// ImmutableTup2 is written after construction.
func (t *ImmutableTup2[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, arity2)
	if err != nil {
		return err
	}

	*t = NewImmutableTup2(values[0], values[1])

	return nil
}

func (t ImmutableTup2[T]) MarshalYAML() (any, error) {
	return t.c[:], nil
}

func (t *ImmutableTup2[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, arity2)
	if err != nil {
		return err
	}

	*t = NewImmutableTup2(values[0], values[1])

	return nil
}
