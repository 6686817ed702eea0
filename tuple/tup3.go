package tuple

import (
	"hash"
	"iter"

	"github.com/amp-labs/amp-tuple/errors"
	"gopkg.in/yaml.v3"
)

const arity3 = 3

// Tup3 is a mutable tuple with x, y and z components.
type Tup3[T any] struct {
	c [arity3]T
}

func NewTup3[T any](x, y, z T) *Tup3[T] {
	return &Tup3[T]{c: [arity3]T{x, y, z}}
}

func NewTup3Scalar[T any](v T) *Tup3[T] {
	return NewTup3(v, v, v)
}

func NewTup3Array[T any](a [3]T) *Tup3[T] {
	return &Tup3[T]{c: a}
}

func NewTup3From[T any](other Readable3[T]) *Tup3[T] {
	return NewTup3(other.X(), other.Y(), other.Z())
}

// Tup3FromSlice creates a Tup3 from a slice, which must have exactly three elements.
func Tup3FromSlice[T any](values []T) (*Tup3[T], error) {
	if err := errors.CheckLength(arity3, len(values)); err != nil {
		return nil, err
	}

	return NewTup3(values[0], values[1], values[2]), nil
}

func (t *Tup3[T]) X() T { return t.c[0] } //nolint:ireturn

func (t *Tup3[T]) Y() T { return t.c[1] } //nolint:ireturn

func (t *Tup3[T]) Z() T { return t.c[2] } //nolint:ireturn

func (t *Tup3[T]) Len() int { return arity3 }

func (t *Tup3[T]) Get(i int) T { //nolint:ireturn
	return get(t.c[:], i)
}

func (t *Tup3[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c[:], i)
}

func (t *Tup3[T]) SetX(x T) *Tup3[T] {
	t.c[0] = x

	return t
}

func (t *Tup3[T]) SetY(y T) *Tup3[T] {
	t.c[1] = y

	return t
}

func (t *Tup3[T]) SetZ(z T) *Tup3[T] {
	t.c[2] = z

	return t
}

func (t *Tup3[T]) Set(x, y, z T) *Tup3[T] {
	return t.SetX(x).SetY(y).SetZ(z)
}

func (t *Tup3[T]) SetAt(i int, v T) *Tup3[T] {
	setAt(t.c[:], i, v)

	return t
}

func (t *Tup3[T]) TrySetAt(i int, v T) error {
	return trySetAt(t.c[:], i, v)
}

func (t *Tup3[T]) Fill(v T) *Tup3[T] {
	return t.Set(v, v, v)
}

func (t *Tup3[T]) SetFrom(other Readable[T]) *Tup3[T] {
	mustLength(arity3, other.Len())

	return t.Set(other.Get(0), other.Get(1), other.Get(2))
}

func (t *Tup3[T]) SetFrom3(other Readable3[T]) *Tup3[T] {
	return t.Set(other.X(), other.Y(), other.Z())
}

func (t *Tup3[T]) SetArray(a [3]T) *Tup3[T] {
	return t.Set(a[0], a[1], a[2])
}

func (t *Tup3[T]) SetSlice(values []T) *Tup3[T] {
	mustLength(arity3, len(values))

	return t.Set(values[0], values[1], values[2])
}

func (t *Tup3[T]) ToArray() []T {
	return copyInto(t.c[:], nil)
}

func (t *Tup3[T]) CopyInto(dst []T) []T {
	return copyInto(t.c[:], dst)
}

func (t *Tup3[T]) Array() [3]T {
	return t.c
}

func (t *Tup3[T]) All() iter.Seq2[int, T] {
	return all(t.c[:])
}

func (t *Tup3[T]) IsZero() bool {
	return allZero(t.c[:])
}

func (t *Tup3[T]) IsValid() bool {
	return noneNil(t.c[:])
}

func (t *Tup3[T]) Derive(x, y, z T) *Tup3[T] {
	return NewTup3(x, y, z)
}

func (t *Tup3[T]) DeriveFrom(other Readable[T]) *Tup3[T] {
	mustLength(arity3, other.Len())

	return t.Derive(other.Get(0), other.Get(1), other.Get(2))
}

func (t *Tup3[T]) DeriveScalar(v T) *Tup3[T] {
	return t.Derive(v, v, v)
}

func (t *Tup3[T]) DeriveArray(a [3]T) *Tup3[T] {
	return t.Derive(a[0], a[1], a[2])
}

func (t *Tup3[T]) DeriveSlice(values []T) *Tup3[T] {
	mustLength(arity3, len(values))

	return t.Derive(values[0], values[1], values[2])
}

func (t *Tup3[T]) Freeze() ImmutableTup3[T] {
	return ImmutableTup3[T]{c: t.c}
}

func (t *Tup3[T]) String() string {
	return format(t.c[:], true)
}

func (t *Tup3[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c[:])
}

func (t Tup3[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.c[:])
}

func (t *Tup3[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, arity3)
	if err != nil {
		return err
	}

	t.SetSlice(values)

	return nil
}

func (t Tup3[T]) MarshalYAML() (any, error) {
	return t.c[:], nil
}

func (t *Tup3[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, arity3)
	if err != nil {
		return err
	}

	t.SetSlice(values)

	return nil
}

// ImmutableTup3 is the immutable counterpart of Tup3.
type ImmutableTup3[T any] struct {
	c [arity3]T
}

func NewImmutableTup3[T any](x, y, z T) ImmutableTup3[T] {
	return ImmutableTup3[T]{c: [arity3]T{x, y, z}}
}

func NewImmutableTup3Scalar[T any](v T) ImmutableTup3[T] {
	return NewImmutableTup3(v, v, v)
}

func NewImmutableTup3Array[T any](a [3]T) ImmutableTup3[T] {
	return ImmutableTup3[T]{c: a}
}

func NewImmutableTup3From[T any](other Readable3[T]) ImmutableTup3[T] {
	return NewImmutableTup3(other.X(), other.Y(), other.Z())
}

func ImmutableTup3FromSlice[T any](values []T) (ImmutableTup3[T], error) {
	if err := errors.CheckLength(arity3, len(values)); err != nil {
		return ImmutableTup3[T]{}, err
	}

	return NewImmutableTup3(values[0], values[1], values[2]), nil
}

func (t ImmutableTup3[T]) X() T { return t.c[0] } //nolint:ireturn

func (t ImmutableTup3[T]) Y() T { return t.c[1] } //nolint:ireturn

func (t ImmutableTup3[T]) Z() T { return t.c[2] } //nolint:ireturn

func (t ImmutableTup3[T]) Len() int { return arity3 }

func (t ImmutableTup3[T]) Get(i int) T { //nolint:ireturn
	return get(t.c[:], i)
}

func (t ImmutableTup3[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c[:], i)
}

func (t ImmutableTup3[T]) ToArray() []T {
	return copyInto(t.c[:], nil)
}

func (t ImmutableTup3[T]) CopyInto(dst []T) []T {
	return copyInto(t.c[:], dst)
}

func (t ImmutableTup3[T]) Array() [3]T {
	return t.c
}

func (t ImmutableTup3[T]) All() iter.Seq2[int, T] {
	return all(t.c[:])
}

func (t ImmutableTup3[T]) IsZero() bool {
	return allZero(t.c[:])
}

func (t ImmutableTup3[T]) IsValid() bool {
	return noneNil(t.c[:])
}

func (t ImmutableTup3[T]) With(i int, v T) ImmutableTup3[T] {
	setAt(t.c[:], i, v)

	return t
}

func (t ImmutableTup3[T]) WithX(x T) ImmutableTup3[T] {
	return t.With(0, x)
}

func (t ImmutableTup3[T]) WithY(y T) ImmutableTup3[T] {
	return t.With(1, y)
}

func (t ImmutableTup3[T]) WithZ(z T) ImmutableTup3[T] {
	return t.With(2, z)
}

func (t ImmutableTup3[T]) Derive(x, y, z T) ImmutableTup3[T] {
	return NewImmutableTup3(x, y, z)
}

func (t ImmutableTup3[T]) DeriveFrom(other Readable[T]) ImmutableTup3[T] {
	mustLength(arity3, other.Len())

	return t.Derive(other.Get(0), other.Get(1), other.Get(2))
}

func (t ImmutableTup3[T]) DeriveScalar(v T) ImmutableTup3[T] {
	return t.Derive(v, v, v)
}

func (t ImmutableTup3[T]) DeriveArray(a [3]T) ImmutableTup3[T] {
	return t.Derive(a[0], a[1], a[2])
}

func (t ImmutableTup3[T]) DeriveSlice(values []T) ImmutableTup3[T] {
	mustLength(arity3, len(values))

	return t.Derive(values[0], values[1], values[2])
}

func (t ImmutableTup3[T]) Thaw() *Tup3[T] {
	return &Tup3[T]{c: t.c}
}

func (t ImmutableTup3[T]) String() string {
	return format(t.c[:], true)
}

func (t ImmutableTup3[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c[:])
}

func (t ImmutableTup3[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.c[:])
}

func (t *ImmutableTup3[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, arity3)
	if err != nil {
		return err
	}

	*t = NewImmutableTup3(values[0], values[1], values[2])

	return nil
}

func (t ImmutableTup3[T]) MarshalYAML() (any, error) {
	return t.c[:], nil
}

func (t *ImmutableTup3[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, arity3)
	if err != nil {
		return err
	}

	*t = NewImmutableTup3(values[0], values[1], values[2])

	return nil
}
