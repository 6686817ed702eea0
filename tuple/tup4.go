package tuple

import (
	"hash"
	"iter"

	"github.com/amp-labs/amp-tuple/errors"
	"gopkg.in/yaml.v3"
)

const arity4 = 4

// Tup4 is a mutable tuple with x, y, z and w components.
type Tup4[T any] struct {
	c [arity4]T
}

func NewTup4[T any](x, y, z, w T) *Tup4[T] {
	return &Tup4[T]{c: [arity4]T{x, y, z, w}}
}

func NewTup4Scalar[T any](v T) *Tup4[T] {
	return NewTup4(v, v, v, v)
}

func NewTup4Array[T any](a [4]T) *Tup4[T] {
	return &Tup4[T]{c: a}
}

func NewTup4From[T any](other Readable4[T]) *Tup4[T] {
	return NewTup4(other.X(), other.Y(), other.Z(), other.W())
}

// Tup4FromSlice creates a Tup4 from a slice, which must have exactly four elements.
func Tup4FromSlice[T any](values []T) (*Tup4[T], error) {
	if err := errors.CheckLength(arity4, len(values)); err != nil {
		return nil, err
	}

	return NewTup4(values[0], values[1], values[2], values[3]), nil
}

func (t *Tup4[T]) X() T { return t.c[0] } //nolint:ireturn

func (t *Tup4[T]) Y() T { return t.c[1] } //nolint:ireturn

func (t *Tup4[T]) Z() T { return t.c[2] } //nolint:ireturn

func (t *Tup4[T]) W() T { return t.c[3] } //nolint:ireturn

func (t *Tup4[T]) Len() int { return arity4 }

func (t *Tup4[T]) Get(i int) T { //nolint:ireturn
	return get(t.c[:], i)
}

func (t *Tup4[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c[:], i)
}

func (t *Tup4[T]) SetX(x T) *Tup4[T] {
	t.c[0] = x

	return t
}

func (t *Tup4[T]) SetY(y T) *Tup4[T] {
	t.c[1] = y

	return t
}

func (t *Tup4[T]) SetZ(z T) *Tup4[T] {
	t.c[2] = z

	return t
}

func (t *Tup4[T]) SetW(w T) *Tup4[T] {
	t.c[3] = w

	return t
}

func (t *Tup4[T]) Set(x, y, z, w T) *Tup4[T] {
	return t.SetX(x).SetY(y).SetZ(z).SetW(w)
}

func (t *Tup4[T]) SetAt(i int, v T) *Tup4[T] {
	setAt(t.c[:], i, v)

	return t
}

func (t *Tup4[T]) TrySetAt(i int, v T) error {
	return trySetAt(t.c[:], i, v)
}

func (t *Tup4[T]) Fill(v T) *Tup4[T] {
	return t.Set(v, v, v, v)
}

func (t *Tup4[T]) SetFrom(other Readable[T]) *Tup4[T] {
	mustLength(arity4, other.Len())

	return t.Set(other.Get(0), other.Get(1), other.Get(2), other.Get(3))
}

func (t *Tup4[T]) SetFrom4(other Readable4[T]) *Tup4[T] {
	return t.Set(other.X(), other.Y(), other.Z(), other.W())
}

func (t *Tup4[T]) SetArray(a [4]T) *Tup4[T] {
	return t.Set(a[0], a[1], a[2], a[3])
}

func (t *Tup4[T]) SetSlice(values []T) *Tup4[T] {
	mustLength(arity4, len(values))

	return t.Set(values[0], values[1], values[2], values[3])
}

func (t *Tup4[T]) ToArray() []T {
	return copyInto(t.c[:], nil)
}

func (t *Tup4[T]) CopyInto(dst []T) []T {
	return copyInto(t.c[:], dst)
}

func (t *Tup4[T]) Array() [4]T {
	return t.c
}

func (t *Tup4[T]) All() iter.Seq2[int, T] {
	return all(t.c[:])
}

func (t *Tup4[T]) IsZero() bool {
	return allZero(t.c[:])
}

func (t *Tup4[T]) IsValid() bool {
	return noneNil(t.c[:])
}

func (t *Tup4[T]) Derive(x, y, z, w T) *Tup4[T] {
	return NewTup4(x, y, z, w)
}

func (t *Tup4[T]) DeriveFrom(other Readable[T]) *Tup4[T] {
	mustLength(arity4, other.Len())

	return t.Derive(other.Get(0), other.Get(1), other.Get(2), other.Get(3))
}

func (t *Tup4[T]) DeriveScalar(v T) *Tup4[T] {
	return t.Derive(v, v, v, v)
}

func (t *Tup4[T]) DeriveArray(a [4]T) *Tup4[T] {
	return t.Derive(a[0], a[1], a[2], a[3])
}

func (t *Tup4[T]) DeriveSlice(values []T) *Tup4[T] {
	mustLength(arity4, len(values))

	return t.Derive(values[0], values[1], values[2], values[3])
}

func (t *Tup4[T]) Freeze() ImmutableTup4[T] {
	return ImmutableTup4[T]{c: t.c}
}

func (t *Tup4[T]) String() string {
	return format(t.c[:], true)
}

func (t *Tup4[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c[:])
}

func (t Tup4[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.c[:])
}

func (t *Tup4[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, arity4)
	if err != nil {
		return err
	}

	t.SetSlice(values)

	return nil
}

func (t Tup4[T]) MarshalYAML() (any, error) {
	return t.c[:], nil
}

func (t *Tup4[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, arity4)
	if err != nil {
		return err
	}

	t.SetSlice(values)

	return nil
}

// ImmutableTup4 is the immutable counterpart of Tup4.
type ImmutableTup4[T any] struct {
	c [arity4]T
}

func NewImmutableTup4[T any](x, y, z, w T) ImmutableTup4[T] {
	return ImmutableTup4[T]{c: [arity4]T{x, y, z, w}}
}

func NewImmutableTup4Scalar[T any](v T) ImmutableTup4[T] {
	return NewImmutableTup4(v, v, v, v)
}

func NewImmutableTup4Array[T any](a [4]T) ImmutableTup4[T] {
	return ImmutableTup4[T]{c: a}
}

func NewImmutableTup4From[T any](other Readable4[T]) ImmutableTup4[T] {
	return NewImmutableTup4(other.X(), other.Y(), other.Z(), other.W())
}

func ImmutableTup4FromSlice[T any](values []T) (ImmutableTup4[T], error) {
	if err := errors.CheckLength(arity4, len(values)); err != nil {
		return ImmutableTup4[T]{}, err
	}

	return NewImmutableTup4(values[0], values[1], values[2], values[3]), nil
}

func (t ImmutableTup4[T]) X() T { return t.c[0] } //nolint:ireturn

func (t ImmutableTup4[T]) Y() T { return t.c[1] } //nolint:ireturn

func (t ImmutableTup4[T]) Z() T { return t.c[2] } //nolint:ireturn

func (t ImmutableTup4[T]) W() T { return t.c[3] } //nolint:ireturn

func (t ImmutableTup4[T]) Len() int { return arity4 }

func (t ImmutableTup4[T]) Get(i int) T { //nolint:ireturn
	return get(t.c[:], i)
}

func (t ImmutableTup4[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c[:], i)
}

func (t ImmutableTup4[T]) ToArray() []T {
	return copyInto(t.c[:], nil)
}

func (t ImmutableTup4[T]) CopyInto(dst []T) []T {
	return copyInto(t.c[:], dst)
}

func (t ImmutableTup4[T]) Array() [4]T {
	return t.c
}

func (t ImmutableTup4[T]) All() iter.Seq2[int, T] {
	return all(t.c[:])
}

func (t ImmutableTup4[T]) IsZero() bool {
	return allZero(t.c[:])
}

func (t ImmutableTup4[T]) IsValid() bool {
	return noneNil(t.c[:])
}

func (t ImmutableTup4[T]) With(i int, v T) ImmutableTup4[T] {
	setAt(t.c[:], i, v)

	return t
}

func (t ImmutableTup4[T]) WithX(x T) ImmutableTup4[T] {
	return t.With(0, x)
}

func (t ImmutableTup4[T]) WithY(y T) ImmutableTup4[T] {
	return t.With(1, y)
}

func (t ImmutableTup4[T]) WithZ(z T) ImmutableTup4[T] {
	return t.With(2, z)
}

func (t ImmutableTup4[T]) WithW(w T) ImmutableTup4[T] {
	return t.With(3, w)
}

func (t ImmutableTup4[T]) Derive(x, y, z, w T) ImmutableTup4[T] {
	return NewImmutableTup4(x, y, z, w)
}

func (t ImmutableTup4[T]) DeriveFrom(other Readable[T]) ImmutableTup4[T] {
	mustLength(arity4, other.Len())

	return t.Derive(other.Get(0), other.Get(1), other.Get(2), other.Get(3))
}

func (t ImmutableTup4[T]) DeriveScalar(v T) ImmutableTup4[T] {
	return t.Derive(v, v, v, v)
}

func (t ImmutableTup4[T]) DeriveArray(a [4]T) ImmutableTup4[T] {
	return t.Derive(a[0], a[1], a[2], a[3])
}

func (t ImmutableTup4[T]) DeriveSlice(values []T) ImmutableTup4[T] {
	mustLength(arity4, len(values))

	return t.Derive(values[0], values[1], values[2], values[3])
}

func (t ImmutableTup4[T]) Thaw() *Tup4[T] {
	return &Tup4[T]{c: t.c}
}

func (t ImmutableTup4[T]) String() string {
	return format(t.c[:], true)
}

func (t ImmutableTup4[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c[:])
}

func (t ImmutableTup4[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.c[:])
}

func (t *ImmutableTup4[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, arity4)
	if err != nil {
		return err
	}

	*t = NewImmutableTup4(values[0], values[1], values[2], values[3])

	return nil
}

func (t ImmutableTup4[T]) MarshalYAML() (any, error) {
	return t.c[:], nil
}

func (t *ImmutableTup4[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, arity4)
	if err != nil {
		return err
	}

	*t = NewImmutableTup4(values[0], values[1], values[2], values[3])

	return nil
}
