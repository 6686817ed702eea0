package tuple

import (
	"hash"
	"iter"
	"slices"

	"github.com/amp-labs/amp-tuple/errors"
	"gopkg.in/yaml.v3"
)

// TupN is a mutable tuple whose arity is chosen at construction. The
// length never changes afterwards: every bulk setter requires input of
// exactly Len() elements.
//
// The zero value is a tuple of length 0. It adopts the length of the first
// document decoded into it (see UnmarshalJSON).
type TupN[T any] struct {
	c []T
}

// NewTupN creates a tuple holding a copy of values.
func NewTupN[T any](values ...T) *TupN[T] {
	return &TupN[T]{c: cloneOrEmpty(values)}
}

// NewTupNZero creates a tuple of n zero-valued components.
func NewTupNZero[T any](n int) *TupN[T] {
	return &TupN[T]{c: make([]T, n)}
}

// NewTupNScalar creates a tuple of n components all set to v.
func NewTupNScalar[T any](n int, v T) *TupN[T] {
	return NewTupNZero[T](n).Fill(v)
}

// NewTupNFrom copies any tuple, keeping its length.
func NewTupNFrom[T any](other Readable[T]) *TupN[T] {
	return &TupN[T]{c: readAll(other)}
}

func (t *TupN[T]) Len() int { return len(t.c) }

func (t *TupN[T]) Get(i int) T { //nolint:ireturn
	return get(t.c, i)
}

func (t *TupN[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c, i)
}

func (t *TupN[T]) SetAt(i int, v T) *TupN[T] {
	setAt(t.c, i, v)

	return t
}

func (t *TupN[T]) TrySetAt(i int, v T) error {
	return trySetAt(t.c, i, v)
}

// SetAll assigns every component explicitly. It panics with an
// *errors.LengthError unless len(values) == Len().
func (t *TupN[T]) SetAll(values ...T) *TupN[T] {
	mustLength(len(t.c), len(values))
	copy(t.c, values)

	return t
}

func (t *TupN[T]) Fill(v T) *TupN[T] {
	for i := range t.c {
		t.c[i] = v
	}

	return t
}

func (t *TupN[T]) SetFrom(other Readable[T]) *TupN[T] {
	mustLength(len(t.c), other.Len())

	return t.SetAll(readAll(other)...)
}

func (t *TupN[T]) SetSlice(values []T) *TupN[T] {
	return t.SetAll(values...)
}

func (t *TupN[T]) ToArray() []T {
	return copyInto(t.c, nil)
}

func (t *TupN[T]) CopyInto(dst []T) []T {
	return copyInto(t.c, dst)
}

func (t *TupN[T]) All() iter.Seq2[int, T] {
	return all(t.c)
}

func (t *TupN[T]) IsZero() bool {
	return allZero(t.c)
}

func (t *TupN[T]) IsValid() bool {
	return noneNil(t.c)
}

// Derive returns a new tuple of the same length holding values.
// It panics with an *errors.LengthError unless len(values) == Len().
func (t *TupN[T]) Derive(values ...T) *TupN[T] {
	mustLength(len(t.c), len(values))

	return NewTupN(values...)
}

func (t *TupN[T]) DeriveFrom(other Readable[T]) *TupN[T] {
	return t.Derive(readAll(other)...)
}

func (t *TupN[T]) DeriveScalar(v T) *TupN[T] {
	return NewTupNScalar(len(t.c), v)
}

func (t *TupN[T]) DeriveSlice(values []T) *TupN[T] {
	return t.Derive(values...)
}

func (t *TupN[T]) Freeze() ImmutableTupN[T] {
	return ImmutableTupN[T]{c: slices.Clone(t.c)}
}

func (t *TupN[T]) String() string {
	return format(t.c, false)
}

func (t *TupN[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c)
}

func (t TupN[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(cloneOrEmpty(t.c))
}

// UnmarshalJSON decodes a JSON array. A zero-length tuple takes on the
// decoded length; any other tuple requires the lengths to match.
func (t *TupN[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, t.decodeLength())
	if err != nil {
		return err
	}

	t.adopt(values)

	return nil
}

func (t TupN[T]) MarshalYAML() (any, error) {
	return cloneOrEmpty(t.c), nil
}

// UnmarshalYAML follows the same length rules as UnmarshalJSON.
func (t *TupN[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, t.decodeLength())
	if err != nil {
		return err
	}

	t.adopt(values)

	return nil
}

func (t *TupN[T]) decodeLength() int {
	if len(t.c) == 0 {
		return -1
	}

	return len(t.c)
}

func (t *TupN[T]) adopt(values []T) {
	if len(t.c) == 0 {
		t.c = cloneOrEmpty(values)

		return
	}

	copy(t.c, values)
}

// ImmutableTupN is the immutable counterpart of TupN. Its backing slice is
// never handed out; ToArray and CopyInto return copies.
type ImmutableTupN[T any] struct {
	c []T
}

func NewImmutableTupN[T any](values ...T) ImmutableTupN[T] {
	return ImmutableTupN[T]{c: cloneOrEmpty(values)}
}

func NewImmutableTupNScalar[T any](n int, v T) ImmutableTupN[T] {
	return NewTupNScalar(n, v).Freeze()
}

func NewImmutableTupNFrom[T any](other Readable[T]) ImmutableTupN[T] {
	return ImmutableTupN[T]{c: readAll(other)}
}

func (t ImmutableTupN[T]) Len() int { return len(t.c) }

func (t ImmutableTupN[T]) Get(i int) T { //nolint:ireturn
	return get(t.c, i)
}

func (t ImmutableTupN[T]) TryGet(i int) (T, error) { //nolint:ireturn
	return tryGet(t.c, i)
}

func (t ImmutableTupN[T]) ToArray() []T {
	return copyInto(t.c, nil)
}

func (t ImmutableTupN[T]) CopyInto(dst []T) []T {
	return copyInto(t.c, dst)
}

func (t ImmutableTupN[T]) All() iter.Seq2[int, T] {
	return all(t.c)
}

func (t ImmutableTupN[T]) IsZero() bool {
	return allZero(t.c)
}

func (t ImmutableTupN[T]) IsValid() bool {
	return noneNil(t.c)
}

// With returns a copy with component i replaced.
func (t ImmutableTupN[T]) With(i int, v T) ImmutableTupN[T] {
	c := cloneOrEmpty(t.c)
	setAt(c, i, v)

	return ImmutableTupN[T]{c: c}
}

func (t ImmutableTupN[T]) Derive(values ...T) ImmutableTupN[T] {
	mustLength(len(t.c), len(values))

	return NewImmutableTupN(values...)
}

func (t ImmutableTupN[T]) DeriveFrom(other Readable[T]) ImmutableTupN[T] {
	return t.Derive(readAll(other)...)
}

func (t ImmutableTupN[T]) DeriveScalar(v T) ImmutableTupN[T] {
	return NewImmutableTupNScalar(len(t.c), v)
}

func (t ImmutableTupN[T]) DeriveSlice(values []T) ImmutableTupN[T] {
	return t.Derive(values...)
}

func (t ImmutableTupN[T]) Thaw() *TupN[T] {
	return NewTupN(t.c...)
}

func (t ImmutableTupN[T]) String() string {
	return format(t.c, false)
}

func (t ImmutableTupN[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, t.c)
}

func (t ImmutableTupN[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(cloneOrEmpty(t.c))
}

func (t *ImmutableTupN[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	values, err := decodeJSON[T](data, -1)
	if err != nil {
		return err
	}

	*t = NewImmutableTupN(values...)

	return nil
}

func (t ImmutableTupN[T]) MarshalYAML() (any, error) {
	return cloneOrEmpty(t.c), nil
}

func (t *ImmutableTupN[T]) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAML[T](node, -1)
	if err != nil {
		return err
	}

	*t = NewImmutableTupN(values...)

	return nil
}

// FromSlice builds a TupN of exactly want components, failing with an
// *errors.LengthError otherwise.
func FromSlice[T any](want int, values []T) (*TupN[T], error) {
	if err := errors.CheckLength(want, len(values)); err != nil {
		return nil, err
	}

	return NewTupN(values...), nil
}
