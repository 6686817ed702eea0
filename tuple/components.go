package tuple

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/zero"
	"gopkg.in/yaml.v3"
)

// Component labels for the named arities.
var axisNames = [...]string{"x", "y", "z", "w"} //nolint:gochecknoglobals

// The helpers below operate on the backing storage of a tuple, so each
// concrete type only has to hand over a slice of its array.

func get[T any](c []T, idx int) T { //nolint:ireturn
	if err := errors.CheckIndex(idx, len(c)); err != nil {
		panic(err)
	}

	return c[idx]
}

func tryGet[T any](c []T, idx int) (T, error) { //nolint:ireturn
	if err := errors.CheckIndex(idx, len(c)); err != nil {
		return zero.Value[T](), err
	}

	return c[idx], nil
}

func setAt[T any](c []T, idx int, v T) {
	if err := trySetAt(c, idx, v); err != nil {
		panic(err)
	}
}

func trySetAt[T any](c []T, idx int, v T) error {
	if err := errors.CheckIndex(idx, len(c)); err != nil {
		return err
	}

	c[idx] = v

	return nil
}

// mustLength panics with a *errors.LengthError when got != want.
func mustLength(want, got int) {
	if err := errors.CheckLength(want, got); err != nil {
		panic(err)
	}
}

// readAll reads every component of r through Get.
func readAll[T any](r Readable[T]) []T {
	out := make([]T, r.Len())
	for i := range out {
		out[i] = r.Get(i)
	}

	return out
}

func copyInto[T any](c []T, dst []T) []T {
	if cap(dst) < len(c) {
		dst = make([]T, len(c))
	}

	dst = dst[:len(c)]
	copy(dst, c)

	return dst
}

func all[T any](c []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range c {
			if !yield(i, v) {
				return
			}
		}
	}
}

func allZero[T any](c []T) bool {
	for _, v := range c {
		if !zero.IsZero(v) {
			return false
		}
	}

	return true
}

func noneNil[T any](c []T) bool {
	for _, v := range c {
		if zero.IsNil(v) {
			return false
		}
	}

	return true
}

// format renders named components as "tup2(x=1, y=2)" and anonymous
// ones as "tup5(v0=1, v1=2, ...)".
func format[T any](c []T, named bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "tup%d(", len(c))

	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}

		if named && i < len(axisNames) {
			sb.WriteString(axisNames[i])
		} else {
			fmt.Fprintf(&sb, "v%d", i)
		}

		fmt.Fprintf(&sb, "=%v", v)
	}

	sb.WriteString(")")

	return sb.String()
}

// updateHash writes the arity followed by every component, so that
// tuples of different lengths never share a digest by accident.
func updateHash[T any](h hash.Hash, c []T) error {
	if err := hashing.Separator(h, len(c)); err != nil {
		return err
	}

	for i, v := range c {
		if err := hashing.Value(h, v); err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
	}

	return nil
}

// isNull reports whether data is the JSON literal null, which decoders
// treat as a no-op.
func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func marshalJSON[T any](c []T) ([]byte, error) {
	return json.Marshal(c)
}

// decodeJSON parses a JSON array of components. A negative want accepts
// any length.
func decodeJSON[T any](data []byte, want int) ([]T, error) {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}

	if want >= 0 {
		if err := errors.CheckLength(want, len(values)); err != nil {
			return nil, err
		}
	}

	return values, nil
}

// decodeYAML parses a YAML sequence of components. A negative want accepts
// any length.
func decodeYAML[T any](node *yaml.Node, want int) ([]T, error) {
	var values []T
	if err := node.Decode(&values); err != nil {
		return nil, err
	}

	if want >= 0 {
		if err := errors.CheckLength(want, len(values)); err != nil {
			return nil, err
		}
	}

	return values, nil
}

func cloneOrEmpty[T any](c []T) []T {
	if c == nil {
		return []T{}
	}

	return slices.Clone(c)
}
