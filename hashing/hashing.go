// Package hashing lets values feed themselves into a hash.Hash so that they
// can be fingerprinted and compared cheaply.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math"
	"strconv"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// ErrUnknownAlgorithm is returned by Lookup for names not in Algorithms.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	return hexDigest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 digest of the given Hashable as a
// hex-encoded string. Much faster than Sha256, not cryptographic.
func Xxh3(hashable Hashable) (string, error) {
	return hexDigest(xxh3.New(), hashable)
}

// XxHash64 returns the 64-bit xxHash digest of the given Hashable as a
// hex-encoded string.
func XxHash64(hashable Hashable) (string, error) {
	return hexDigest(xxhash.New64(), hashable)
}

// Algorithms names every HashFunc that can be picked at run time.
var Algorithms = map[string]HashFunc{ //nolint:gochecknoglobals
	"xxh3":     Xxh3,
	"xxhash64": XxHash64,
	"sha256":   Sha256,
}

// DefaultAlgorithm is the name used when no algorithm is chosen.
const DefaultAlgorithm = "xxh3"

// Lookup returns the HashFunc registered under name. An empty name
// selects DefaultAlgorithm.
func Lookup(name string) (HashFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultAlgorithm
	}

	fn, ok := Algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return fn, nil
}

func hexDigest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Value writes a single value to h. Numbers are written as fixed-width
// little-endian bytes, strings and byte slices verbatim, and anything
// implementing Hashable delegates to UpdateHash.
func Value(h hash.Hash, value any) error { //nolint:cyclop,funlen
	var buf [8]byte

	switch typedValue := value.(type) {
	case Hashable:
		return typedValue.UpdateHash(h)
	case string:
		if err := Separator(h, len(typedValue)); err != nil {
			return err
		}

		return write(h, []byte(typedValue))
	case []byte:
		if err := Separator(h, len(typedValue)); err != nil {
			return err
		}

		return write(h, typedValue)
	case bool:
		if typedValue {
			buf[0] = 1
		}

		return write(h, buf[:1])
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue)) //nolint:gosec
	case int8:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue)) //nolint:gosec
	case int16:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue)) //nolint:gosec
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue)) //nolint:gosec
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue)) //nolint:gosec
	case uint:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue))
	case uint8:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue))
	case uint16:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue))
	case uint32:
		binary.LittleEndian.PutUint64(buf[:], uint64(typedValue))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], typedValue)
	case float32:
		binary.LittleEndian.PutUint64(buf[:], floatBits(float64(typedValue)))
	case float64:
		binary.LittleEndian.PutUint64(buf[:], floatBits(typedValue))
	case fmt.Stringer:
		return Value(h, typedValue.String())
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, typedValue)
	}

	return write(h, buf[:])
}

// floatBits folds -0 into +0 so that values comparing equal hash equally.
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}

	return math.Float64bits(f)
}

// Separator writes a length-prefixed boundary marker so that adjacent
// variable-width values can't collide ("ab","c" vs "a","bc").
func Separator(h hash.Hash, n int) error {
	return write(h, []byte(strconv.Itoa(n)+":"))
}

func write(h hash.Hash, data []byte) error {
	_, err := h.Write(data)

	return err
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	return write(h, []byte(s))
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	return write(h, b)
}

type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	return Value(h, float64(f))
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return Value(h, int64(i))
}
