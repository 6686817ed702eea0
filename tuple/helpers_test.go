package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	_ ReadWritable[int, *Tup2[int]] = (*Tup2[int])(nil)
	_ ReadWritable[int, *Tup3[int]] = (*Tup3[int])(nil)
	_ ReadWritable[int, *Tup4[int]] = (*Tup4[int])(nil)
	_ ReadWritable[int, *TupN[int]] = (*TupN[int])(nil)

	_ Deriver[int, *Tup2[int]]         = (*Tup2[int])(nil)
	_ Deriver[int, ImmutableTup2[int]] = ImmutableTup2[int]{}
	_ Deriver[int, ImmutableTup3[int]] = ImmutableTup3[int]{}
	_ Deriver[int, ImmutableTup4[int]] = ImmutableTup4[int]{}
	_ Deriver[int, ImmutableTupN[int]] = ImmutableTupN[int]{}

	_ Readable2[int] = ImmutableTup2[int]{}
	_ Readable3[int] = (*Tup3[int])(nil)
	_ Readable4[int] = ImmutableTup4[int]{}
	_ Readable[int]  = ImmutableTupN[int]{}
)

// panicErr runs f and returns the error it panicked with, failing the test
// if it didn't panic or panicked with something else.
func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		var ok bool

		err, ok = recovered.(error)
		require.True(t, ok, "panic value %v is not an error", recovered)
	}()

	f()

	return nil
}
