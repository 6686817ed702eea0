package tuple

import (
	"testing"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTup3(t *testing.T) {
	t.Parallel()

	tup := NewTup3(1, 2, 3)

	assert.Equal(t, 3, tup.Len())
	assert.Equal(t, 1, tup.X())
	assert.Equal(t, 2, tup.Y())
	assert.Equal(t, 3, tup.Z())
	assert.Equal(t, "tup3(x=1, y=2, z=3)", tup.String())

	tup.SetZ(30).SetAt(0, 10)
	assert.Equal(t, []int{10, 2, 30}, tup.ToArray())

	err := panicErr(t, func() { tup.Get(3) })
	require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

	err = panicErr(t, func() { tup.SetSlice([]int{1, 2}) })
	require.ErrorIs(t, err, errors.ErrLengthMismatch)

	assert.Equal(t, [3]int{4, 4, 4}, tup.Fill(4).Array())
	assert.Equal(t, [3]int{7, 8, 9}, tup.SetArray([3]int{7, 8, 9}).Array())
	assert.Equal(t, [3]int{1, 1, 1}, tup.SetFrom(NewTupNScalar(3, 1)).Array())
	assert.Equal(t, [3]int{5, 6, 7}, tup.SetFrom3(NewImmutableTup3(5, 6, 7)).Array())
	assert.True(t, NewTup3Scalar(0).IsZero())
}

func TestTup3_DeriveAndFreeze(t *testing.T) {
	t.Parallel()

	src := NewTup3Array([3]float32{1, 2, 3})

	assert.Equal(t, src.Array(), src.DeriveSlice(src.ToArray()).Array())
	assert.Equal(t, [3]float32{0, 0, 0}, src.DeriveScalar(0).Array())
	assert.Equal(t, [3]float32{1, 2, 3}, NewTup3From(src).Array())

	frozen := src.Freeze()
	assert.Equal(t, [3]float32{1, 2, 9}, frozen.WithZ(9).Array())
	assert.Equal(t, [3]float32{1, 2, 3}, frozen.Array())
	assert.Equal(t, [3]float32{1, 2, 3}, frozen.Thaw().Array())

	fromSlice, err := Tup3FromSlice([]float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, src.Array(), fromSlice.Array())

	_, err = ImmutableTup3FromSlice([]float32{1})
	require.ErrorIs(t, err, errors.ErrLengthMismatch)
}

func TestTup4(t *testing.T) {
	t.Parallel()

	tup := NewTup4[int8](1, 2, 3, 4)

	assert.Equal(t, int8(4), tup.W())
	assert.Equal(t, "tup4(x=1, y=2, z=3, w=4)", tup.String())
	assert.Equal(t, []int8{1, 2, 3, 4}, tup.ToArray())

	tup.SetW(-4).SetY(-2)
	assert.Equal(t, [4]int8{1, -2, 3, -4}, tup.Array())

	_, err := tup.TryGet(4)
	require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	require.ErrorIs(t, tup.TrySetAt(-1, 0), errors.ErrIndexOutOfRange)

	other := NewImmutableTup4[int8](5, 6, 7, 8)
	assert.Equal(t, other.ToArray(), tup.SetFrom4(other).ToArray())
	assert.Equal(t, other.ToArray(), NewTup4From(other).ToArray())
	assert.True(t, IsZeroWithMargin[int8](NewTup4Scalar[int8](2), 2))
}

func TestImmutableTup4(t *testing.T) {
	t.Parallel()

	tup := NewImmutableTup4("a", "b", "c", "d")

	assert.Equal(t, "tup4(x=a, y=b, z=c, w=d)", tup.String())
	assert.Equal(t, [4]string{"a", "b", "c", "z"}, tup.WithW("z").Array())
	assert.Equal(t, [4]string{"q", "q", "q", "q"}, tup.DeriveScalar("q").Array())
	assert.Equal(t, [4]string{"1", "2", "3", "4"}, tup.Derive("1", "2", "3", "4").Array())
	assert.Equal(t, [4]string{"a", "b", "c", "d"}, tup.Array())

	err := panicErr(t, func() { tup.DeriveFrom(NewTup2("x", "y")) })
	require.ErrorIs(t, err, errors.ErrLengthMismatch)
}
