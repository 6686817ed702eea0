package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		idx     int
		length  int
		wantErr bool
	}{
		{name: "first component", idx: 0, length: 2},
		{name: "last component", idx: 1, length: 2},
		{name: "one past the end", idx: 2, length: 2, wantErr: true},
		{name: "negative", idx: -1, length: 2, wantErr: true},
		{name: "empty sequence", idx: 0, length: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckIndex(tt.idx, tt.length)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, ErrIndexOutOfRange)

			var idxErr *IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.idx, idxErr.Index)
			assert.Equal(t, tt.length, idxErr.Len)
		})
	}
}

func TestIndexError_Error(t *testing.T) {
	t.Parallel()

	err := &IndexError{Index: 5, Len: 2}

	assert.Equal(t, "index out of range: index 5 not in [0, 2)", err.Error())
}

func TestCheckLength(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckLength(3, 3))

	err := CheckLength(3, 1)
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, "length mismatch: want 3 components, got 1", err.Error())

	var lenErr *LengthError
	require.True(t, As(err, &lenErr))
	assert.Equal(t, 3, lenErr.Want)
	assert.Equal(t, 1, lenErr.Got)
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)
		c.Addf(nil, "component %d", 1)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})

	t.Run("addf wraps the error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Addf(ErrNilComponent, "component %d", 1)

		err := c.GetError()
		require.ErrorIs(t, err, ErrNilComponent)
		assert.Equal(t, "nil component: component 1", err.Error())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("returns joined errors for multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(&IndexError{Index: 3, Len: 2})
		c.Add(&LengthError{Want: 2, Got: 4})

		err := c.GetError()

		require.Error(t, err)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("returns nil after clear", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error")) //nolint:err113
		c.Clear()

		assert.False(t, c.HasError())
		assert.NoError(t, c.GetError())
	})
}
