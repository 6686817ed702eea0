package tuple

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type placement struct {
	Position ImmutableTup3[float64] `json:"position" yaml:"position"`
	Scale    *Tup2[float64]         `json:"scale"    yaml:"scale"`
	Weights  TupN[int]              `json:"weights"  yaml:"weights"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes as a flat array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(NewTup2(1.5, 2.0))
		require.NoError(t, err)
		assert.JSONEq(t, `[1.5, 2]`, string(data))

		data, err = json.Marshal(NewTupN[int]())
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("struct fields", func(t *testing.T) {
		t.Parallel()

		in := placement{
			Position: NewImmutableTup3(1.0, 2.0, 3.0),
			Scale:    NewTup2(0.5, 0.5),
			Weights:  *NewTupN(4, 5, 6, 7),
		}

		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"position":[1,2,3],"scale":[0.5,0.5],"weights":[4,5,6,7]}`, string(data))

		var out placement
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in.Position.Array(), out.Position.Array())
		assert.Equal(t, in.Scale.Array(), out.Scale.Array())
		assert.Equal(t, in.Weights.ToArray(), out.Weights.ToArray())
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		t.Parallel()

		var tup Tup2[int]
		require.ErrorIs(t, json.Unmarshal([]byte(`[1,2,3]`), &tup), errors.ErrLengthMismatch)

		var frozen ImmutableTup4[int]
		require.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &frozen), errors.ErrLengthMismatch)

		sized := NewTupNZero[int](2)
		require.ErrorIs(t, json.Unmarshal([]byte(`[1,2,3]`), sized), errors.ErrLengthMismatch)
		assert.Equal(t, []int{0, 0}, sized.ToArray())
	})

	t.Run("empty TupN adopts the decoded length", func(t *testing.T) {
		t.Parallel()

		var tup TupN[int]
		require.NoError(t, json.Unmarshal([]byte(`[1,2,3]`), &tup))
		assert.Equal(t, 3, tup.Len())

		var frozen ImmutableTupN[string]
		require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &frozen))
		assert.Equal(t, []string{"a", "b"}, frozen.ToArray())
	})

	t.Run("null leaves the value unchanged", func(t *testing.T) {
		t.Parallel()

		tup := NewTup2(1, 2)
		require.NoError(t, json.Unmarshal([]byte(`null`), tup))
		assert.Equal(t, [2]int{1, 2}, tup.Array())

		frozen := NewImmutableTup4(1, 2, 3, 4)
		require.NoError(t, json.Unmarshal([]byte(`null`), &frozen))
		assert.Equal(t, [4]int{1, 2, 3, 4}, frozen.Array())

		var empty TupN[int]
		require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
		assert.Equal(t, 0, empty.Len())

		out := placement{Position: NewImmutableTup3(1.0, 2.0, 3.0), Weights: *NewTupN(7, 8)}
		require.NoError(t, json.Unmarshal([]byte(`{"position":null,"scale":null,"weights":null}`), &out))
		assert.Equal(t, [3]float64{1, 2, 3}, out.Position.Array())
		assert.Nil(t, out.Scale)
		assert.Equal(t, []int{7, 8}, out.Weights.ToArray())
	})

	t.Run("type errors surface", func(t *testing.T) {
		t.Parallel()

		var tup Tup2[int]
		require.Error(t, json.Unmarshal([]byte(`["a","b"]`), &tup))
	})
}

func TestYAML(t *testing.T) {
	t.Parallel()

	t.Run("encodes as a sequence", func(t *testing.T) {
		t.Parallel()

		data, err := yaml.Marshal(NewTup3(1, 2, 3))
		require.NoError(t, err)
		assert.Equal(t, "- 1\n- 2\n- 3\n", string(data))
	})

	t.Run("struct fields", func(t *testing.T) {
		t.Parallel()

		doc := `
position: [1, 2, 3]
scale: [0.5, 0.25]
weights: [9, 8]
`

		var out placement
		require.NoError(t, yaml.Unmarshal([]byte(doc), &out))
		assert.Equal(t, [3]float64{1, 2, 3}, out.Position.Array())
		assert.Equal(t, [2]float64{0.5, 0.25}, out.Scale.Array())
		assert.Equal(t, []int{9, 8}, out.Weights.ToArray())

		data, err := yaml.Marshal(out)
		require.NoError(t, err)

		var again placement
		require.NoError(t, yaml.Unmarshal(data, &again))
		assert.Equal(t, out.Position.Array(), again.Position.Array())
		assert.Equal(t, out.Weights.ToArray(), again.Weights.ToArray())
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		t.Parallel()

		var tup ImmutableTup2[int]
		require.ErrorIs(t, yaml.Unmarshal([]byte(`[1, 2, 3]`), &tup), errors.ErrLengthMismatch)

		var four Tup4[int]
		require.ErrorIs(t, yaml.Unmarshal([]byte(`[1, 2, 3]`), &four), errors.ErrLengthMismatch)
	})
}
