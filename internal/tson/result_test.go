package tson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("success carries the value tree", func(t *testing.T) {
		res := Check(`{"a": {{ hello }}, "n": 2}`)
		require.True(t, res.Success)
		assert.Empty(t, res.Error)

		data, ok := res.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, Stub, data["a"])
		assert.Equal(t, json.Number("2"), data["n"])
	})

	t.Run("failure carries the taxonomy message", func(t *testing.T) {
		res := Check(`{{ oops`)
		require.False(t, res.Success)
		assert.Nil(t, res.Data)
		assert.Contains(t, res.Error, "Unclosed")
	})

	t.Run("success wire shape", func(t *testing.T) {
		raw, err := json.Marshal(Check(`[1, "two"]`))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, true, decoded["success"])
		assert.Equal(t, []any{float64(1), "two"}, decoded["data"])
		assert.NotContains(t, decoded, "error")
	})

	t.Run("failure wire shape", func(t *testing.T) {
		raw, err := json.Marshal(Check(`[1, 2, ]`))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, false, decoded["success"])
		assert.NotContains(t, decoded, "data")
		assert.NotEmpty(t, decoded["error"])
	})

	t.Run("null document is still a success", func(t *testing.T) {
		res := Check(`null`)
		require.True(t, res.Success)
		assert.Nil(t, res.Data)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success": true, "data": null}`, string(raw))
	})
}
