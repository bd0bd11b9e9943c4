package tmplscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskStrings(t *testing.T) {
	t.Parallel()

	t.Run("no strings means no masked offsets", func(t *testing.T) {
		mask := MaskStrings(`{{ hello }}`)
		for i := range mask {
			assert.False(t, mask.Inside(i), "offset %d should be outside any string", i)
		}
	})

	t.Run("quotes and contents are inside", func(t *testing.T) {
		//                 0123456789
		mask := MaskStrings(`a "bc" d`)
		assert.False(t, mask.Inside(0))
		assert.False(t, mask.Inside(1))
		assert.True(t, mask.Inside(2), "opening quote")
		assert.True(t, mask.Inside(3))
		assert.True(t, mask.Inside(4))
		assert.True(t, mask.Inside(5), "closing quote")
		assert.False(t, mask.Inside(6))
		assert.False(t, mask.Inside(7))
	})

	t.Run("escaped quote does not close the string", func(t *testing.T) {
		//                 0: " 1: a 2: \ 3: " 4: b 5: " 6: c
		mask := MaskStrings(`"a\"b"c`)
		require.Len(t, mask, 7)
		for i := 0; i <= 5; i++ {
			assert.True(t, mask.Inside(i), "offset %d", i)
		}
		assert.False(t, mask.Inside(6))
	})

	t.Run("escaped backslash can precede a real closing quote", func(t *testing.T) {
		//                 0: " 1: a 2: \ 3: \ 4: " 5: b
		mask := MaskStrings(`"a\\"b`)
		assert.True(t, mask.Inside(4), "quote after escaped backslash closes the string")
		assert.False(t, mask.Inside(5))
	})

	t.Run("unterminated string marks the rest of the input", func(t *testing.T) {
		mask := MaskStrings(`x "abc`)
		assert.False(t, mask.Inside(0))
		for i := 2; i < 6; i++ {
			assert.True(t, mask.Inside(i), "offset %d", i)
		}
	})

	t.Run("out of range offsets are outside", func(t *testing.T) {
		mask := MaskStrings(`"a"`)
		assert.False(t, mask.Inside(-1))
		assert.False(t, mask.Inside(3))
		assert.False(t, mask.Inside(100))
	})

	t.Run("empty input", func(t *testing.T) {
		mask := MaskStrings("")
		assert.Empty(t, mask)
		assert.False(t, mask.Inside(0))
	})
}
