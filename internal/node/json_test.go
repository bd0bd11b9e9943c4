package node

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const sampleExport = `[
  {
    "id": "block_1",
    "label": "Extract Contacts",
    "data": {
      "url": "{{ base_url }}/contacts",
      "maxRetries": 3,
      "headers": [{"name": "Accept", "value": "application/json"}]
    }
  },
  {
    "id": "block_2",
    "data": {"prompt": "summarise {{ block_1_output }}"}
  }
]`

func TestDecodeCollection(t *testing.T) {
	t.Parallel()

	nodes, err := DecodeCollection(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, "block_1", nodes[0].ID)
	assert.Equal(t, "Extract Contacts", nodes[0].Label)
	url := nodes[0].Data.GetAttr("url")
	assert.Equal(t, "{{ base_url }}/contacts", url.AsString())
	retries := nodes[0].Data.GetAttr("maxRetries")
	assert.True(t, cty.NumberIntVal(3).RawEquals(retries))

	assert.Equal(t, "block_2", nodes[1].ID)
	assert.Empty(t, nodes[1].Label)
}

func TestDecodeCollectionErrors(t *testing.T) {
	t.Parallel()

	t.Run("not an array", func(t *testing.T) {
		_, err := DecodeCollection(strings.NewReader(`{"id": "x"}`))
		assert.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := DecodeCollection(strings.NewReader(`[{"label": "x", "data": {}}]`))
		assert.ErrorContains(t, err, "has no id")
	})

	t.Run("missing data becomes null", func(t *testing.T) {
		nodes, err := DecodeCollection(strings.NewReader(`[{"id": "x"}]`))
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		assert.True(t, nodes[0].Data.IsNull())
	})
}

func TestEncodeCollectionRoundTrip(t *testing.T) {
	t.Parallel()

	nodes, err := DecodeCollection(strings.NewReader(sampleExport))
	require.NoError(t, err)

	out, err := EncodeCollection(nodes)
	require.NoError(t, err)

	again, err := DecodeCollection(strings.NewReader(string(out)))
	require.NoError(t, err)
	require.Len(t, again, len(nodes))
	for i := range nodes {
		assert.Equal(t, nodes[i].ID, again[i].ID)
		assert.Equal(t, nodes[i].Label, again[i].Label)
		assert.True(t, nodes[i].Data.RawEquals(again[i].Data),
			"node %s data changed across the round trip", nodes[i].ID)
	}
}
