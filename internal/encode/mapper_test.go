package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

func TestMapperAdd(t *testing.T) {
	m := NewMapper()

	assert.Equal(t, types.Item(0), m.Add("bread"))
	assert.Equal(t, types.Item(1), m.Add("milk"))
	// Re-adding returns the existing ID.
	assert.Equal(t, types.Item(0), m.Add("bread"))
	assert.Equal(t, 2, m.Len())
}

func TestMapperLookups(t *testing.T) {
	m := NewMapper()
	m.Add("a")
	m.Add("b")

	id, err := m.ID("b")
	require.NoError(t, err)
	assert.Equal(t, types.Item(1), id)

	token, err := m.Token(0)
	require.NoError(t, err)
	assert.Equal(t, "a", token)

	_, err = m.ID("missing")
	assert.ErrorIs(t, err, types.ErrUnknownToken)

	_, err = m.Token(99)
	assert.ErrorIs(t, err, types.ErrUnknownItem)
}

func TestEncodeAll(t *testing.T) {
	m := NewMapper()
	raw := [][]string{
		{"bread", "milk"},
		{"milk", "bread", "beer"},
		{},
	}

	encoded := m.EncodeAll(raw)
	require.Len(t, encoded, 3)
	assert.True(t, encoded[0].Equal(types.Sequence{0, 1}))
	assert.True(t, encoded[1].Equal(types.Sequence{1, 0, 2}))
	assert.Empty(t, encoded[2])

	// Encoding the same dataset through a fresh mapper yields the same
	// item space.
	again := NewMapper().EncodeAll(raw)
	assert.Equal(t, encoded, again)
}

func TestDecodePattern(t *testing.T) {
	m := NewMapper()
	m.EncodeAll([][]string{{"a", "b", "c"}})

	tokens, err := m.DecodePattern(types.Pattern{Items: types.Sequence{2, 0}, Support: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, tokens)

	_, err = m.DecodePattern(types.Pattern{Items: types.Sequence{7}})
	assert.ErrorIs(t, err, types.ErrUnknownItem)
}
