package dataset

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/seqmine/internal/encode"
	"github.com/mesh-intelligence/seqmine/pkg/types"
)

func sampleLevels(t *testing.T) ([]types.Level, *encode.Mapper) {
	t.Helper()
	mapper := encode.NewMapper()
	mapper.EncodeAll([][]string{{"bread", "milk", "beer"}})
	levels := []types.Level{
		{
			{Items: types.Sequence{0}, Support: 4},
			{Items: types.Sequence{1}, Support: 3},
		},
		{
			{Items: types.Sequence{0, 1}, Support: 3},
		},
	}
	return levels, mapper
}

func TestWriteLevelsJSON(t *testing.T) {
	levels, mapper := sampleLevels(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLevels(&buf, levels, mapper, FormatJSON))

	var decoded []struct {
		Level    int `json:"level"`
		Patterns []struct {
			Pattern []string `json:"pattern"`
			Support int      `json:"support"`
		} `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 1, decoded[0].Level)
	assert.Equal(t, []string{"bread"}, decoded[0].Patterns[0].Pattern)
	assert.Equal(t, 4, decoded[0].Patterns[0].Support)
	assert.Equal(t, []string{"bread", "milk"}, decoded[1].Patterns[0].Pattern)
}

func TestWriteLevelsCSV(t *testing.T) {
	levels, mapper := sampleLevels(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLevels(&buf, levels, mapper, FormatCSV))

	assert.Equal(t,
		"level,pattern,support\n1,bread,4\n1,milk,3\n2,bread milk,3\n",
		buf.String())
}

func TestWriteLevelsText(t *testing.T) {
	levels, mapper := sampleLevels(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLevels(&buf, levels, mapper, FormatText))

	assert.Contains(t, buf.String(), "Level 1 (2 patterns)")
	assert.Contains(t, buf.String(), "bread milk  support=3")
}

func TestFlatten(t *testing.T) {
	levels, mapper := sampleLevels(t)

	flat, err := Flatten(levels, mapper)
	require.NoError(t, err)
	assert.Equal(t, []types.StoredPattern{
		{Level: 1, Pattern: []string{"bread"}, Support: 4},
		{Level: 1, Pattern: []string{"milk"}, Support: 3},
		{Level: 2, Pattern: []string{"bread", "milk"}, Support: 3},
	}, flat)
}

func TestWriteLevelsUnknownFormat(t *testing.T) {
	levels, mapper := sampleLevels(t)

	var buf bytes.Buffer
	err := WriteLevels(&buf, levels, mapper, "xml")
	assert.ErrorIs(t, err, types.ErrUnknownFormat)
}

func TestWriteLevelsUnknownItem(t *testing.T) {
	mapper := encode.NewMapper()
	levels := []types.Level{{{Items: types.Sequence{5}, Support: 1}}}

	var buf bytes.Buffer
	err := WriteLevels(&buf, levels, mapper, FormatJSON)
	assert.ErrorIs(t, err, types.ErrUnknownItem)
}
