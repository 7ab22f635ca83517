package gsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

func TestNewMinerValidation(t *testing.T) {
	tests := []struct {
		name         string
		transactions []types.Sequence
		wantErr      error
	}{
		{name: "empty dataset", transactions: nil, wantErr: types.ErrNoTransactions},
		{
			name:         "single transaction",
			transactions: []types.Sequence{{1, 2, 3}},
			wantErr:      types.ErrTooFewTransactions,
		},
		{
			name:         "two transactions",
			transactions: []types.Sequence{{1}, {2}},
			wantErr:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMiner(tt.transactions)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSearchRejectsInvalidConfig(t *testing.T) {
	miner, err := NewMiner([]types.Sequence{{1, 2}, {2, 1}})
	require.NoError(t, err)

	_, err = miner.Search(types.Config{MinSupport: 0.0})
	assert.ErrorIs(t, err, types.ErrMinSupportRange)

	_, err = miner.Search(types.Config{MinSupport: 1.2})
	assert.ErrorIs(t, err, types.ErrMinSupportRange)
}

func TestSearchLevels(t *testing.T) {
	transactions := []types.Sequence{
		{1, 2, 3},
		{1, 2, 4},
		{1, 2, 3},
		{2, 3, 1},
	}
	miner, err := NewMiner(transactions)
	require.NoError(t, err)

	levels, err := miner.Search(types.Config{MinSupport: 0.5})
	require.NoError(t, err)
	require.Len(t, levels, 3)

	// Level 1: singletons in first-appearance order, threshold 2 of 4.
	assert.Equal(t, types.Level{
		{Items: types.Sequence{1}, Support: 4},
		{Items: types.Sequence{2}, Support: 4},
		{Items: types.Sequence{3}, Support: 3},
	}, levels[0])

	// Level 2: only the contiguous pairs survive.
	assert.Equal(t, types.Level{
		{Items: types.Sequence{1, 2}, Support: 3},
		{Items: types.Sequence{2, 3}, Support: 3},
	}, levels[1])

	// Level 3 hits the longest-transaction cap but is non-empty, so it is
	// kept in the result.
	assert.Equal(t, types.Level{
		{Items: types.Sequence{1, 2, 3}, Support: 2},
	}, levels[2])
}

func TestSearchTrimsTrailingEmptyLevel(t *testing.T) {
	miner, err := NewMiner([]types.Sequence{{1, 2}, {2, 1}})
	require.NoError(t, err)

	levels, err := miner.Search(types.Config{MinSupport: 1.0})
	require.NoError(t, err)

	// Both singletons are frequent but neither pair reaches support 2, so
	// the empty second level is trimmed.
	require.Len(t, levels, 1)
	assert.Equal(t, types.Level{
		{Items: types.Sequence{1}, Support: 2},
		{Items: types.Sequence{2}, Support: 2},
	}, levels[0])
}

func TestSearchMaxKStopsIteration(t *testing.T) {
	transactions := []types.Sequence{
		{1, 2, 3},
		{1, 2, 3},
	}
	miner, err := NewMiner(transactions)
	require.NoError(t, err)

	levels, err := miner.Search(types.Config{MinSupport: 0.5, MaxK: 1})
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Len(t, levels[0], 3)
}

func TestSearchPrefilterTransparency(t *testing.T) {
	transactions := []types.Sequence{
		{1, 2, 3, 4},
		{2, 3, 4, 5},
		{1, 2, 3},
		{3, 4, 5},
		{},
	}
	miner, err := NewMiner(transactions)
	require.NoError(t, err)

	plain, err := miner.Search(types.Config{MinSupport: 0.4, Prefilter: false})
	require.NoError(t, err)
	filtered, err := miner.Search(types.Config{MinSupport: 0.4, Prefilter: true})
	require.NoError(t, err)

	assert.Equal(t, plain, filtered)
}

func TestSearchRepeatable(t *testing.T) {
	transactions := []types.Sequence{
		{1, 2, 3},
		{2, 3, 4},
		{1, 2, 3},
	}
	miner, err := NewMiner(transactions)
	require.NoError(t, err)

	first, err := miner.Search(types.Config{MinSupport: 0.5, Workers: 4})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := miner.Search(types.Config{MinSupport: 0.5, Workers: 4})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
