package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

func TestItemSetHasAll(t *testing.T) {
	set := NewItemSet(types.Sequence{1, 2, 3, 2})

	tests := []struct {
		name   string
		needle types.Sequence
		want   bool
	}{
		{name: "all present", needle: types.Sequence{2, 3}, want: true},
		{name: "one absent", needle: types.Sequence{2, 4}, want: false},
		{name: "empty needle", needle: types.Sequence{}, want: true},
		{name: "repeated item present", needle: types.Sequence{2, 2, 2}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.HasAll(tt.needle))
		})
	}
}

func TestBuildItemSets(t *testing.T) {
	transactions := []types.Sequence{
		{1, 2, 2},
		{},
		{3},
	}
	sets := BuildItemSets(transactions)

	assert.Len(t, sets, 3)
	assert.Len(t, sets[0], 2)
	assert.Empty(t, sets[1])
	assert.True(t, sets[2].HasAll(types.Sequence{3}))
	assert.False(t, sets[2].HasAll(types.Sequence{1}))
}

// The prefilter may only skip matcher calls whose outcome is already known
// to be negative; presence of all items is necessary but not sufficient.
func TestPrefilterNeverSkipsAMatch(t *testing.T) {
	transactions := []types.Sequence{
		{1, 2, 3},
		{3, 2, 1},
		{2, 1, 3, 2},
	}
	candidates := []types.Sequence{
		{1, 2}, {2, 1}, {1, 3}, {3, 2, 1}, {1, 2, 3, 4},
	}

	sets := BuildItemSets(transactions)
	for _, cand := range candidates {
		for i, tx := range transactions {
			if Contains(tx, cand) {
				assert.True(t, sets[i].HasAll(cand),
					"prefilter rejected candidate %v that matches transaction %v", cand, tx)
			}
		}
	}
}
