package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Transactions)
	assert.Equal(t, 0, summary.DistinctItems)
	assert.Equal(t, 0, summary.TotalItems)
}

func TestSummarize(t *testing.T) {
	transactions := [][]string{
		{"a", "b"},
		{"b", "c", "d"},
		{"a", "b", "c", "d"},
	}

	summary := Summarize(transactions)
	assert.Equal(t, 3, summary.Transactions)
	assert.Equal(t, 4, summary.DistinctItems)
	assert.Equal(t, 9, summary.TotalItems)
	assert.Equal(t, 2, summary.MinLength)
	assert.Equal(t, 4, summary.MaxLength)
	assert.InDelta(t, 3.0, summary.MeanLength, 0.001)
	// Quantiles come from a streaming histogram and are approximate.
	assert.InDelta(t, 3.0, summary.MedianLength, 1.0)
	assert.InDelta(t, 4.0, summary.P90Length, 1.0)
}

func TestSummarizeWithEmptyTransactions(t *testing.T) {
	transactions := [][]string{
		{},
		{"a"},
	}

	summary := Summarize(transactions)
	assert.Equal(t, 2, summary.Transactions)
	assert.Equal(t, 0, summary.MinLength)
	assert.Equal(t, 1, summary.MaxLength)
	assert.Equal(t, 1, summary.TotalItems)
}
