package dataset

import (
	hist "github.com/VividCortex/gohistogram"
)

// lengthBins is the streaming histogram resolution for transaction lengths.
const lengthBins = 40

// Summary describes the shape of a transaction dataset.
type Summary struct {
	Transactions  int     `json:"transactions"`
	DistinctItems int     `json:"distinct_items"`
	TotalItems    int     `json:"total_items"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	MeanLength    float64 `json:"mean_length"`
	MedianLength  float64 `json:"median_length"`
	P90Length     float64 `json:"p90_length"`
}

// Summarize computes dataset statistics over raw transactions. Length
// quantiles come from a streaming histogram, so they are approximate on
// large datasets.
func Summarize(transactions [][]string) Summary {
	summary := Summary{Transactions: len(transactions)}
	if len(transactions) == 0 {
		return summary
	}

	lengths := hist.NewHistogram(lengthBins)
	distinct := make(map[string]struct{})
	summary.MinLength = len(transactions[0])
	for _, tx := range transactions {
		n := len(tx)
		summary.TotalItems += n
		if n < summary.MinLength {
			summary.MinLength = n
		}
		if n > summary.MaxLength {
			summary.MaxLength = n
		}
		lengths.Add(float64(n))
		for _, item := range tx {
			distinct[item] = struct{}{}
		}
	}

	summary.DistinctItems = len(distinct)
	summary.MeanLength = lengths.Mean()
	summary.MedianLength = lengths.Quantile(0.5)
	summary.P90Length = lengths.Quantile(0.9)
	return summary
}
