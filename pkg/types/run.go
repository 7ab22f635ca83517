package types

import "time"

// Run records one completed mining invocation in the run store.
type Run struct {
	RunID      string    `json:"run_id"`      // UUID v7, generated on save.
	Source     string    `json:"source"`      // Dataset path or label supplied by the caller.
	MinSupport float64   `json:"min_support"` // Fractional threshold the run used.
	TxCount    int       `json:"tx_count"`    // Number of transactions mined.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of the save.
}

// StoredPattern is one frequent pattern of a stored run, decoded back to
// raw tokens so runs remain readable without the original item mapping.
type StoredPattern struct {
	Level   int      `json:"level"`
	Pattern []string `json:"pattern"`
	Support int      `json:"support"`
}
