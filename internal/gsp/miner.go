package gsp

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/seqmine/internal/engine"
	"github.com/mesh-intelligence/seqmine/pkg/types"
)

// Miner runs the level-wise search over a fixed transaction snapshot.
// The snapshot, the singleton candidates, and the longest transaction
// length are computed once at construction; Search may be called any
// number of times with different parameters.
type Miner struct {
	transactions []types.Sequence
	singletons   []types.Sequence
	maxSize      int
}

// NewMiner validates the dataset and prepares a Miner. A dataset with no
// transactions returns ErrNoTransactions; a single transaction returns
// ErrTooFewTransactions, since every pattern of it would be trivially
// frequent. Singleton candidates are recorded in first-appearance order,
// which pins the output order of the first level.
func NewMiner(transactions []types.Sequence) (*Miner, error) {
	if len(transactions) == 0 {
		return nil, types.ErrNoTransactions
	}
	if len(transactions) == 1 {
		return nil, types.ErrTooFewTransactions
	}

	seen := make(map[types.Item]struct{})
	var singletons []types.Sequence
	maxSize := 0
	for _, tx := range transactions {
		if len(tx) > maxSize {
			maxSize = len(tx)
		}
		for _, item := range tx {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			singletons = append(singletons, types.Sequence{item})
		}
	}

	return &Miner{
		transactions: transactions,
		singletons:   singletons,
		maxSize:      maxSize,
	}, nil
}

// Search mines frequent patterns level by level and returns one Level per
// pattern length, in increasing length order. cfg.MinSupport is a fraction
// of the transaction count; the absolute threshold is its ceiling, so a
// pattern is frequent only if it reaches that share of transactions.
// Iteration stops when a level comes up empty, when the next length would
// exceed the longest transaction, or when cfg.MaxK (zero means unlimited)
// is reached. A trailing empty level is trimmed from the result; a
// non-empty final level reached at a length cap is kept.
func (m *Miner) Search(cfg types.Config) ([]types.Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	absSupport := int(math.Ceil(float64(len(m.transactions)) * cfg.MinSupport))
	opts := engine.Options{Prefilter: cfg.Prefilter, Workers: cfg.Workers}

	log.WithFields(log.Fields{
		"transactions": len(m.transactions),
		"min_support":  cfg.MinSupport,
		"abs_support":  absSupport,
	}).Info("Starting pattern search.")

	candidates := m.singletons
	levels := []types.Level{
		types.Level(engine.Supports(m.transactions, candidates, absSupport, opts)),
	}
	k := 1
	m.logLevel(k, len(candidates), len(levels[0]))

	for len(levels[k-1]) > 0 && k+1 <= m.maxSize && (cfg.MaxK == 0 || k+1 <= cfg.MaxK) {
		k++
		candidates = joinCandidates(levels[k-2])
		level := types.Level(engine.Supports(m.transactions, candidates, absSupport, opts))
		levels = append(levels, level)
		m.logLevel(k, len(candidates), len(level))
	}

	if n := len(levels); len(levels[n-1]) == 0 {
		levels = levels[:n-1]
	}

	log.WithFields(log.Fields{"levels": len(levels)}).Info("Pattern search completed.")
	return levels, nil
}

func (m *Miner) logLevel(k, candidates, frequent int) {
	log.WithFields(log.Fields{
		"level":      k,
		"candidates": candidates,
		"frequent":   frequent,
	}).Info("Level counted.")
}
