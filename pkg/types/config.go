package types

import "errors"

// Config holds the mining parameters and store location for one invocation.
// MinSupport is a fraction of the transaction count; the absolute threshold
// is derived by the miner.
type Config struct {
	MinSupport float64 `json:"min_support" yaml:"min_support"`
	MaxK       int     `json:"max_k" yaml:"max_k"`
	Workers    int     `json:"workers" yaml:"workers"`
	Prefilter  bool    `json:"prefilter" yaml:"prefilter"`
	DataDir    string  `json:"data_dir" yaml:"data_dir"`
}

// Config validation errors.
var (
	ErrMinSupportRange = errors.New("min support must be in the range (0.0, 1.0]")
	ErrMaxKInvalid     = errors.New("max k must not be negative")
	ErrWorkersInvalid  = errors.New("workers must not be negative")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.MinSupport <= 0.0 || c.MinSupport > 1.0 {
		return ErrMinSupportRange
	}
	if c.MaxK < 0 {
		return ErrMaxKInvalid
	}
	if c.Workers < 0 {
		return ErrWorkersInvalid
	}
	return nil
}
