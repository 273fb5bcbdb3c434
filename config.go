package inplace

import (
	"runtime"

	"go.uber.org/zap"
)

// Config holds configuration settings for SortParallel
type Config struct {
	NumWorkers        int         // maximum number of goroutines sorting sub-ranges at once
	ParallelThreshold int         // ranges shorter than this are sorted sequentially
	Logger            *zap.Logger // debug and error records, nil disables logging
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		NumWorkers:        runtime.GOMAXPROCS(0),
		ParallelThreshold: 1 << 12,
		Logger:            zap.NewNop(),
	}
}

// mergeConfig takes a provided config and returns a copy with any values not set
// replaced by the defaults. Negative values are rejected with a ConfigError.
func mergeConfig(c *Config) (*Config, error) {
	d := DefaultConfig()
	if c == nil {
		return d, nil
	}
	if c.NumWorkers < 0 {
		return nil, NewConfigError("NumWorkers", c.NumWorkers, "must not be negative")
	}
	if c.ParallelThreshold < 0 {
		return nil, NewConfigError("ParallelThreshold", c.ParallelThreshold, "must not be negative")
	}
	merged := *c
	if merged.NumWorkers == 0 {
		merged.NumWorkers = d.NumWorkers
	}
	if merged.ParallelThreshold == 0 {
		merged.ParallelThreshold = d.ParallelThreshold
	}
	// below the cutoff a partition step is never worth it
	merged.ParallelThreshold = max(merged.ParallelThreshold, insertionSortCutoff)
	if merged.Logger == nil {
		merged.Logger = d.Logger
	}
	return &merged, nil
}
