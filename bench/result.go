// Package bench drives timed fill trials, verifies every trial's
// output independently of the strategy that produced it, and
// aggregates per-strategy results.
package bench

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Report summarizes all iterations of a single strategy.
type Report struct {
	Strategy   string  `json:"strategy"`
	Iterations int     `json:"iterations,omitempty"`
	MeanSecs   float64 `json:"mean_seconds,omitempty"`
	Skipped    bool    `json:"skipped,omitempty"`
	SkipReason string  `json:"skip_reason,omitempty"`
}

// Run is the envelope for one complete benchmark invocation.
type Run struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	Processors int       `json:"processors"`
	Iterations int       `json:"iterations"`
	BufferSize int       `json:"buffer_size"`
	Reports    []Report  `json:"results"`
}

// NewRun stamps a fresh envelope for the given configuration.
func NewRun(cfg Config) Run {
	return Run{
		ID:         uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		Processors: runtime.NumCPU(),
		Iterations: cfg.Iterations,
		BufferSize: cfg.Size,
	}
}
