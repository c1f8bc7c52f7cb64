package bench

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/fillbench/fill"
)

// stepClock advances a fixed amount on every reading, so each timed
// interval inside a trial comes out to exactly one step.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)

	return t
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func goodFill(buf []uint64) error {
	for i := range buf {
		buf[i] = uint64(i)
	}

	return nil
}

// evensOnlyFill leaves every odd index untouched, so verification
// must reject its output.
func evensOnlyFill(buf []uint64) error {
	for i := 0; i < len(buf); i += 2 {
		buf[i] = uint64(i)
	}

	return nil
}

func TestDriverRunsEveryIteration(t *testing.T) {
	cfg := Config{Size: 64, Iterations: 5}

	d := NewDriver(cfg, testLogger())
	d.clock = &stepClock{step: 10 * time.Millisecond}

	var emitted []Report
	d.OnReport = func(r Report) { emitted = append(emitted, r) }

	strategies := []fill.Strategy{
		{Name: "alpha", Fill: goodFill},
		{Name: "beta", Fill: goodFill},
		{Name: "gamma", Fill: goodFill},
	}

	reports, err := d.Run(strategies)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, reports, emitted)

	for i, r := range reports {
		assert.Equal(t, strategies[i].Name, r.Strategy)
		assert.Equal(t, 5, r.Iterations)
		assert.InDelta(t, 0.010, r.MeanSecs, 1e-9)
		assert.False(t, r.Skipped)
	}
}

func TestDriverAbortsOnCorruptStrategy(t *testing.T) {
	cfg := Config{Size: 64, Iterations: 3}
	d := NewDriver(cfg, testLogger())

	var invoked []string
	tracked := func(name string, fn fill.FillFunc) fill.Strategy {
		return fill.Strategy{
			Name: name,
			Fill: func(buf []uint64) error {
				invoked = append(invoked, name)

				return fn(buf)
			},
		}
	}

	reports, err := d.Run([]fill.Strategy{
		tracked("good", goodFill),
		tracked("broken", evensOnlyFill),
		tracked("never-reached", goodFill),
	})

	var vErr *VerificationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "broken", vErr.Strategy)
	assert.Equal(t, 0, vErr.Iteration)

	require.Len(t, reports, 1)
	assert.Equal(t, "good", reports[0].Strategy)

	// Three full iterations of the good strategy, one aborted trial
	// of the broken one, and the third strategy never starts.
	assert.Equal(t, []string{"good", "good", "good", "broken"}, invoked)
}

func TestDriverSkipsUnavailableStrategy(t *testing.T) {
	cfg := Config{Size: 16, Iterations: 2}
	d := NewDriver(cfg, testLogger())

	ran := false
	gated := fill.Strategy{
		Name: "gated",
		Fill: func(buf []uint64) error {
			ran = true

			return goodFill(buf)
		},
		Available:  func() bool { return false },
		SkipReason: "no compute device",
	}

	reports, err := d.Run([]fill.Strategy{
		gated,
		{Name: "after", Fill: goodFill},
	})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.True(t, reports[0].Skipped)
	assert.Equal(t, "no compute device", reports[0].SkipReason)
	assert.Zero(t, reports[0].Iterations)
	assert.False(t, ran, "unavailable strategy must never run")

	assert.Equal(t, "after", reports[1].Strategy)
	assert.False(t, reports[1].Skipped)
}

func TestDriverAllocationFailure(t *testing.T) {
	cfg := Config{Size: 16, Iterations: 2}

	d := NewDriver(cfg, testLogger())
	d.alloc = func(int) ([]uint64, error) {
		return nil, errors.New("out of memory")
	}

	invoked := false
	reports, err := d.Run([]fill.Strategy{{
		Name: "starved",
		Fill: func(buf []uint64) error {
			invoked = true

			return goodFill(buf)
		},
	}})

	var aErr *AllocationError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, 16, aErr.Size)
	assert.Empty(t, reports)
	assert.False(t, invoked, "fill must not run without a buffer")
}

func TestDriverStrategyFailure(t *testing.T) {
	cfg := Config{Size: 16, Iterations: 2}
	d := NewDriver(cfg, testLogger())

	_, err := d.Run([]fill.Strategy{{
		Name: "flaky",
		Fill: func([]uint64) error {
			return errors.New("device lost")
		},
	}})

	var rErr *RunError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, "flaky", rErr.Strategy)
	assert.ErrorContains(t, err, "device lost")
}

func TestDriverTimingFollowsClock(t *testing.T) {
	cfg := Config{Size: 8, Iterations: 4}
	probe := []fill.Strategy{{Name: "probe", Fill: goodFill}}

	slow := NewDriver(cfg, testLogger())
	slow.clock = &stepClock{step: 20 * time.Millisecond}

	fast := NewDriver(cfg, testLogger())
	fast.clock = &stepClock{step: 5 * time.Millisecond}

	slowReports, err := slow.Run(probe)
	require.NoError(t, err)

	fastReports, err := fast.Run(probe)
	require.NoError(t, err)

	assert.Greater(t, slowReports[0].MeanSecs, fastReports[0].MeanSecs)
	assert.GreaterOrEqual(t, fastReports[0].MeanSecs, 0.0)
}

func TestDriverWithRegistry(t *testing.T) {
	cfg := Config{Size: 10_000, Iterations: 2}
	d := NewDriver(cfg, testLogger())

	strategies := fill.Strategies()
	reports, err := d.Run(strategies)
	require.NoError(t, err)
	require.Len(t, reports, len(strategies))

	for i, r := range reports {
		assert.Equal(t, strategies[i].Name, r.Strategy)

		if r.Skipped {
			assert.NotEmpty(t, r.SkipReason)

			continue
		}

		assert.Equal(t, 2, r.Iterations)
		assert.GreaterOrEqual(t, r.MeanSecs, 0.0)
	}
}
