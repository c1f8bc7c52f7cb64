package bench

import (
	"log/slog"
	"time"

	"github.com/weiihann/fillbench/fill"
)

// Driver executes fill strategies under a fixed configuration.
// Strategies run strictly one at a time, each timed over
// Config.Iterations trials against a freshly allocated buffer per
// trial. Within a trial only the fill itself is timed; allocation
// and verification sit outside the measured interval.
type Driver struct {
	cfg   Config
	clock Clock
	alloc func(n int) ([]uint64, error)
	log   *slog.Logger

	// OnReport, when set, receives each strategy's Report as soon as
	// it is finalized.
	OnReport func(Report)
}

// NewDriver creates a Driver for the given configuration.
func NewDriver(cfg Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Driver{
		cfg:   cfg,
		clock: &DefaultClock{},
		alloc: newBuffer,
		log:   logger,
	}
}

// Run executes every strategy in order. Strategies whose availability
// gate reports false are skipped and marked as such in their Report;
// they are never run and never verified. The first allocation,
// execution, or verification failure aborts the run: the reports
// finalized so far are returned alongside the error, and remaining
// strategies are not attempted.
func (d *Driver) Run(strategies []fill.Strategy) ([]Report, error) {
	reports := make([]Report, 0, len(strategies))

	for _, strat := range strategies {
		if !strat.Runnable() {
			rep := Report{
				Strategy:   strat.Name,
				Skipped:    true,
				SkipReason: strat.SkipReason,
			}
			reports = append(reports, rep)
			d.emit(rep)

			d.log.Info("strategy skipped",
				slog.String("strategy", strat.Name),
				slog.String("reason", strat.SkipReason),
			)

			continue
		}

		var total time.Duration

		for i := 0; i < d.cfg.Iterations; i++ {
			buf, err := d.alloc(d.cfg.Size)
			if err != nil {
				return reports, &AllocationError{Size: d.cfg.Size, Err: err}
			}

			start := d.clock.Now()

			if err := strat.Fill(buf); err != nil {
				return reports, &RunError{Strategy: strat.Name, Err: err}
			}

			elapsed := d.clock.Now().Sub(start)

			if !Verify(buf, d.cfg.Size) {
				return reports, &VerificationError{
					Strategy:  strat.Name,
					Iteration: i,
				}
			}

			total += elapsed

			d.log.Debug("trial complete",
				slog.String("strategy", strat.Name),
				slog.Int("iteration", i),
				slog.Duration("elapsed", elapsed),
			)
		}

		rep := Report{
			Strategy:   strat.Name,
			Iterations: d.cfg.Iterations,
			MeanSecs:   total.Seconds() / float64(d.cfg.Iterations),
		}
		reports = append(reports, rep)
		d.emit(rep)

		d.log.Info("strategy complete",
			slog.String("strategy", strat.Name),
			slog.Duration("total", total),
		)
	}

	return reports, nil
}

func (d *Driver) emit(r Report) {
	if d.OnReport != nil {
		d.OnReport(r)
	}
}
