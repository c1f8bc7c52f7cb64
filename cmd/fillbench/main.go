// Package main provides the CLI entry point for fillbench, a
// micro-benchmark comparing strategies for filling a large buffer
// with sequential index values.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/weiihann/fillbench/bench"
	"github.com/weiihann/fillbench/fill"
	"github.com/weiihann/fillbench/report"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	if err := root.Execute(); err != nil {
		var vErr *bench.VerificationError
		if errors.As(err, &vErr) {
			fmt.Printf("%s failed!\n", vErr.Strategy)
		} else {
			fmt.Fprintf(os.Stderr, "fillbench: %v\n", err)
		}

		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var (
		size       int
		iterations int
		strategies []string
		configPath string
		outputJSON bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "fillbench",
		Short: "Buffer fill strategy micro-benchmark",
		Long: `Fillbench times several strategies for filling a large in-memory buffer
with sequential index values, verifies every trial against the expected
sequence, and reports the mean wall-clock seconds per strategy. Invoked
bare it runs the reference workload: every strategy, 10,000,000 elements,
50 iterations each.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bench.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("size") {
				cfg.Size = size
			}
			if flags.Changed("iterations") {
				cfg.Iterations = iterations
			}
			if flags.Changed("strategies") {
				cfg.Strategies = strategies
			}

			return runBenchmark(logger, cfg, outputJSON)
		},
	}

	flags := root.Flags()
	flags.IntVar(&size, "size", bench.DefaultSize,
		"Buffer length in elements")
	flags.IntVar(&iterations, "iterations", bench.DefaultIterations,
		"Timed fills per strategy")
	flags.StringSliceVar(&strategies, "strategies", nil,
		"Strategies to run (default: all; see 'fillbench list')")
	flags.StringVar(&configPath, "config", "",
		"Path to YAML config file")
	flags.BoolVar(&outputJSON, "json", false,
		"Output the run as JSON instead of text")

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	root.AddCommand(newListCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered fill strategies in benchmark order",
		Run: func(*cobra.Command, []string) {
			for _, s := range fill.Strategies() {
				if s.Runnable() {
					fmt.Println(s.Name)
				} else {
					fmt.Printf("%s (unavailable: %s)\n", s.Name, s.SkipReason)
				}
			}
		},
	}
}

func runBenchmark(logger *slog.Logger, cfg bench.Config, outputJSON bool) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Step 1: Resolve the strategy set.
	strategies, err := fill.ByName(cfg.Strategies)
	if err != nil {
		return err
	}

	logger.Info("starting benchmark",
		slog.Int("buffer_size", cfg.Size),
		slog.String("buffer_memory", report.FormatBytes(uint64(cfg.Size)*8)),
		slog.Int("iterations", cfg.Iterations),
		slog.Int("strategies", len(strategies)),
		slog.Int("processors", runtime.NumCPU()),
	)

	// Step 2: Stamp the run envelope.
	run := bench.NewRun(cfg)

	// Step 3: Run every strategy sequentially.
	driver := bench.NewDriver(cfg, logger)
	reports, runErr := driver.Run(strategies)
	run.Reports = reports

	// Step 4: Render the report. A fatal run error still prints the
	// text lines for strategies that completed before it; JSON output
	// is reserved for fully successful runs.
	if runErr != nil || !outputJSON {
		if err := report.Generate(os.Stdout, run); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	} else {
		if err := report.GenerateJSON(os.Stdout, run); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	logger.Info("benchmark complete")

	return nil
}
