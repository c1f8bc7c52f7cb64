// Package report renders benchmark runs as aligned text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/weiihann/fillbench/bench"
)

// Generate writes the plain-text report for a run: a header naming
// the processor and iteration counts, then one line per strategy with
// names padded to a common width. Skipped strategies carry their
// reason instead of a mean. A run with no finalized reports still
// gets its header, so failure output stays anchored.
func Generate(w io.Writer, run bench.Run) error {
	fmt.Fprintf(w, "Number of processors: %d, number of iterations: %d\n",
		run.Processors, run.Iterations)

	width := 0
	for _, r := range run.Reports {
		width = max(width, len(r.Strategy))
	}

	for _, r := range run.Reports {
		if r.Skipped {
			fmt.Fprintf(w, "%-*s: skipped (%s)\n", width, r.Strategy, r.SkipReason)

			continue
		}

		fmt.Fprintf(w, "%-*s: %s\n", width, r.Strategy, formatSeconds(r.MeanSecs))
	}

	return nil
}

// GenerateJSON writes the run as indented JSON to w. The envelope
// carries a human-readable buffer footprint alongside the raw size.
func GenerateJSON(w io.Writer, run bench.Run) error {
	out := struct {
		bench.Run
		BufferMemory string `json:"buffer_memory"`
	}{
		Run:          run,
		BufferMemory: FormatBytes(uint64(run.BufferSize) * 8),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// formatSeconds renders a mean duration in seconds with six
// significant digits.
func formatSeconds(secs float64) string {
	return fmt.Sprintf("%.6g", secs)
}

// FormatBytes renders a byte count using binary units.
func FormatBytes(b uint64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
