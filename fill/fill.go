// Package fill implements interchangeable strategies for writing the
// ascending index sequence into a buffer.
package fill

import "fmt"

// A FillFunc writes value i at every index i of buf. Implementations
// may partition the work internally but must not return before all of
// it has completed, and must not retain buf afterwards. A nil error
// says nothing about correctness; callers verify the buffer contents
// themselves.
type FillFunc func(buf []uint64) error

// Strategy couples a FillFunc with its registry name and an optional
// availability gate.
type Strategy struct {
	Name string
	Fill FillFunc

	// Available, when non-nil, reports whether the strategy can run
	// on this host. SkipReason explains a false result in reports.
	Available  func() bool
	SkipReason string
}

// Runnable reports whether the strategy can run on this host.
func (s Strategy) Runnable() bool {
	if s.Available == nil {
		return true
	}

	return s.Available()
}

// Strategies returns the full registry in benchmark order. The slice
// is built fresh on every call; callers may trim or reorder it freely.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "sequential", Fill: fillSequential},
		{Name: "generator", Fill: fillGenerator},
		{Name: "static-split", Fill: fillStaticSplit},
		{Name: "four-way", Fill: fillFourWay},
		{Name: "offset", Fill: fillOffset},
		{
			Name:       "device",
			Fill:       fillDevice,
			Available:  deviceRunnable,
			SkipReason: "no compute device",
		},
		{Name: "per-cpu", Fill: fillPerCPU},
		{Name: "parallel-iter", Fill: fillParallelIter},
		{Name: "task-pool", Fill: fillTaskPool},
	}
}

// Names returns the registry names in benchmark order.
func Names() []string {
	all := Strategies()
	names := make([]string, len(all))

	for i, s := range all {
		names[i] = s.Name
	}

	return names
}

// ByName resolves names to registry entries, preserving benchmark
// order regardless of the order given. An empty list selects the
// whole registry.
func ByName(names []string) ([]Strategy, error) {
	all := Strategies()
	if len(names) == 0 {
		return all, nil
	}

	known := make(map[string]bool, len(all))
	for _, s := range all {
		known[s.Name] = true
	}

	want := make(map[string]bool, len(names))
	for _, name := range names {
		if !known[name] {
			return nil, fmt.Errorf("unknown strategy %q", name)
		}

		want[name] = true
	}

	selected := make([]Strategy, 0, len(want))
	for _, s := range all {
		if want[s.Name] {
			selected = append(selected, s)
		}
	}

	return selected, nil
}

// fillRange writes the ascending sequence over buf[start:end].
func fillRange(buf []uint64, start, end int) {
	for i := start; i < end; i++ {
		buf[i] = uint64(i)
	}
}
