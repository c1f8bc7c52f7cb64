package fill

import (
	"runtime"
	"sync"

	"github.com/sourcegraph/conc"
)

// fourWaySplits is the fixed block count of the four-way strategy.
const fourWaySplits = 4

// fillStaticSplit precomputes one contiguous span per available
// processor and fills each span in its own goroutine.
func fillStaticSplit(buf []uint64) error {
	spans := partition(len(buf), runtime.GOMAXPROCS(0))

	var wg sync.WaitGroup
	for _, s := range spans {
		s := s // per-iteration copy; this module targets go >= 1.22 semantics
		wg.Add(1)

		go func() {
			defer wg.Done()
			fillRange(buf, s.start, s.end)
		}()
	}

	wg.Wait()

	return nil
}

// fillFourWay splits the buffer into exactly four contiguous blocks
// and fills them concurrently, waiting for all four to finish. The
// last block absorbs any remainder.
func fillFourWay(buf []uint64) error {
	var wg conc.WaitGroup
	for _, s := range partition(len(buf), fourWaySplits) {
		s := s // per-iteration copy; this module targets go >= 1.22 semantics
		wg.Go(func() {
			fillRange(buf, s.start, s.end)
		})
	}

	wg.Wait()

	return nil
}

// fillPerCPU spawns one worker goroutine per detected processor.
// Workers take equal contiguous shares; the last worker's share is
// extended to the end of the buffer.
func fillPerCPU(buf []uint64) error {
	n := len(buf)

	procs := runtime.NumCPU()
	if procs > n {
		procs = max(n, 1)
	}

	chunk := n / procs

	var wg sync.WaitGroup
	for w := 0; w < procs; w++ {
		start := w * chunk
		end := start + chunk

		if w == procs-1 {
			end = n
		}

		wg.Add(1)

		go func() {
			defer wg.Done()
			fillRange(buf, start, end)
		}()
	}

	wg.Wait()

	return nil
}
