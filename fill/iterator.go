package fill

import (
	"runtime"
	"unsafe"

	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/pool"
)

// taskPoolGrain is the largest block submitted to the pool as one
// task; ranges above it are halved recursively.
const taskPoolGrain = 1 << 16

// fillOffset visits every element in parallel and derives its value
// from the element's own offset to the buffer origin rather than from
// a loop index.
func fillOffset(buf []uint64) error {
	if len(buf) == 0 {
		return nil
	}

	base := uintptr(unsafe.Pointer(&buf[0]))

	iter.ForEach(buf, func(elem *uint64) {
		off := uintptr(unsafe.Pointer(elem)) - base
		*elem = uint64(off / unsafe.Sizeof(*elem))
	})

	return nil
}

// fillParallelIter hands the whole range to the iterator, which picks
// its own chunking and worker count.
func fillParallelIter(buf []uint64) error {
	iter.ForEachIdx(buf, func(i int, elem *uint64) {
		*elem = uint64(i)
	})

	return nil
}

// fillTaskPool halves the range recursively into blocks no larger
// than taskPoolGrain and submits each block to a worker pool bounded
// at one goroutine per available processor.
func fillTaskPool(buf []uint64) error {
	p := pool.New().WithMaxGoroutines(runtime.GOMAXPROCS(0))
	submitBlocks(p, buf, 0, len(buf))
	p.Wait()

	return nil
}

func submitBlocks(p *pool.Pool, buf []uint64, start, end int) {
	if end-start <= taskPoolGrain {
		p.Go(func() {
			fillRange(buf, start, end)
		})

		return
	}

	mid := start + (end-start)/2
	submitBlocks(p, buf, start, mid)
	submitBlocks(p, buf, mid, end)
}
