package bench

import "slices"

// Verify reports whether buf holds the ascending sequence 0..n-1:
// the length must match, the contents must be monotonically
// non-decreasing over the full extent, and both endpoints must anchor
// the sequence. The check never consults the strategy that produced
// the buffer.
func Verify(buf []uint64, n int) bool {
	if n <= 0 || len(buf) != n {
		return false
	}

	if !slices.IsSorted(buf) {
		return false
	}

	return buf[0] == 0 && buf[n-1] == uint64(n-1)
}
