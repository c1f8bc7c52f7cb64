package fill

// span is a half-open index range.
type span struct {
	start, end int
}

// partition divides [0, n) into at most parts contiguous spans of
// equal size, assigning the remainder to the last span so the whole
// range is always covered. Fewer spans are returned when n is too
// small to populate them all; n of zero yields none.
func partition(n, parts int) []span {
	if n <= 0 || parts <= 0 {
		return nil
	}

	if parts > n {
		parts = n
	}

	size := n / parts
	spans := make([]span, parts)

	for i := range spans {
		spans[i] = span{start: i * size, end: (i + 1) * size}
	}

	spans[parts-1].end = n

	return spans
}
