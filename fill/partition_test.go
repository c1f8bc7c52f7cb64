package fill

import (
	"slices"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		parts int
		want  []span
	}{
		{"even", 8, 4, []span{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder to last", 10, 4, []span{{0, 2}, {2, 4}, {4, 6}, {6, 10}}},
		{"single part", 5, 1, []span{{0, 5}}},
		{"more parts than elements", 3, 8, []span{{0, 1}, {1, 2}, {2, 3}}},
		{"single element", 1, 4, []span{{0, 1}}},
		{"empty range", 0, 4, nil},
		{"no parts", 5, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := partition(tt.n, tt.parts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("partition(%d, %d) = %v, want %v",
					tt.n, tt.parts, got, tt.want)
			}
		})
	}
}

func TestPartitionRemainderNotDropped(t *testing.T) {
	spans := partition(10_000_003, 4)

	if len(spans) != 4 {
		t.Fatalf("got %d spans, want 4", len(spans))
	}

	last := spans[3]
	if last.end != 10_000_003 {
		t.Errorf("last span end = %d, want 10000003", last.end)
	}
	if got := last.end - last.start; got != 2_500_003 {
		t.Errorf("last span length = %d, want 2500003", got)
	}
}

func TestPartitionContiguousCoverage(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 4096, 99991} {
		for _, parts := range []int{1, 2, 3, 4, 7, 16, 200} {
			spans := partition(n, parts)

			next := 0
			for _, s := range spans {
				if s.start != next {
					t.Fatalf("n=%d parts=%d: span starts at %d, want %d",
						n, parts, s.start, next)
				}
				if s.end <= s.start {
					t.Fatalf("n=%d parts=%d: empty span [%d,%d)",
						n, parts, s.start, s.end)
				}

				next = s.end
			}

			if next != n {
				t.Fatalf("n=%d parts=%d: coverage ends at %d, want %d",
					n, parts, next, n)
			}
		}
	}
}
