package confidence_test

import (
	"math"
	"testing"

	"lumen/internal/confidence"
)

func TestScoreRampEdges(t *testing.T) {
	const good, bad = 1.0, 8.0
	if got := confidence.Score(1.0, good, good, bad); got != 1.0 {
		t.Fatalf("score at good threshold = %v, want 1", got)
	}
	if got := confidence.Score(1.0, bad, good, bad); got != 0.0 {
		t.Fatalf("score at bad threshold = %v, want 0", got)
	}
	mid := confidence.Score(1.0, (good+bad)/2, good, bad)
	if math.Abs(mid-0.5) > 1e-12 {
		t.Fatalf("score at ramp midpoint = %v, want 0.5", mid)
	}
}

func TestScoreBounds(t *testing.T) {
	for _, frac := range []float64{-1, 0, 0.3, 1, 5} {
		for _, mae := range []float64{-10, 0, 1, 4.5, 8, 100, 1e9} {
			got := confidence.Score(frac, mae, 1.0, 8.0)
			if got < 0 || got > 1 {
				t.Fatalf("Score(%v, %v) = %v out of [0,1]", frac, mae, got)
			}
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for _, mae := range []float64{0, 1, 2, 4, 6, 8, 20} {
		got := confidence.Score(0.8, mae, 1.0, 8.0)
		if got > prev {
			t.Fatalf("score increased with mae: %v -> %v at mae=%v", prev, got, mae)
		}
		prev = got
	}

	prev = -1
	for _, frac := range []float64{0, 0.2, 0.5, 0.9, 1.0} {
		got := confidence.Score(frac, 2.0, 1.0, 8.0)
		if got < prev {
			t.Fatalf("score decreased with frac: %v -> %v at frac=%v", prev, got, frac)
		}
		prev = got
	}
}

func TestScoreDegenerateRampIsHardThreshold(t *testing.T) {
	if got := confidence.Score(1.0, 0.5, 1.0, 1.0); got != 1.0 {
		t.Fatalf("below-threshold score = %v, want 1", got)
	}
	if got := confidence.Score(1.0, 1.5, 1.0, 1.0); got != 0.0 {
		t.Fatalf("above-threshold score = %v, want 0", got)
	}
}
