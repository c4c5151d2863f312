package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 500*time.Millisecond)
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("expected 2 gen/sec, got %v", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Fatalf("expected first sample to seed the average, got %v", s.AveragePopulation)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("expected moving average 110, got %v", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.Population != 200 {
		t.Fatalf("unexpected totals: %+v", s)
	}
}
