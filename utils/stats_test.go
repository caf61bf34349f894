package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 100*time.Millisecond)
	if s.AveragePopulation != 10 || s.PeakPopulation != 10 {
		t.Fatalf("after first update: %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 20, 0)
	if s.AveragePopulation != 11 {
		t.Errorf("AveragePopulation = %v, want 11", s.AveragePopulation)
	}
	if s.PeakPopulation != 20 || s.TotalGenerations != 2 {
		t.Errorf("unexpected stats %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("zero duration changed GenerationsPerSecond to %v", s.GenerationsPerSecond)
	}
}

func TestOverallRate(t *testing.T) {
	if got := rateOver(30, 10*time.Second); got != 3 {
		t.Errorf("rateOver(30, 10s) = %v, want 3", got)
	}
	if got := rateOver(5, 0); got != 0 {
		t.Errorf("rateOver(5, 0) = %v, want 0", got)
	}

	// the last frame's rate does not stand in for the whole run
	s := &Stats{StartTime: time.Now().Add(-10 * time.Second)}
	s.Update(10, 1, 10*time.Millisecond)
	if s.GenerationsPerSecond != 100 {
		t.Fatalf("GenerationsPerSecond = %v, want 100", s.GenerationsPerSecond)
	}
	if rate := s.OverallRate(); rate <= 0 || rate > 1.01 {
		t.Errorf("OverallRate() = %v, want about 1", rate)
	}
}
