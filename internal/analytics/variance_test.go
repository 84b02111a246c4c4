package analytics

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize("A", []float64{40, 10, 30, 20})

	if s.Min != 10 || s.Max != 40 {
		t.Errorf("min/max = %v/%v", s.Min, s.Max)
	}
	if s.Median != 25 {
		t.Errorf("median = %v, want 25", s.Median)
	}
	if s.Q1 != 17.5 || s.Q3 != 32.5 {
		t.Errorf("quartiles = %v/%v, want 17.5/32.5", s.Q1, s.Q3)
	}
	if s.Mean != 25 {
		t.Errorf("mean = %v, want 25", s.Mean)
	}
	if want := math.Sqrt(125); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("stddev = %v, want %v", s.StdDev, want)
	}
	if s.Scores[0] != 40 {
		t.Error("scores should keep week order")
	}
}

func TestVariance_SortedByMedian(t *testing.T) {
	got := Variance(map[string][]float64{
		"Low":   {50, 60},
		"High":  {100, 140},
		"Empty": {},
	})
	if len(got) != 2 {
		t.Fatalf("got %d teams, want 2", len(got))
	}
	if got[0].Team != "High" || got[1].Team != "Low" {
		t.Errorf("order = %s, %s", got[0].Team, got[1].Team)
	}
}

func TestQuantile_Single(t *testing.T) {
	if got := Quantile([]float64{7}, 0.75); got != 7 {
		t.Errorf("Quantile single = %v", got)
	}
	if got := Quantile(nil, 0.5); got != 0 {
		t.Errorf("Quantile empty = %v", got)
	}
}
