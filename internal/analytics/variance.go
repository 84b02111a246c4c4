package analytics

import (
	"math"
	"sort"
)

// BoxStats summarizes one team's weekly scores for a box-and-whisker chart.
type BoxStats struct {
	Team   string    `json:"team"`
	Weeks  int       `json:"weeks"`
	Min    float64   `json:"min"`
	Q1     float64   `json:"q1"`
	Median float64   `json:"median"`
	Q3     float64   `json:"q3"`
	Max    float64   `json:"max"`
	Mean   float64   `json:"mean"`
	StdDev float64   `json:"stdDev"`
	Scores []float64 `json:"scores"`
}

// Variance computes BoxStats for every team with at least one played week,
// ordered by median descending.
func Variance(weeklyScores map[string][]float64) []BoxStats {
	stats := make([]BoxStats, 0, len(weeklyScores))
	for team, scores := range weeklyScores {
		if len(scores) == 0 {
			continue
		}
		stats = append(stats, Summarize(team, scores))
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Median != stats[j].Median {
			return stats[i].Median > stats[j].Median
		}
		return stats[i].Team < stats[j].Team
	})
	return stats
}

func Summarize(team string, scores []float64) BoxStats {
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	mean := Mean(sorted)
	sq := 0.0
	for _, s := range sorted {
		sq += (s - mean) * (s - mean)
	}

	return BoxStats{
		Team:   team,
		Weeks:  len(sorted),
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		StdDev: math.Sqrt(sq / float64(len(sorted))),
		Scores: append([]float64(nil), scores...),
	}
}

// Quantile uses linear interpolation between closest ranks on an already
// sorted slice.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
