package analytics

import (
	"sort"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

// RegularSeasonWeeks is the horizon over which power scores shift from
// scoring volume to performance rating.
const RegularSeasonWeeks = 17

// PerformanceWeight is the share of the power score carried by the
// performance rating at the given week.
func PerformanceWeight(currentWeek, totalWeeks int) float64 {
	if currentWeek <= 1 || totalWeeks <= 0 {
		return 0
	}
	w := float64(currentWeek-1) / float64(totalWeeks)
	if w > 1 {
		return 1
	}
	return w
}

// PointsFor totals each team's weekly scores.
func PointsFor(weeklyScores map[string][]float64) map[string]float64 {
	out := make(map[string]float64, len(weeklyScores))
	for team, scores := range weeklyScores {
		total := 0.0
		for _, s := range scores {
			total += s
		}
		out[team] = total
	}
	return out
}

// DerivePowerRankings builds power rankings for seasons that ship ratings and
// scores but no precomputed rankings. Points for and performance rating are
// normalized to [0, 1] and blended by PerformanceWeight. Without ratings the
// ranking falls back to normalized points for alone.
func DerivePowerRankings(pointsFor map[string]float64, ratings []models.TeamRating, currentWeek int) []models.TeamRanking {
	if len(pointsFor) == 0 {
		return []models.TeamRanking{}
	}

	type entry struct {
		team   string
		avatar string
		pf     float64
		rating float64
	}

	var entries []entry
	if len(ratings) == 0 {
		for team, pf := range pointsFor {
			entries = append(entries, entry{team: team, pf: pf})
		}
	} else {
		for _, r := range ratings {
			pf, ok := pointsFor[r.Team]
			if !ok {
				continue
			}
			entries = append(entries, entry{team: r.Team, avatar: r.AvatarURL, pf: pf, rating: r.PerformanceRating})
		}
	}
	if len(entries) == 0 {
		return []models.TeamRanking{}
	}

	pfs := make([]float64, len(entries))
	ratingValues := make([]float64, len(entries))
	for i, e := range entries {
		pfs[i] = e.pf
		ratingValues[i] = e.rating
	}
	pfRange, ratingRange := ColumnRange(pfs), ColumnRange(ratingValues)

	weight := 0.0
	if len(ratings) > 0 {
		weight = PerformanceWeight(currentWeek, RegularSeasonWeeks)
	}

	rankings := make([]models.TeamRanking, len(entries))
	for i, e := range entries {
		score := normalize(e.pf, pfRange)*(1-weight) + normalize(e.rating, ratingRange)*weight
		rankings[i] = models.TeamRanking{Team: e.team, AvatarURL: e.avatar, PowerScore: score}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].PowerScore != rankings[j].PowerScore {
			return rankings[i].PowerScore > rankings[j].PowerScore
		}
		return rankings[i].Team < rankings[j].Team
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

func normalize(v float64, r Range) float64 {
	if r.Max-r.Min <= 0 {
		return 0.5
	}
	return (v - r.Min) / (r.Max - r.Min)
}
