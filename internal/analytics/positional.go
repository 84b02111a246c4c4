package analytics

import "github.com/omarshaarawi/leaguedash/internal/models"

// AggregateAverages rescales each team's per-position averages so that they
// add up to the team's true average weekly score.
//
// Positional averages are computed and rounded independently, so their sum
// drifts away from the mean of the weekly totals. The drift is redistributed
// proportionally. Teams without a weekly score history have no true average
// and are left out of the result.
func AggregateAverages(weeklyScores map[string][]float64, positionAverages map[string]map[models.Position]float64) map[string]map[models.Position]float64 {
	corrected := make(map[string]map[models.Position]float64, len(positionAverages))
	for team, averages := range positionAverages {
		weeks := weeklyScores[team]
		if len(weeks) == 0 {
			continue
		}
		trueAverage := Mean(weeks)

		rawSum := 0.0
		for _, v := range averages {
			rawSum += v
		}

		out := make(map[models.Position]float64, len(averages))
		for pos, v := range averages {
			if rawSum == 0 {
				out[pos] = 0
				continue
			}
			out[pos] = trueAverage * (v / rawSum)
		}
		corrected[team] = out
	}
	return corrected
}

// PositionAverages pulls the raw averages out of the averages-mode roster rows.
func PositionAverages(rows []models.TeamRosterRow) map[string]map[models.Position]float64 {
	out := make(map[string]map[models.Position]float64)
	for _, row := range rows {
		avg, ok := row.Scores.(models.AverageScores)
		if !ok {
			continue
		}
		byPos := make(map[models.Position]float64, len(avg.ByPosition))
		for pos, v := range avg.ByPosition {
			byPos[pos] = v
		}
		out[row.Team] = byPos
	}
	return out
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
