package analytics

import "github.com/omarshaarawi/leaguedash/internal/models"

// LiveEpsilon guards against floating noise in live point totals.
const LiveEpsilon = 0.001

type ResolvedScore struct {
	Value     float64            `json:"value"`
	Status    models.ScoreStatus `json:"status"`
	Projected float64            `json:"projected"`
}

// IsProjected reports whether the displayed value is a projection.
func (r ResolvedScore) IsProjected() bool {
	return r.Status == models.StatusProjected
}

// Resolve picks the value to display for a team/position. Once a position
// has started or finished, or has scored, the live value wins even at zero.
func Resolve(live, projected float64, status models.ScoreStatus) ResolvedScore {
	if status != models.StatusProjected || live > LiveEpsilon {
		return ResolvedScore{Value: live, Status: status, Projected: projected}
	}
	return ResolvedScore{Value: projected, Status: models.StatusProjected, Projected: projected}
}

// CombinedStatus summarizes the statuses of a set of positions: final once
// everything is final, projected while nothing has started.
func CombinedStatus(statuses []models.ScoreStatus) models.ScoreStatus {
	if len(statuses) == 0 {
		return models.StatusProjected
	}
	allFinal, allProjected := true, true
	for _, s := range statuses {
		if s != models.StatusFinal {
			allFinal = false
		}
		if s != models.StatusProjected {
			allProjected = false
		}
	}
	switch {
	case allFinal:
		return models.StatusFinal
	case allProjected:
		return models.StatusProjected
	default:
		return models.StatusActive
	}
}

// ResolveLive resolves every active position of a live row plus its total.
func ResolveLive(scores models.LiveScores, positions []models.Position) (map[models.Position]ResolvedScore, ResolvedScore) {
	resolved := make(map[models.Position]ResolvedScore, len(positions))
	statuses := make([]models.ScoreStatus, 0, len(positions))
	for _, pos := range positions {
		status := scores.Status[pos]
		resolved[pos] = Resolve(scores.Live[pos], scores.Projected[pos], status)
		statuses = append(statuses, status)
	}
	total := Resolve(scores.TotalLive, scores.TotalProjected, CombinedStatus(statuses))
	return resolved, total
}
