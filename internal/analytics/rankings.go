package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

var ErrRankIntegrity = errors.New("rank integrity")

// AssembleRankings orders rankings by their supplied rank. Ranks are never
// recomputed; ties keep their input order.
func AssembleRankings(rankings []models.TeamRanking) []models.TeamRanking {
	out := make([]models.TeamRanking, len(rankings))
	copy(out, rankings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})
	return out
}

// CheckRankings reports duplicate or non-contiguous ranks. The result is
// informational; callers still display the assembled rankings.
func CheckRankings(rankings []models.TeamRanking) error {
	seen := make(map[int]string, len(rankings))
	var errs []error
	for _, r := range rankings {
		if r.Rank < 1 || r.Rank > len(rankings) {
			errs = append(errs, fmt.Errorf("%w: %s has rank %d outside 1..%d", ErrRankIntegrity, r.Team, r.Rank, len(rankings)))
			continue
		}
		if other, ok := seen[r.Rank]; ok {
			errs = append(errs, fmt.Errorf("%w: rank %d shared by %s and %s", ErrRankIntegrity, r.Rank, other, r.Team))
			continue
		}
		seen[r.Rank] = r.Team
	}
	return errors.Join(errs...)
}

// AssembleRatings keeps the caller's order.
func AssembleRatings(ratings []models.TeamRating) []models.TeamRating {
	out := make([]models.TeamRating, len(ratings))
	copy(out, ratings)
	return out
}
