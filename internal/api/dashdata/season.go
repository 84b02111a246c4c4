package dashdata

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

const configDocument = "config.json"

// SeasonDocumentName is the file a season is published under.
func SeasonDocumentName(year string) string {
	return fmt.Sprintf("data_%s.json", year)
}

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetConfig(ctx context.Context) (*models.LeagueConfig, error) {
	var doc models.ConfigDocument
	if err := a.client.Get(ctx, configDocument, &doc); err != nil {
		return nil, fmt.Errorf("fetching league config: %w", err)
	}

	return &models.LeagueConfig{
		Years:       doc.Years,
		LogoURL:     doc.LogoURL,
		LastUpdated: doc.LastUpdated,
	}, nil
}

func (a *API) GetSeason(ctx context.Context, year string) (*models.SeasonDataset, error) {
	var doc models.SeasonDocument
	if err := a.client.Get(ctx, SeasonDocumentName(year), &doc); err != nil {
		return nil, fmt.Errorf("fetching season %s: %w", year, err)
	}

	dataset, err := ToDataset(year, doc)
	if err != nil {
		return nil, fmt.Errorf("decoding season %s: %w", year, err)
	}
	return dataset, nil
}

// ToDataset converts a raw season document into the typed dataset, choosing
// the roster row variant from the document's analysis type.
func ToDataset(year string, doc models.SeasonDocument) (*models.SeasonDataset, error) {
	analysisType, err := models.ParseAnalysisType(doc.AnalysisType)
	if err != nil {
		return nil, err
	}
	positions := models.ParsePositions(doc.Positions)

	dataset := &models.SeasonDataset{
		Year:               year,
		PowerRankings:      make([]models.TeamRanking, 0, len(doc.PowerRankings)),
		PerformanceRatings: make([]models.TeamRating, 0, len(doc.FDVOA)),
		Rosters:            make([]models.TeamRosterRow, 0, len(doc.Rosters)),
		WeeklyScores:       make(map[string][]float64, len(doc.WeeklyScores)),
		AnalysisType:       analysisType,
		ActivePositions:    positions,
		ProjectionWeek:     doc.ProjectionWeek,
		IsCurrentSeason:    doc.IsCurrentSeason,
	}

	for _, r := range doc.PowerRankings {
		dataset.PowerRankings = append(dataset.PowerRankings, models.TeamRanking{
			Rank:       r.Rank,
			Team:       r.Team,
			AvatarURL:  r.Avatar,
			PowerScore: r.PowerScore,
		})
	}

	for _, r := range doc.FDVOA {
		dataset.PerformanceRatings = append(dataset.PerformanceRatings, models.TeamRating{
			Team:              r.Team,
			AvatarURL:         r.Avatar,
			PerformanceRating: r.FDVOA,
		})
	}

	for _, record := range doc.Rosters {
		team := record.String("Team")
		if team == "" {
			continue
		}
		dataset.Rosters = append(dataset.Rosters, models.TeamRosterRow{
			Team:      team,
			AvatarURL: record.String("Avatar"),
			Scores:    rosterScores(record, analysisType, positions),
		})
	}

	for team, scores := range doc.WeeklyScores {
		dataset.WeeklyScores[team] = append([]float64(nil), scores...)
	}

	return dataset, nil
}

func rosterScores(record models.RosterRecord, analysisType models.AnalysisType, positions []models.Position) models.PositionScores {
	switch analysisType {
	case models.LiveScoring:
		live := models.LiveScores{
			Live:      make(map[models.Position]float64, len(positions)),
			Projected: make(map[models.Position]float64, len(positions)),
			Status:    make(map[models.Position]models.ScoreStatus, len(positions)),
		}
		var sumLive, sumProjected float64
		for _, pos := range positions {
			l, _ := record.Number(models.LiveKey(string(pos)))
			p, _ := record.Number(models.ProjectedKey(string(pos)))
			live.Live[pos] = l
			live.Projected[pos] = p
			live.Status[pos] = models.ParseScoreStatus(record.String(models.StatusKey(string(pos))))
			sumLive += l
			sumProjected += p
		}
		live.TotalLive = numberOr(record, models.LiveKey("Total"), sumLive)
		live.TotalProjected = numberOr(record, models.ProjectedKey("Total"), sumProjected)
		return live

	case models.Projections:
		byPos, sum := positionColumns(record, positions)
		return models.ProjectedScores{ByPosition: byPos, Total: numberOr(record, "Total", sum)}

	default:
		byPos, sum := positionColumns(record, positions)
		return models.AverageScores{ByPosition: byPos, Total: numberOr(record, "Total", sum)}
	}
}

func positionColumns(record models.RosterRecord, positions []models.Position) (map[models.Position]float64, float64) {
	byPos := make(map[models.Position]float64, len(positions))
	sum := 0.0
	for _, pos := range positions {
		v, _ := record.Number(string(pos))
		byPos[pos] = v
		sum += v
	}
	return byPos, sum
}

func numberOr(record models.RosterRecord, key string, fallback float64) float64 {
	if v, ok := record.Number(key); ok {
		return v
	}
	return fallback
}
