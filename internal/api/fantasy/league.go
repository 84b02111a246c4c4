package fantasy

import (
	"context"
	"errors"
	"fmt"

	"github.com/omarshaarawi/leaguedash/internal/api/dashdata"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

var (
	// ErrConfigLoad means the league config could not be fetched or was
	// unusable. Nothing else can be loaded without it.
	ErrConfigLoad = errors.New("config load failure")
	// ErrSeasonLoad is isolated to one year.
	ErrSeasonLoad = errors.New("season load failure")
	// ErrDataShape marks a document that decoded but violates the data model.
	ErrDataShape = errors.New("data shape failure")
)

type Source interface {
	GetConfig(ctx context.Context) (*models.LeagueConfig, error)
	GetSeason(ctx context.Context, year string) (*models.SeasonDataset, error)
}

type API struct {
	source Source
}

func NewAPI(source Source) *API {
	return &API{source: source}
}

var _ Source = (*dashdata.API)(nil)

func (a *API) LoadConfig(ctx context.Context) (*models.LeagueConfig, error) {
	cfg, err := a.source.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}
	if len(cfg.Years) == 0 {
		return nil, fmt.Errorf("%w: no seasons configured", ErrConfigLoad)
	}
	for _, y := range cfg.Years {
		if y == "" {
			return nil, fmt.Errorf("%w: empty season year", ErrConfigLoad)
		}
	}
	return cfg, nil
}

// LoadSeason fetches one season. Gaps such as empty rosters are left for the
// analytics layer to degrade on; only contradictions in the document itself
// are rejected here.
func (a *API) LoadSeason(ctx context.Context, year string) (*models.SeasonDataset, error) {
	dataset, err := a.source.GetSeason(ctx, year)
	if errors.Is(err, models.ErrUnknownAnalysisType) {
		return nil, fmt.Errorf("%w: %w: %w", ErrSeasonLoad, ErrDataShape, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeasonLoad, err)
	}
	if err := Validate(dataset); err != nil {
		return nil, fmt.Errorf("%w: season %s: %w", ErrSeasonLoad, year, err)
	}
	return dataset, nil
}

func Validate(d *models.SeasonDataset) error {
	if d == nil {
		return fmt.Errorf("%w: empty document", ErrDataShape)
	}
	if d.ProjectionWeek < 0 {
		return fmt.Errorf("%w: projection week %d", ErrDataShape, d.ProjectionWeek)
	}
	for _, row := range d.Rosters {
		if row.Scores == nil {
			return fmt.Errorf("%w: roster row for %s has no scores", ErrDataShape, row.Team)
		}
		if row.Scores.AnalysisType() != d.AnalysisType {
			return fmt.Errorf("%w: roster row for %s is %s in a %s season", ErrDataShape, row.Team, row.Scores.AnalysisType(), d.AnalysisType)
		}
	}
	return nil
}

// UnevenWeeks lists teams whose weekly history length differs from the
// season's. It is reported, not rejected.
func UnevenWeeks(d *models.SeasonDataset) []string {
	weeks := d.WeeksPlayed()
	var teams []string
	for _, team := range d.Teams() {
		scores, ok := d.WeeklyScores[team]
		if ok && len(scores) != weeks {
			teams = append(teams, team)
		}
	}
	return teams
}
