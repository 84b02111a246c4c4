package service

import (
	"github.com/omarshaarawi/leaguedash/internal/analytics"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

type SeasonStatus struct {
	Year  string `json:"year"`
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

type RankingsView struct {
	Year    string               `json:"year"`
	Derived bool                 `json:"derived"`
	Rows    []models.TeamRanking `json:"rows"`
}

type RatingsView struct {
	Year  string              `json:"year"`
	Rows  []models.TeamRating `json:"rows"`
	Range analytics.Range     `json:"range"`
}

type PositionalCell struct {
	Position  models.Position         `json:"position"`
	Value     float64                 `json:"value"`
	Projected *float64                `json:"projected,omitempty"`
	Status    string                  `json:"status,omitempty"`
	Color     analytics.ScalePosition `json:"color"`
	CSS       string                  `json:"css"`
}

type PositionalRow struct {
	Team           string           `json:"team"`
	AvatarURL      string           `json:"avatarUrl"`
	Cells          []PositionalCell `json:"cells"`
	Total          float64          `json:"total"`
	TotalProjected *float64         `json:"totalProjected,omitempty"`
	TotalStatus    string           `json:"totalStatus,omitempty"`
	// Corrected is false for averages rows that could not be rescaled to the
	// team's weekly history.
	Corrected bool `json:"corrected"`
}

// ChartSeries is one stack of the positional bar chart.
type ChartSeries struct {
	Name   models.Position `json:"name"`
	Teams  []string        `json:"teams"`
	Values []float64       `json:"values"`
}

type PositionalTable struct {
	Year         string                              `json:"year"`
	Title        string                              `json:"title"`
	Subtitle     string                              `json:"subtitle"`
	AnalysisType string                              `json:"analysisType"`
	Week         int                                 `json:"week"`
	Positions    []models.Position                   `json:"positions"`
	Ranges       map[models.Position]analytics.Range `json:"ranges"`
	Rows         []PositionalRow                     `json:"rows"`
	Series       []ChartSeries                       `json:"series"`
}

type VarianceView struct {
	Year  string               `json:"year"`
	Teams []analytics.BoxStats `json:"teams"`
}

type TeamReport struct {
	Year       string              `json:"year"`
	Team       string              `json:"team"`
	AvatarURL  string              `json:"avatarUrl"`
	Ranking    *models.TeamRanking `json:"ranking,omitempty"`
	Rating     *models.TeamRating  `json:"rating,omitempty"`
	Positional *PositionalRow      `json:"positional,omitempty"`
	Variance   *analytics.BoxStats `json:"variance,omitempty"`
}
