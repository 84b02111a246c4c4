package models

import (
	"encoding/json"
	"strings"
)

// ConfigDocument is the league-level config.json.
type ConfigDocument struct {
	Years       []string `json:"years"`
	LogoURL     string   `json:"logoUrl"`
	LastUpdated string   `json:"lastUpdated"`
}

// SeasonDocument is the raw shape of a data_<year>.json file.
type SeasonDocument struct {
	PowerRankings   []RankingRecord      `json:"power_rankings"`
	FDVOA           []RatingRecord       `json:"fdvoa"`
	Rosters         []RosterRecord       `json:"rosters"`
	WeeklyScores    map[string][]float64 `json:"weekly_scores"`
	AnalysisType    string               `json:"analysis_type"`
	Positions       []string             `json:"positions"`
	ProjectionWeek  int                  `json:"projection_week"`
	IsCurrentSeason bool                 `json:"is_current_season"`
}

type RankingRecord struct {
	Rank       int     `json:"Rank"`
	Team       string  `json:"Team"`
	Avatar     string  `json:"Avatar"`
	PowerScore float64 `json:"Power Score"`
}

type RatingRecord struct {
	Team   string  `json:"Team"`
	Avatar string  `json:"Avatar"`
	FDVOA  float64 `json:"F-DVOA (%)"`
}

// RosterRecord keeps the dynamic per-position columns of a roster row.
type RosterRecord map[string]json.RawMessage

func (r RosterRecord) String(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Number returns the numeric value stored under key. Missing keys, nulls
// and non-numeric values report false.
func (r RosterRecord) Number(key string) (float64, bool) {
	raw, ok := r[key]
	if !ok {
		return 0, false
	}
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return 0, false
	}
	return *f, true
}

// LiveKey, ProjectedKey and StatusKey name the live-mode columns of a
// position, e.g. "QB_live".
func LiveKey(column string) string      { return column + "_live" }
func ProjectedKey(column string) string { return column + "_proj" }
func StatusKey(column string) string    { return column + "_status" }

func normalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
