package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDEF Position = "DEF"
)

// DefaultPositions is used when a season document does not list its own.
var DefaultPositions = []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDEF}

func ParsePositions(raw []string) []Position {
	if len(raw) == 0 {
		return append([]Position(nil), DefaultPositions...)
	}
	positions := make([]Position, 0, len(raw))
	seen := make(map[Position]bool, len(raw))
	for _, r := range raw {
		p := Position(normalizeKey(r))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		positions = append(positions, p)
	}
	if len(positions) == 0 {
		return append([]Position(nil), DefaultPositions...)
	}
	return positions
}

type AnalysisType int

var ErrUnknownAnalysisType = errors.New("unknown analysis type")

const (
	SeasonAverages AnalysisType = iota
	Projections
	LiveScoring
)

func (a AnalysisType) String() string {
	switch a {
	case SeasonAverages:
		return "averages"
	case Projections:
		return "projections"
	case LiveScoring:
		return "scores"
	default:
		return "unknown"
	}
}

func ParseAnalysisType(s string) (AnalysisType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "averages", "":
		return SeasonAverages, nil
	case "projections":
		return Projections, nil
	case "scores", "live":
		return LiveScoring, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownAnalysisType, s)
	}
}

type ScoreStatus int

const (
	StatusProjected ScoreStatus = iota
	StatusActive
	StatusFinal
)

func (s ScoreStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinal:
		return "final"
	default:
		return "projected"
	}
}

func (s ScoreStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseScoreStatus treats anything unrecognized as projected, which is
// what a position that has not kicked off looks like.
func ParseScoreStatus(s string) ScoreStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "live", "in_progress":
		return StatusActive
	case "final", "complete", "completed":
		return StatusFinal
	default:
		return StatusProjected
	}
}

type LeagueConfig struct {
	Years       []string `json:"years"`
	LogoURL     string   `json:"logoUrl"`
	LastUpdated string   `json:"lastUpdated"`
}

// LatestYear returns the first configured year; config years are newest first.
func (c *LeagueConfig) LatestYear() string {
	if c == nil || len(c.Years) == 0 {
		return ""
	}
	return c.Years[0]
}

type TeamRanking struct {
	Rank       int     `json:"rank"`
	Team       string  `json:"team"`
	AvatarURL  string  `json:"avatarUrl"`
	PowerScore float64 `json:"powerScore"`
}

type TeamRating struct {
	Team              string  `json:"team"`
	AvatarURL         string  `json:"avatarUrl"`
	PerformanceRating float64 `json:"performanceRating"`
}

// PositionScores is one of AverageScores, ProjectedScores or LiveScores.
type PositionScores interface {
	AnalysisType() AnalysisType
	positionScores()
}

type AverageScores struct {
	ByPosition map[Position]float64
	Total      float64
}

func (AverageScores) AnalysisType() AnalysisType { return SeasonAverages }
func (AverageScores) positionScores()            {}

type ProjectedScores struct {
	ByPosition map[Position]float64
	Total      float64
}

func (ProjectedScores) AnalysisType() AnalysisType { return Projections }
func (ProjectedScores) positionScores()            {}

type LiveScores struct {
	Live           map[Position]float64
	Projected      map[Position]float64
	Status         map[Position]ScoreStatus
	TotalLive      float64
	TotalProjected float64
}

func (LiveScores) AnalysisType() AnalysisType { return LiveScoring }
func (LiveScores) positionScores()            {}

type TeamRosterRow struct {
	Team      string
	AvatarURL string
	Scores    PositionScores
}

type SeasonDataset struct {
	Year               string
	PowerRankings      []TeamRanking
	PerformanceRatings []TeamRating
	Rosters            []TeamRosterRow
	WeeklyScores       map[string][]float64
	AnalysisType       AnalysisType
	ActivePositions    []Position
	ProjectionWeek     int
	IsCurrentSeason    bool
}

// WeeksPlayed is the length of the weekly score history, which is shared by
// every team in a season.
func (d *SeasonDataset) WeeksPlayed() int {
	weeks := 0
	for _, scores := range d.WeeklyScores {
		if len(scores) > weeks {
			weeks = len(scores)
		}
	}
	return weeks
}

func (d *SeasonDataset) AvatarFor(team string) string {
	for _, r := range d.Rosters {
		if r.Team == team && r.AvatarURL != "" {
			return r.AvatarURL
		}
	}
	for _, r := range d.PowerRankings {
		if r.Team == team && r.AvatarURL != "" {
			return r.AvatarURL
		}
	}
	for _, r := range d.PerformanceRatings {
		if r.Team == team && r.AvatarURL != "" {
			return r.AvatarURL
		}
	}
	return ""
}

// Teams lists every team name seen in the dataset, in first-seen order.
func (d *SeasonDataset) Teams() []string {
	var teams []string
	seen := make(map[string]bool)
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			teams = append(teams, t)
		}
	}
	for _, r := range d.PowerRankings {
		add(r.Team)
	}
	for _, r := range d.PerformanceRatings {
		add(r.Team)
	}
	for _, r := range d.Rosters {
		add(r.Team)
	}
	rest := make([]string, 0, len(d.WeeklyScores))
	for t := range d.WeeklyScores {
		rest = append(rest, t)
	}
	sort.Strings(rest)
	for _, t := range rest {
		add(t)
	}
	return teams
}
