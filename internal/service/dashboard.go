package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/leaguedash/internal/analytics"
	"github.com/omarshaarawi/leaguedash/internal/api/fantasy"
	"github.com/omarshaarawi/leaguedash/internal/models"
	"github.com/omarshaarawi/leaguedash/internal/repository/memory"
)

var (
	// ErrNotAvailable means the year is absent or the requested panel has no
	// data. Transports render a placeholder for it.
	ErrNotAvailable  = errors.New("not available")
	ErrUnknownSeason = errors.New("unknown season")
	ErrTeamNotFound  = errors.New("team not found")
)

// SeasonAbsentError reports a year that is not loaded, either because it was
// never requested or because its last load failed.
type SeasonAbsentError struct {
	Year string
}

func (e *SeasonAbsentError) Error() string {
	return fmt.Sprintf("season %s: %s", e.Year, ErrNotAvailable)
}

func (e *SeasonAbsentError) Unwrap() error {
	return ErrNotAvailable
}

type ConfigLoader interface {
	LoadConfig(ctx context.Context) (*models.LeagueConfig, error)
}

var _ ConfigLoader = (*fantasy.API)(nil)

type DashboardService struct {
	configLoader ConfigLoader
	store        *memory.Store

	mu     sync.RWMutex
	config *models.LeagueConfig
}

func NewDashboardService(configLoader ConfigLoader, store *memory.Store) *DashboardService {
	return &DashboardService{configLoader: configLoader, store: store}
}

// Init loads the league config and then every configured season. A config
// failure is fatal; season failures are logged and leave those years absent.
func (s *DashboardService) Init(ctx context.Context) error {
	_, err := s.Refresh(ctx)
	return err
}

// Refresh re-reads the config and reloads every configured season. When the
// config cannot be fetched the previously loaded config stays in effect and
// seasons are not reloaded.
func (s *DashboardService) Refresh(ctx context.Context) (memory.LoadReport, error) {
	cfg, err := s.configLoader.LoadConfig(ctx)
	if err != nil {
		return memory.LoadReport{}, fmt.Errorf("error loading league config: %w", err)
	}

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()

	report := s.store.LoadAll(ctx, cfg.Years)
	for _, year := range report.Loaded {
		s.audit(year)
	}
	slog.Info("Seasons loaded", "loaded", len(report.Loaded), "failed", len(report.Failed))
	return report, nil
}

func (s *DashboardService) ReloadSeason(ctx context.Context, year string) error {
	if !s.configured(year) {
		return fmt.Errorf("%w: %s", ErrUnknownSeason, year)
	}
	if err := s.store.Load(ctx, year); err != nil {
		return fmt.Errorf("error reloading season %s: %w", year, err)
	}
	s.audit(year)
	return nil
}

func (s *DashboardService) audit(year string) {
	ds, ok := s.store.Get(year)
	if !ok {
		return
	}
	if err := analytics.CheckRankings(ds.PowerRankings); err != nil {
		slog.Warn("Power rankings integrity", "year", year, "error", err)
	}
	if teams := fantasy.UnevenWeeks(ds); len(teams) > 0 {
		slog.Warn("Uneven weekly score history", "year", year, "teams", teams)
	}
}

func (s *DashboardService) Config() *models.LeagueConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *DashboardService) configured(year string) bool {
	for _, y := range configYears(s.Config()) {
		if y == year {
			return true
		}
	}
	return false
}

func (s *DashboardService) Seasons() []SeasonStatus {
	years := configYears(s.Config())
	statuses := make([]SeasonStatus, 0, len(years))
	for _, year := range years {
		st := SeasonStatus{Year: year, State: s.store.State(year).String()}
		if err := s.store.Err(year); err != nil {
			st.Error = err.Error()
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// ResolveYear maps an empty year to the newest configured season.
func (s *DashboardService) ResolveYear(year string) string {
	year = strings.TrimSpace(year)
	if year == "" {
		return s.Config().LatestYear()
	}
	return year
}

func (s *DashboardService) dataset(year string) (*models.SeasonDataset, error) {
	year = s.ResolveYear(year)
	ds, ok := s.store.Get(year)
	if !ok {
		return nil, &SeasonAbsentError{Year: year}
	}
	return ds, nil
}

func (s *DashboardService) PowerRankings(year string) (*RankingsView, error) {
	ds, err := s.dataset(year)
	if err != nil {
		return nil, err
	}

	view := &RankingsView{Year: ds.Year}
	if len(ds.PowerRankings) > 0 {
		view.Rows = analytics.AssembleRankings(ds.PowerRankings)
	} else if len(ds.WeeklyScores) > 0 {
		view.Rows = analytics.DerivePowerRankings(analytics.PointsFor(ds.WeeklyScores), ds.PerformanceRatings, ds.WeeksPlayed()+1)
		for i := range view.Rows {
			if view.Rows[i].AvatarURL == "" {
				view.Rows[i].AvatarURL = ds.AvatarFor(view.Rows[i].Team)
			}
		}
		view.Derived = true
	}
	if len(view.Rows) == 0 {
		return nil, fmt.Errorf("power rankings for %s: %w", ds.Year, ErrNotAvailable)
	}
	return view, nil
}

func (s *DashboardService) Ratings(year string) (*RatingsView, error) {
	ds, err := s.dataset(year)
	if err != nil {
		return nil, err
	}
	rows := analytics.AssembleRatings(ds.PerformanceRatings)
	if len(rows) == 0 {
		return nil, fmt.Errorf("performance ratings for %s: %w", ds.Year, ErrNotAvailable)
	}
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.PerformanceRating
	}
	return &RatingsView{Year: ds.Year, Rows: rows, Range: analytics.ColumnRange(values)}, nil
}

func (s *DashboardService) PositionalTable(year string) (*PositionalTable, error) {
	ds, err := s.dataset(year)
	if err != nil {
		return nil, err
	}
	if len(ds.Rosters) == 0 {
		return nil, fmt.Errorf("positional analysis for %s: %w", ds.Year, ErrNotAvailable)
	}
	return BuildPositionalTable(ds), nil
}

func (s *DashboardService) Variance(year string) (*VarianceView, error) {
	ds, err := s.dataset(year)
	if err != nil {
		return nil, err
	}
	teams := analytics.Variance(ds.WeeklyScores)
	if len(teams) == 0 {
		return nil, fmt.Errorf("weekly variance for %s: %w", ds.Year, ErrNotAvailable)
	}
	return &VarianceView{Year: ds.Year, Teams: teams}, nil
}

func (s *DashboardService) TeamReport(name, year string) (*TeamReport, error) {
	ds, err := s.dataset(year)
	if err != nil {
		return nil, err
	}

	team, ok := findTeam(name, ds.Teams())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, name)
	}

	report := &TeamReport{Year: ds.Year, Team: team, AvatarURL: ds.AvatarFor(team)}

	if rankings, err := s.PowerRankings(ds.Year); err == nil {
		for i := range rankings.Rows {
			if rankings.Rows[i].Team == team {
				report.Ranking = &rankings.Rows[i]
				break
			}
		}
	}
	for i := range ds.PerformanceRatings {
		if ds.PerformanceRatings[i].Team == team {
			r := ds.PerformanceRatings[i]
			report.Rating = &r
			break
		}
	}
	if len(ds.Rosters) > 0 {
		table := BuildPositionalTable(ds)
		for i := range table.Rows {
			if table.Rows[i].Team == team {
				report.Positional = &table.Rows[i]
				break
			}
		}
	}
	if scores := ds.WeeklyScores[team]; len(scores) > 0 {
		stats := analytics.Summarize(team, scores)
		report.Variance = &stats
	}

	return report, nil
}

// findTeam matches a user-typed team name: exact (case-insensitive), then the
// shortest fuzzy subsequence match, then closest Levenshtein similarity.
func findTeam(query string, teams []string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	for _, t := range teams {
		if strings.EqualFold(t, query) {
			return t, true
		}
	}

	if matches := fuzzy.FindFold(query, teams); len(matches) > 0 {
		sort.SliceStable(matches, func(i, j int) bool { return len(matches[i]) < len(matches[j]) })
		return matches[0], true
	}

	var best string
	bestSimilarity := 0.0
	threshold := 0.6

	for _, t := range teams {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(t))
		maxLen := float64(max(len(query), len(t)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestSimilarity {
			bestSimilarity = similarity
			best = t
		}
	}
	return best, best != ""
}

func configYears(cfg *models.LeagueConfig) []string {
	if cfg == nil {
		return nil
	}
	return cfg.Years
}
