package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/omarshaarawi/leaguedash/internal/config"
	"github.com/omarshaarawi/leaguedash/internal/models"
	"github.com/omarshaarawi/leaguedash/internal/repository/memory"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

type stubConfig struct{ cfg *models.LeagueConfig }

func (s stubConfig) LoadConfig(ctx context.Context) (*models.LeagueConfig, error) {
	return s.cfg, nil
}

type stubSeasons map[string]*models.SeasonDataset

func (s stubSeasons) LoadSeason(ctx context.Context, year string) (*models.SeasonDataset, error) {
	if ds, ok := s[year]; ok {
		return ds, nil
	}
	return nil, errors.New("unexpected status code: 404")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	seasons := stubSeasons{
		"2023": {
			Year:            "2023",
			AnalysisType:    models.SeasonAverages,
			ActivePositions: []models.Position{"QB", "RB"},
			PowerRankings:   []models.TeamRanking{{Rank: 1, Team: "UGF Pandas", PowerScore: 0.7}},
			Rosters: []models.TeamRosterRow{{Team: "UGF Pandas", Scores: models.AverageScores{
				ByPosition: map[models.Position]float64{"QB": 10, "RB": 10},
				Total:      20,
			}}},
			WeeklyScores: map[string][]float64{"UGF Pandas": {30, 50}},
		},
	}
	cfg := &models.LeagueConfig{Years: []string{"2024", "2023"}, LogoURL: "logo.png"}
	svc := service.NewDashboardService(stubConfig{cfg: cfg}, memory.NewStore(seasons, 2))
	if err := svc.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	ts := httptest.NewServer(New(svc).Routes(config.HTTP{AllowedOrigins: []string{"*"}}))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	if code, _ := get(t, ts, "/healthz"); code != http.StatusOK {
		t.Errorf("healthz = %d", code)
	}
}

func TestConfigAndSeasons(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts, "/api/config")
	if code != http.StatusOK || !strings.Contains(body, `"logoUrl":"logo.png"`) {
		t.Errorf("config = %d %s", code, body)
	}

	code, body = get(t, ts, "/api/seasons")
	var statuses []service.SeasonStatus
	if err := json.Unmarshal([]byte(body), &statuses); err != nil || code != http.StatusOK {
		t.Fatalf("seasons = %d %s (%v)", code, body, err)
	}
	if len(statuses) != 2 || statuses[0].State != "failed" || statuses[1].State != "loaded" {
		t.Errorf("statuses = %+v", statuses)
	}
}

func TestPositions(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts, "/api/seasons/2023/positions")
	if code != http.StatusOK {
		t.Fatalf("positions = %d %s", code, body)
	}
	var table service.PositionalTable
	if err := json.Unmarshal([]byte(body), &table); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Cells[0].Value != 20 || !table.Rows[0].Corrected {
		t.Errorf("table rows = %+v", table.Rows)
	}
	if !table.Rows[0].Cells[0].Color.Neutral {
		t.Error("a single-team column should be neutral")
	}
}

func TestPlaceholders(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path string
		want string
	}{
		{"/api/seasons/2024/rankings", msgSeasonUnavailable},
		{"/api/seasons/2023/ratings", msgRatings},
		{"/api/seasons/1990/variance", msgSeasonUnavailable},
	}
	for _, tt := range tests {
		code, body := get(t, ts, tt.path)
		if code != http.StatusNotFound || !strings.Contains(body, tt.want) {
			t.Errorf("GET %s = %d %s, want 404 with %q", tt.path, code, body, tt.want)
		}
	}
}

func TestTeam(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts, "/api/seasons/2023/teams/pandas")
	if code != http.StatusOK || !strings.Contains(body, `"team":"UGF Pandas"`) {
		t.Errorf("team = %d %s", code, body)
	}

	code, _ = get(t, ts, "/api/seasons/2023/teams/qqqqqqqqqq")
	if code != http.StatusNotFound {
		t.Errorf("unknown team = %d", code)
	}
}

func TestReload(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/seasons/2023/reload", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("reload 2023 = %d", resp.StatusCode)
	}

	resp, err = http.Post(ts.URL+"/api/seasons/2024/reload", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("reload 2024 = %d", resp.StatusCode)
	}

	resp, err = http.Post(ts.URL+"/api/seasons/1980/reload", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("reload 1980 = %d", resp.StatusCode)
	}
}
