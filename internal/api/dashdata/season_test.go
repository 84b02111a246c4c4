package dashdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/omarshaarawi/leaguedash/internal/config"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

const averagesDoc = `{
	"power_rankings": [{"Rank": 1, "Team": "Amy", "Avatar": "a.png", "Power Score": 0.91}],
	"fdvoa": [{"Team": "Amy", "Avatar": "a.png", "F-DVOA (%)": -3.5}],
	"rosters": [
		{"Team": "Amy", "Avatar": "a.png", "QB": 20.5, "RB": 30, "WR": 0, "TE": 8, "K": 7, "DEF": 4.5, "Total": 70},
		{"Team": "Bo", "Avatar": "b.png", "QB": 10, "RB": 10}
	],
	"weekly_scores": {"Amy": [100, 90], "Bo": [80, 70]},
	"analysis_type": "averages",
	"projection_week": 17
}`

const liveDoc = `{
	"rosters": [{
		"Team": "Amy", "Avatar": "a.png",
		"QB_live": 12.4, "QB_proj": 18, "QB_status": "active",
		"RB_live": 0, "RB_proj": 15, "RB_status": "projected",
		"Total_proj": 40
	}],
	"analysis_type": "scores",
	"positions": ["qb", "RB", "QB"],
	"projection_week": 6,
	"is_current_season": true
}`

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewAPI(NewClient(config.DataSource{BaseURL: ts.URL + "/", FetchTimeout: 2 * time.Second}))
}

func TestGetConfig(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/config.json" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("t") == "" {
			t.Error("request missing cache-busting parameter")
		}
		w.Write([]byte(`{"years": ["2024", "2023"], "logoUrl": "logo.png", "lastUpdated": "2024-11-02 10:00:00"}`))
	})

	cfg, err := api.GetConfig(context.Background())
	if err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}
	if len(cfg.Years) != 2 || cfg.LatestYear() != "2024" || cfg.LogoURL != "logo.png" {
		t.Errorf("GetConfig() = %+v", cfg)
	}
}

func TestGetSeason_Averages(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data_2023.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(averagesDoc))
	})

	ds, err := api.GetSeason(context.Background(), "2023")
	if err != nil {
		t.Fatalf("GetSeason() error = %v", err)
	}

	if ds.Year != "2023" || ds.AnalysisType != models.SeasonAverages || ds.ProjectionWeek != 17 {
		t.Errorf("dataset header = %+v", ds)
	}
	if len(ds.ActivePositions) != len(models.DefaultPositions) {
		t.Errorf("positions = %v, want defaults", ds.ActivePositions)
	}
	if ds.PowerRankings[0].PowerScore != 0.91 || ds.PerformanceRatings[0].PerformanceRating != -3.5 {
		t.Errorf("rankings/ratings not decoded: %+v %+v", ds.PowerRankings, ds.PerformanceRatings)
	}

	amy, ok := ds.Rosters[0].Scores.(models.AverageScores)
	if !ok {
		t.Fatalf("roster row type = %T, want AverageScores", ds.Rosters[0].Scores)
	}
	if amy.ByPosition[models.PositionQB] != 20.5 || amy.Total != 70 {
		t.Errorf("Amy = %+v", amy)
	}

	bo := ds.Rosters[1].Scores.(models.AverageScores)
	if bo.Total != 20 {
		t.Errorf("Bo total = %v, want computed 20", bo.Total)
	}
	if got := ds.WeeklyScores["Bo"]; len(got) != 2 || got[1] != 70 {
		t.Errorf("weekly scores = %v", got)
	}
}

func TestGetSeason_Live(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(liveDoc))
	})

	ds, err := api.GetSeason(context.Background(), "2024")
	if err != nil {
		t.Fatalf("GetSeason() error = %v", err)
	}
	if len(ds.ActivePositions) != 2 || ds.ActivePositions[0] != "QB" {
		t.Errorf("positions = %v, want [QB RB]", ds.ActivePositions)
	}

	live, ok := ds.Rosters[0].Scores.(models.LiveScores)
	if !ok {
		t.Fatalf("roster row type = %T, want LiveScores", ds.Rosters[0].Scores)
	}
	if live.Status["QB"] != models.StatusActive || live.Status["RB"] != models.StatusProjected {
		t.Errorf("statuses = %v", live.Status)
	}
	if live.TotalLive != 12.4 || live.TotalProjected != 40 {
		t.Errorf("totals = %v / %v, want 12.4 / 40", live.TotalLive, live.TotalProjected)
	}
	if !ds.IsCurrentSeason {
		t.Error("IsCurrentSeason not decoded")
	}
}

func TestGetSeason_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }, "unexpected status code: 404"},
		{"bad json", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"rosters": [NaN]}`)) }, "error decoding response"},
		{"bad analysis type", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"analysis_type": "vibes"}`)) }, "unknown analysis type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, tt.handler)
			_, err := api.GetSeason(context.Background(), "2022")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("GetSeason() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	block := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer ts.Close()
	defer close(block)

	api := NewAPI(NewClient(config.DataSource{BaseURL: ts.URL, FetchTimeout: 50 * time.Millisecond}))
	if _, err := api.GetSeason(context.Background(), "2021"); err == nil {
		t.Error("expected hung fetch to time out")
	}
}
