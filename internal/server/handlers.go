package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omarshaarawi/leaguedash/internal/service"
)

// Placeholder texts shown by the dashboard panels.
const (
	msgSeasonUnavailable = "Data could not be loaded for this season."
	msgRankings          = "Power Rankings data not available."
	msgRatings           = "F-DVOA data is not yet available for this season."
	msgPositions         = "Analysis data not available."
	msgVariance          = "Weekly score history is not available for this season."
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.dashboard.Config()
	if cfg == nil {
		writeError(w, http.StatusServiceUnavailable, "Could not load league configuration.")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dashboard.Seasons())
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.PowerRankings(chi.URLParam(r, "year"))
	respond(w, view, err, msgRankings)
}

func (s *Server) handleRatings(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Ratings(chi.URLParam(r, "year"))
	respond(w, view, err, msgRatings)
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	table, err := s.dashboard.PositionalTable(chi.URLParam(r, "year"))
	respond(w, table, err, msgPositions)
}

func (s *Server) handleVariance(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Variance(chi.URLParam(r, "year"))
	respond(w, view, err, msgVariance)
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	report, err := s.dashboard.TeamReport(chi.URLParam(r, "team"), chi.URLParam(r, "year"))
	if errors.Is(err, service.ErrTeamNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	respond(w, report, err, msgSeasonUnavailable)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	year := chi.URLParam(r, "year")
	err := s.dashboard.ReloadSeason(r.Context(), year)
	switch {
	case errors.Is(err, service.ErrUnknownSeason):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		slog.Error("Error reloading season", "year", year, "error", err)
		writeError(w, http.StatusBadGateway, msgSeasonUnavailable)
	default:
		writeJSON(w, http.StatusOK, service.SeasonStatus{Year: year, State: "loaded"})
	}
}

// respond writes v, or the panel placeholder when the data is not available.
// An absent season uses the season-wide placeholder.
func respond(w http.ResponseWriter, v any, err error, placeholder string) {
	if err == nil {
		writeJSON(w, http.StatusOK, v)
		return
	}
	if errors.Is(err, service.ErrNotAvailable) {
		if isSeasonAbsent(err) {
			placeholder = msgSeasonUnavailable
		}
		writeError(w, http.StatusNotFound, placeholder)
		return
	}
	slog.Error("Error building response", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func isSeasonAbsent(err error) bool {
	var absent *service.SeasonAbsentError
	return errors.As(err, &absent)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}
