package service

import (
	"fmt"
	"strings"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

func FormatSeasons(cfg *models.LeagueConfig, statuses []SeasonStatus) string {
	var sb strings.Builder
	sb.WriteString("📅 *Seasons*\n\n")
	for _, st := range statuses {
		mark := "✅"
		if st.State != "loaded" {
			mark = "⚠️"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", mark, st.Year, st.State))
	}
	if cfg != nil && cfg.LastUpdated != "" {
		sb.WriteString(fmt.Sprintf("\nLast updated: %s UTC", cfg.LastUpdated))
	}
	return sb.String()
}

func FormatRankings(view *RankingsView) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 *%s Power Rankings*\n\n", view.Year))
	for _, r := range view.Rows {
		sb.WriteString(fmt.Sprintf("%d. *%s* - %.3f\n", r.Rank, r.Team, r.PowerScore))
	}
	if view.Derived {
		sb.WriteString("\n_Derived from weekly scores_")
	}
	return sb.String()
}

func FormatRatings(view *RatingsView) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 *%s F-DVOA Ratings*\n\n", view.Year))
	for _, r := range view.Rows {
		sb.WriteString(fmt.Sprintf("*%s*: %+.2f%%\n", r.Team, r.PerformanceRating))
	}
	return sb.String()
}

func FormatPositional(table *PositionalTable) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *%s*\n\n", table.Title))

	for _, row := range table.Rows {
		sb.WriteString(fmt.Sprintf("*%s* - %.2f", row.Team, row.Total))
		if row.TotalProjected != nil && row.TotalStatus != models.StatusProjected.String() {
			sb.WriteString(fmt.Sprintf(" (proj %.2f)", *row.TotalProjected))
		}
		if row.TotalStatus == models.StatusFinal.String() {
			sb.WriteString(" (Final)")
		}
		sb.WriteString("\n")

		parts := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			part := fmt.Sprintf("%s %.1f", c.Position, c.Value)
			if c.Status == models.StatusProjected.String() && c.Projected != nil {
				part += "p"
			}
			parts = append(parts, part)
		}
		sb.WriteString("  " + strings.Join(parts, " · ") + "\n")
	}

	return sb.String()
}

func FormatVariance(view *VarianceView) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📉 *%s Weekly Variance*\n\n", view.Year))
	for _, t := range view.Teams {
		sb.WriteString(fmt.Sprintf("*%s*: median %.2f (%.2f-%.2f), σ %.2f\n", t.Team, t.Median, t.Min, t.Max, t.StdDev))
	}
	return sb.String()
}

func FormatTeamReport(r *TeamReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s* (%s)\n", r.Team, r.Year))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")

	if r.Ranking != nil {
		sb.WriteString(fmt.Sprintf("Power Rank: %d (%.3f)\n", r.Ranking.Rank, r.Ranking.PowerScore))
	}
	if r.Rating != nil {
		sb.WriteString(fmt.Sprintf("F-DVOA: %+.2f%%\n", r.Rating.PerformanceRating))
	}
	if r.Positional != nil {
		sb.WriteString(fmt.Sprintf("\n*Positions* (total %.2f)\n", r.Positional.Total))
		for _, c := range r.Positional.Cells {
			sb.WriteString(fmt.Sprintf("▫️ %s %.2f", c.Position, c.Value))
			if c.Status != "" && c.Status != models.StatusProjected.String() {
				sb.WriteString(fmt.Sprintf(" (%s)", c.Status))
			}
			sb.WriteString("\n")
		}
	}
	if r.Variance != nil {
		sb.WriteString(fmt.Sprintf("\nWeekly: median %.2f, high %.2f, low %.2f over %d weeks\n",
			r.Variance.Median, r.Variance.Max, r.Variance.Min, r.Variance.Weeks))
	}

	return sb.String()
}
