package service

import (
	"fmt"
	"sort"

	"github.com/omarshaarawi/leaguedash/internal/analytics"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

// BuildPositionalTable turns a season's roster rows into the positional
// analysis table and its stacked chart series. Each position column gets its
// own color range.
func BuildPositionalTable(ds *models.SeasonDataset) *PositionalTable {
	positions := ds.ActivePositions
	if len(positions) == 0 {
		positions = models.DefaultPositions
	}

	table := &PositionalTable{
		Year:         ds.Year,
		AnalysisType: ds.AnalysisType.String(),
		Week:         ds.ProjectionWeek,
		Positions:    positions,
		Ranges:       make(map[models.Position]analytics.Range, len(positions)),
	}
	table.Title, table.Subtitle = positionalTitles(ds)

	var corrected map[string]map[models.Position]float64
	if ds.AnalysisType == models.SeasonAverages {
		corrected = analytics.AggregateAverages(ds.WeeklyScores, analytics.PositionAverages(ds.Rosters))
	}

	for _, r := range ds.Rosters {
		table.Rows = append(table.Rows, positionalRow(r, positions, corrected))
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		if table.Rows[i].Total != table.Rows[j].Total {
			return table.Rows[i].Total > table.Rows[j].Total
		}
		return table.Rows[i].Team < table.Rows[j].Team
	})

	for col, pos := range positions {
		values := make([]float64, len(table.Rows))
		for i, row := range table.Rows {
			values[i] = row.Cells[col].Value
		}
		rng := analytics.ColumnRange(values)
		table.Ranges[pos] = rng
		for i := range table.Rows {
			cell := &table.Rows[i].Cells[col]
			cell.Color = rng.ColorFor(cell.Value)
			cell.CSS = cell.Color.CSS()
		}
	}

	teams := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		teams[i] = row.Team
	}
	for col, pos := range positions {
		series := ChartSeries{Name: pos, Teams: teams, Values: make([]float64, len(table.Rows))}
		for i, row := range table.Rows {
			series.Values[i] = row.Cells[col].Value
		}
		table.Series = append(table.Series, series)
	}

	return table
}

func positionalRow(r models.TeamRosterRow, positions []models.Position, corrected map[string]map[models.Position]float64) PositionalRow {
	row := PositionalRow{Team: r.Team, AvatarURL: r.AvatarURL, Cells: make([]PositionalCell, len(positions))}

	switch scores := r.Scores.(type) {
	case models.AverageScores:
		values, ok := corrected[r.Team]
		if !ok {
			values = scores.ByPosition
		}
		row.Corrected = ok
		for i, pos := range positions {
			row.Cells[i] = PositionalCell{Position: pos, Value: values[pos]}
		}
		if ok {
			for _, pos := range positions {
				row.Total += values[pos]
			}
		} else {
			row.Total = scores.Total
		}

	case models.ProjectedScores:
		row.Corrected = true
		for i, pos := range positions {
			row.Cells[i] = PositionalCell{Position: pos, Value: scores.ByPosition[pos], Status: models.StatusProjected.String()}
		}
		row.Total = scores.Total

	case models.LiveScores:
		row.Corrected = true
		byPos, total := analytics.ResolveLive(scores, positions)
		for i, pos := range positions {
			res := byPos[pos]
			projected := res.Projected
			row.Cells[i] = PositionalCell{Position: pos, Value: res.Value, Projected: &projected, Status: res.Status.String()}
		}
		totalProjected := total.Projected
		row.Total = total.Value
		row.TotalProjected = &totalProjected
		row.TotalStatus = total.Status.String()

	default:
		for i, pos := range positions {
			row.Cells[i] = PositionalCell{Position: pos}
		}
	}

	return row
}

func positionalTitles(ds *models.SeasonDataset) (string, string) {
	switch ds.AnalysisType {
	case models.LiveScoring:
		return fmt.Sprintf("Week %d Live Scores", ds.ProjectionWeek),
			"Live points by position group, falling back to projections for positions that have not played. The color scale highlights strengths (green) and weaknesses (red) for each position relative to the league."
	case models.Projections:
		return fmt.Sprintf("Week %d Positional Projections", ds.ProjectionWeek),
			"Projected points by position group. The color scale highlights strengths (green) and weaknesses (red) for each position relative to the league."
	default:
		return fmt.Sprintf("%s Season Averages", ds.Year),
			"Season-long average points per week by position group. The color scale highlights strengths (green) and weaknesses (red)."
	}
}
