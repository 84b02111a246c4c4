package analytics

import (
	"fmt"
	"math"
)

const (
	MinHue     = 0.0
	MaxHue     = 120.0
	NeutralHue = 60.0
)

// ScalePosition is a hue on the red (0) to green (120) scale.
type ScalePosition struct {
	Hue     float64 `json:"hue"`
	Neutral bool    `json:"neutral"`
}

// CSS renders the cell background used by the dashboard tables. A neutral
// position renders as plain white.
func (p ScalePosition) CSS() string {
	if p.Neutral {
		return "hsl(0, 0%, 100%)"
	}
	return fmt.Sprintf("hsl(%.1f, 70%%, 88%%)", p.Hue)
}

// ColorFor maps value onto the scale of the observed [min, max] range.
func ColorFor(value, min, max float64) ScalePosition {
	if min == max {
		return ScalePosition{Hue: NeutralHue, Neutral: true}
	}
	hue := MaxHue * (value - min) / (max - min)
	return ScalePosition{Hue: math.Max(MinHue, math.Min(MaxHue, hue))}
}

// Range is the observed extent of one metric column.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) ColorFor(value float64) ScalePosition {
	return ColorFor(value, r.Min, r.Max)
}

// ColumnRange computes the range of a single column. An empty column yields
// a degenerate zero range, which maps everything to neutral.
func ColumnRange(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}
	r := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r
}
