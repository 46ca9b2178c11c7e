// Package rollup derives the view-ready relationship scores: per-category
// averages joined with their personas, and the radar series for the home
// screen. Pure functions, no I/O.
package rollup

import (
	"math"

	"github.com/ondoapp/ondo-cli/internal/client/models"
)

// Palette is applied to radar axes in order, wrapping around.
var Palette = []string{
	"#9B7BCC", "#5BA8C9", "#5BA89A", "#C97B9A", "#C9A86B",
	"#8B7BAB", "#7BA8B9", "#7BA89A", "#B97B8A", "#B9A87B",
}

// DefaultOverallScore is shown when the server has no radar data yet.
const DefaultOverallScore = 63

// defaultSeries is the fixed radar shown before any server data exists.
var defaultSeries = []Axis{
	{Label: "가족", Score: 74, Color: Palette[0]},
	{Label: "연인", Score: 81, Color: Palette[1]},
	{Label: "친구", Score: 66, Color: Palette[2]},
	{Label: "직장", Score: 58, Color: Palette[3]},
	{Label: "기타", Score: 70, Color: Palette[4]},
}

// Axis is one labeled, colored spoke of the radar chart.
type Axis struct {
	Label string
	Score int
	Color string
}

// ScoredCategory is a server-scored radar axis.
type ScoredCategory struct {
	Name  string
	Score float64
}

// CategoryWithPersonas joins a category with its personas and their
// integer-rounded average temperature. Ephemeral; recomputed per render.
type CategoryWithPersonas struct {
	models.Category
	Personas []models.Persona
	Avg      int
}

// roundHalfUp rounds to the nearest integer, halves away from zero upward.
func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

// BuildCategoryRollup joins each category with the personas referencing it
// and computes the average relationship temperature. Input order is
// preserved at both levels. An empty persona set yields Avg 0.
func BuildCategoryRollup(categories []models.Category, personas []models.Persona) []CategoryWithPersonas {
	out := make([]CategoryWithPersonas, 0, len(categories))
	for _, cat := range categories {
		var matched []models.Persona
		var sum float64
		for _, p := range personas {
			if p.CategoryID == cat.ID {
				matched = append(matched, p)
				sum += float64(p.RelationshipTemp)
			}
		}
		avg := 0
		if len(matched) > 0 {
			avg = roundHalfUp(sum / float64(len(matched)))
		}
		out = append(out, CategoryWithPersonas{Category: cat, Personas: matched, Avg: avg})
	}
	return out
}

// BuildRadarSeries maps server categories onto radar axes, preserving input
// order and cycling the palette. With no server categories it falls back to
// the fixed default series and overall constant.
//
// Scores are not clamped to [0,100]; the backend owns that invariant.
func BuildRadarSeries(server []ScoredCategory, overall float64) ([]Axis, int) {
	if len(server) == 0 {
		series := make([]Axis, len(defaultSeries))
		copy(series, defaultSeries)
		return series, DefaultOverallScore
	}

	series := make([]Axis, 0, len(server))
	for i, sc := range server {
		series = append(series, Axis{
			Label: sc.Name,
			Score: roundHalfUp(sc.Score),
			Color: Palette[i%len(Palette)],
		})
	}
	return series, roundHalfUp(overall)
}
