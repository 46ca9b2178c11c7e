package cli

import (
	"context"
	"fmt"
)

func (a *App) refresh(ctx context.Context) {
	if err := a.data.Refresh(ctx); err != nil {
		fmt.Fprintf(a.out, "Refresh failed: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Fetched %d categories, %d personas\n", len(a.data.Categories()), len(a.data.Personas()))
}

// categories prints the rollup: every category with its average temperature
// and personas.
func (a *App) categories(ctx context.Context) {
	groups := a.data.Rollup()
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No categories yet. Try 'refresh' or 'addcat <name>'.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(a.out, "%s: avg %d° (%d personas)\n", g.Name, g.Avg, len(g.Personas))
		for _, p := range g.Personas {
			fmt.Fprintf(a.out, "  %s: %.0f°\n", p.Name, float64(p.RelationshipTemp))
		}
	}
}

func (a *App) personas(ctx context.Context) {
	personas := a.data.Personas()
	if len(personas) == 0 {
		fmt.Fprintln(a.out, "No personas yet. Try 'refresh'.")
		return
	}
	for _, p := range personas {
		fmt.Fprintf(a.out, "%s  %.0f°  (category %s)\n", p.Name, float64(p.RelationshipTemp), p.CategoryID)
	}
}

func (a *App) addCategory(ctx context.Context, name string) {
	if name == "" {
		var err error
		name, err = GetSimpleText(a.reader, "Category name", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
	}

	cat, err := a.data.CreateCategory(ctx, name)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create category: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Created category %s (%s)\n", cat.Name, cat.ID)
}

// radar renders the radar series as text: one line per axis.
func (a *App) radar(ctx context.Context) {
	series, overall, err := a.data.RadarSummary(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load radar: %s\n", err.Error())
		return
	}

	fmt.Fprintf(a.out, "Overall: %d°\n", overall)
	for _, ax := range series {
		fmt.Fprintf(a.out, "  %-8s %3d°  %s\n", ax.Label, ax.Score, ax.Color)
	}
}
