package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ondoapp/ondo-cli/internal/client/api"
	"github.com/ondoapp/ondo-cli/internal/client/models"
	"github.com/ondoapp/ondo-cli/internal/client/rollup"
	"github.com/ondoapp/ondo-cli/internal/logging"
)

// DataService fetches the server collections and holds the last-fetched
// copies the rollups are derived from. Logout resets it through the
// session's invalidation hook.
type DataService struct {
	client api.Client
	log    logging.Logger

	mu         sync.RWMutex
	categories []models.Category
	personas   []models.Persona
}

func NewDataService(client api.Client, log logging.Logger) *DataService {
	return &DataService{client: client, log: log.With("component", "data")}
}

// Refresh fetches categories and personas concurrently. The two fetches
// are independent: a failure in one does not cancel the other, and the
// cached collections are replaced only when both succeeded, so the rollup
// never mixes fresh and stale halves.
func (d *DataService) Refresh(ctx context.Context) error {
	var (
		cats []models.Category
		ps   []models.Persona
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if cats, err = d.client.Categories(ctx); err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if ps, err = d.client.Personas(ctx); err != nil {
			return fmt.Errorf("personas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	d.mu.Lock()
	d.categories = cats
	d.personas = ps
	d.mu.Unlock()

	d.log.Debug(ctx, "data refreshed", "categories", len(cats), "personas", len(ps))
	return nil
}

// Categories returns the cached category collection.
func (d *DataService) Categories() []models.Category {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.categories
}

// Personas returns the cached persona collection.
func (d *DataService) Personas() []models.Persona {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.personas
}

// Rollup recomputes the per-category averages from the cached collections.
func (d *DataService) Rollup() []rollup.CategoryWithPersonas {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return rollup.BuildCategoryRollup(d.categories, d.personas)
}

// RadarSummary fetches the radar resource and builds the display series.
// An empty server response yields the built-in default series.
func (d *DataService) RadarSummary(ctx context.Context) ([]rollup.Axis, int, error) {
	resp, err := d.client.Radar(ctx)
	if err != nil {
		return nil, 0, err
	}

	scored := make([]rollup.ScoredCategory, 0, len(resp.Categories))
	for _, c := range resp.Categories {
		scored = append(scored, rollup.ScoredCategory{Name: c.Name, Score: c.Score})
	}
	series, overall := rollup.BuildRadarSeries(scored, resp.OverallScore)
	return series, overall, nil
}

// CreateCategory creates a category on the server and appends it to the
// cached collection.
func (d *DataService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &api.ValidationError{Field: "name", Reason: "카테고리 이름을 입력해주세요"}
	}

	cat, err := d.client.CreateCategory(ctx, name)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.categories = append(d.categories, *cat)
	d.mu.Unlock()
	return cat, nil
}

// Reset drops all cached collections. Wired to logout: consumers must
// treat logout as a full reset of derived data.
func (d *DataService) Reset() {
	d.mu.Lock()
	d.categories = nil
	d.personas = nil
	d.mu.Unlock()
}
