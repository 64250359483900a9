package exercises

import (
	"context"

	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/pkg/recommend"
)

var _ recommend.Catalog = (*Catalog)(nil)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=exercises_test

type catalogStore interface {
	FindByMuscleGroup(ctx context.Context, muscle string, excludeIDs []string) ([]recommend.Exercise, error)
	Search(ctx context.Context, query string, filters recommend.SearchFilters) ([]recommend.Exercise, error)
}

type facetsProvider interface {
	Get(ctx context.Context) (recommend.FacetValues, error)
}

// Catalog is what the recommendation engine sees: the store for exercises,
// the facets cache for facet values.
type Catalog struct {
	store          catalogStore
	facets         facetsProvider
	metricsManager *metrics.Manager
}

func NewCatalog(store catalogStore, facets facetsProvider, metricsManager *metrics.Manager) *Catalog {
	return &Catalog{
		store:          store,
		facets:         facets,
		metricsManager: metricsManager,
	}
}

func (c *Catalog) FindByMuscleGroup(ctx context.Context, muscle string, excludeIDs []string) ([]recommend.Exercise, error) {
	candidates, err := c.store.FindByMuscleGroup(ctx, muscle, excludeIDs)
	if err != nil {
		return nil, err
	}
	if c.metricsManager != nil {
		c.metricsManager.HistogramCandidatePool.Observe(float64(len(candidates)))
	}
	return candidates, nil
}

func (c *Catalog) Search(ctx context.Context, query string, filters recommend.SearchFilters) ([]recommend.Exercise, error) {
	return c.store.Search(ctx, query, filters)
}

func (c *Catalog) ListFacetValues(ctx context.Context) (recommend.FacetValues, error) {
	return c.facets.Get(ctx)
}
