package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymcoach/pkg/recommend"
)

type exerciseGetter interface {
	Get(ctx context.Context, id string) (recommend.Exercise, error)
}

type recommender interface {
	Recommend(ctx context.Context, params recommend.RecommendParams) recommend.Result[[]recommend.Recommendation]
	Search(ctx context.Context, params recommend.SearchParams) recommend.Result[[]recommend.SearchResult]
	Facets(ctx context.Context) recommend.Result[recommend.FacetValues]
}

// coachService is what the tool handlers call; kept as an interface for tests.
type coachService interface {
	GetSchema(ctx context.Context) (string, error)
	Alternatives(ctx context.Context, exerciseID string, params recommend.RecommendParams) recommend.Result[[]recommend.Recommendation]
	Search(ctx context.Context, params recommend.SearchParams) recommend.Result[[]recommend.SearchResult]
	Facets(ctx context.Context) recommend.Result[recommend.FacetValues]
}

// CoachService resolves tool arguments against the catalog and runs the recommendation engine.
type CoachService struct {
	schema    SchemaRepo
	exercises exerciseGetter
	engine    recommender
	limits    recommend.Config
}

func NewCoachService(schemaRepo SchemaRepo, exercises exerciseGetter, engine recommender) *CoachService {
	return &CoachService{
		schema:    schemaRepo,
		exercises: exercises,
		engine:    engine,
		limits:    recommend.DefaultConfig(),
	}
}

func (s *CoachService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetCatalogColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatCatalogSchema(cols), nil
}

func formatCatalogSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Exercise Catalog Schema\n\nNo catalog tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Exercise Catalog Schema\n\n")
	b.WriteString("Tables: " + strings.Join(catalogTables, ", ") + " (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// Alternatives loads the reference exercise by id and asks the engine for swaps.
// params.Reference is overwritten with the loaded exercise. An invalid limit fails before the lookup.
func (s *CoachService) Alternatives(ctx context.Context, exerciseID string, params recommend.RecommendParams) recommend.Result[[]recommend.Recommendation] {
	if err := s.limits.ValidateLimit(params.Limit); err != nil {
		return recommend.Fail[[]recommend.Recommendation](err)
	}
	reference, err := s.exercises.Get(ctx, exerciseID)
	if err != nil {
		return recommend.Fail[[]recommend.Recommendation](fmt.Errorf("get exercise [%s]: %w", exerciseID, err))
	}
	params.Reference = reference
	return s.engine.Recommend(ctx, params)
}

func (s *CoachService) Search(ctx context.Context, params recommend.SearchParams) recommend.Result[[]recommend.SearchResult] {
	return s.engine.Search(ctx, params)
}

func (s *CoachService) Facets(ctx context.Context) recommend.Result[recommend.FacetValues] {
	return s.engine.Facets(ctx)
}
