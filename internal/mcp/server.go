package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server with the coaching tools: alternatives, search, facets and catalog schema.
// Mounted at /mcp by the main service and served over stdio by cmd/coach_mcp.
func NewServer(pool *pgxpool.Pool, exercises exerciseGetter, engine recommender) *mcp.Server {
	return NewServerWithService(NewCoachService(NewPoolSchemaRepo(pool), exercises, engine))
}

func NewServerWithService(service coachService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymcoach",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "recommend_exercise_alternatives",
		Description: "Suggests up to limit (1-10, default 3) alternatives for a catalog exercise: same primary muscle, ranked by variation, equipment variety and popularity, and never too similar by name to each other or to the exercises already scheduled. Args: exercise_id; optional: limit, scheduled_exercise_ids, scheduled_exercise_names. Use when a user wants to swap an exercise in a workout.",
	}, h.RecommendAlternativesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_exercises",
		Description: "Searches the exercise catalog by free text (name, target area, equipment) with optional exact filters target_area, equipment, difficulty, ranked by relevance. Supports limit (default 20, max 100) and offset. Use when looking up exercises by name or equipment.",
	}, h.SearchExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercise_facets",
		Description: "Returns the distinct target areas, equipment and difficulty levels in the catalog. Use to learn valid filter values for search_exercises.",
	}, h.ListFacetsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_catalog_schema",
		Description: "Returns the DB schema of the exercise catalog table: columns, types, nullable, default. Use when developing against the backend and you need the actual schema.",
	}, h.GetCatalogSchemaTool())

	return s
}
