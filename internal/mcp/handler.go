package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/2beens/gymcoach/pkg/recommend"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultAlternativesLimit = 3

// Handler turns tool input into service calls and service output into MCP results.
type Handler struct {
	service coachService
}

func NewHandler(service coachService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetCatalogSchemaTool returns the handler for get_catalog_schema.
func (h *Handler) GetCatalogSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type AlternativesInput struct {
	ExerciseID             string   `json:"exercise_id" jsonschema:"Catalog id of the exercise to swap out (e.g. bench_press)"`
	Limit                  int      `json:"limit,omitempty" jsonschema:"How many alternatives to return, 1 to 10 (default 3)"`
	ScheduledExerciseIDs   []string `json:"scheduled_exercise_ids,omitempty" jsonschema:"Ids of exercises already in the workout; never suggested"`
	ScheduledExerciseNames []string `json:"scheduled_exercise_names,omitempty" jsonschema:"Names of exercises already in the workout; suggestions must differ from them"`
}

// RecommendAlternativesTool returns the handler for recommend_exercise_alternatives.
func (h *Handler) RecommendAlternativesTool() func(context.Context, *mcp.CallToolRequest, AlternativesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AlternativesInput) (*mcp.CallToolResult, any, error) {
		exerciseID := strings.TrimSpace(in.ExerciseID)
		if exerciseID == "" {
			return errorResult("Missing exercise_id"), nil, nil
		}
		limit := in.Limit
		if limit == 0 {
			limit = defaultAlternativesLimit
		}

		res := h.service.Alternatives(ctx, exerciseID, recommend.RecommendParams{
			Limit:                  limit,
			ScheduledExerciseIDs:   in.ScheduledExerciseIDs,
			ScheduledExerciseNames: in.ScheduledExerciseNames,
		})
		if !res.Success {
			return errorResult("Error recommending alternatives: " + res.Error), nil, nil
		}
		return jsonResult(res.Data), nil, nil
	}
}

type SearchInput struct {
	Query      string `json:"query,omitempty" jsonschema:"Free text matched against name, target area and equipment"`
	TargetArea string `json:"target_area,omitempty" jsonschema:"Exact target area filter (e.g. chest)"`
	Equipment  string `json:"equipment,omitempty" jsonschema:"Exact equipment filter (e.g. dumbbell)"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"Exact difficulty filter (e.g. beginner)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Page size (default 20, max 100)"`
	Offset     int    `json:"offset,omitempty" jsonschema:"Page offset (default 0)"`
}

// SearchExercisesTool returns the handler for search_exercises.
func (h *Handler) SearchExercisesTool() func(context.Context, *mcp.CallToolRequest, SearchInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
		res := h.service.Search(ctx, recommend.SearchParams{
			Query: in.Query,
			Filters: recommend.SearchFilters{
				TargetArea: in.TargetArea,
				Equipment:  in.Equipment,
				Difficulty: in.Difficulty,
			},
			Limit:  in.Limit,
			Offset: in.Offset,
		})
		if !res.Success {
			return errorResult("Error searching exercises: " + res.Error), nil, nil
		}
		return jsonResult(res.Data), nil, nil
	}
}

// ListFacetsTool returns the handler for list_exercise_facets.
func (h *Handler) ListFacetsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		res := h.service.Facets(ctx)
		if !res.Success {
			return errorResult("Error listing facets: " + res.Error), nil, nil
		}
		return jsonResult(res.Data), nil, nil
	}
}
