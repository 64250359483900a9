package recommend

import (
	"context"
	"sort"
	"strings"
)

type SearchParams struct {
	Query   string
	Filters SearchFilters
	// Limit of 0 means the configured default; values above the maximum are capped.
	Limit  int
	Offset int
}

// Search lists catalog exercises matching the free-text query and filters, ranked by relevance.
// Equal relevance keeps the catalog's order.
func (e *Engine) Search(ctx context.Context, params SearchParams) Result[[]SearchResult] {
	if params.Offset < 0 {
		return Fail[[]SearchResult](ErrInvalidOffset)
	}
	limit := e.searchLimit(params.Limit)

	query := strings.TrimSpace(params.Query)
	exercises, err := e.catalog.Search(ctx, query, params.Filters)
	if err != nil {
		return Fail[[]SearchResult](err)
	}

	results := make([]SearchResult, 0, len(exercises))
	for _, ex := range exercises {
		if strings.TrimSpace(ex.Name) == "" {
			continue
		}
		results = append(results, SearchResult{
			Exercise:       ex,
			RelevanceScore: e.Relevance(ex, query, params.Filters),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if params.Offset >= len(results) {
		return Ok([]SearchResult{})
	}
	end := min(params.Offset+limit, len(results))

	return Ok(results[params.Offset:end])
}

func (e *Engine) searchLimit(limit int) int {
	if limit <= 0 {
		return e.cfg.DefaultSearchLimit
	}
	if limit > e.cfg.MaxSearchLimit {
		return e.cfg.MaxSearchLimit
	}
	return limit
}

// Relevance scores how well the exercise matches the query and filters, capped at 1.
func (e *Engine) Relevance(ex Exercise, query string, filters SearchFilters) float64 {
	w := e.cfg.Relevance
	score := 0.0

	if q := strings.ToLower(query); q != "" {
		if strings.Contains(strings.ToLower(ex.Name), q) {
			score += w.NameMatch
		}
		if strings.Contains(strings.ToLower(ex.TargetArea), q) {
			score += w.TargetAreaMatch
		}
		if strings.Contains(strings.ToLower(ex.Equipment), q) {
			score += w.EquipmentMatch
		}
	}

	if filters.TargetArea != "" && ex.TargetArea == filters.TargetArea {
		score += w.TargetAreaFilter
	}
	if filters.Equipment != "" && ex.Equipment == filters.Equipment {
		score += w.EquipmentFilter
	}

	return clamp01(score)
}
