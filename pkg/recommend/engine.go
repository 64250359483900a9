package recommend

import (
	"context"
	"sort"
	"strings"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=recommend_test

// Catalog is the exercise data source the engine pulls candidates from.
type Catalog interface {
	// FindByMuscleGroup returns exercises whose main muscles contain muscle, minus excludeIDs.
	FindByMuscleGroup(ctx context.Context, muscle string, excludeIDs []string) ([]Exercise, error)
	Search(ctx context.Context, query string, filters SearchFilters) ([]Exercise, error)
	ListFacetValues(ctx context.Context) (FacetValues, error)
}

type Engine struct {
	catalog    Catalog
	cfg        Config
	similarity *Similarity
	scorer     *Scorer
	selector   *Selector
}

func NewEngine(catalog Catalog, cfg Config) *Engine {
	similarity := NewSimilarity(cfg.StopWords)
	return &Engine{
		catalog:    catalog,
		cfg:        cfg,
		similarity: similarity,
		scorer:     NewScorer(cfg, similarity),
		selector:   NewSelector(similarity, cfg.SimilarityThreshold),
	}
}

type RecommendParams struct {
	Reference              Exercise
	Limit                  int
	ScheduledExerciseIDs   []string
	ScheduledExerciseNames []string
}

// Recommend suggests up to params.Limit alternatives for the reference exercise.
// The alternatives share its primary muscle, are ranked by final score and are mutually
// dissimilar by name, as well as dissimilar to every scheduled exercise name.
func (e *Engine) Recommend(ctx context.Context, params RecommendParams) Result[[]Recommendation] {
	if err := e.validateRecommend(params); err != nil {
		return Fail[[]Recommendation](err)
	}

	excludeIDs := make([]string, 0, len(params.ScheduledExerciseIDs)+1)
	excludeIDs = append(excludeIDs, params.Reference.ID)
	excludeIDs = append(excludeIDs, params.ScheduledExerciseIDs...)

	candidates, err := e.catalog.FindByMuscleGroup(ctx, params.Reference.PrimaryMuscle(), excludeIDs)
	if err != nil {
		return Fail[[]Recommendation](err)
	}

	pool := candidatePool(candidates, excludeIDs)
	if len(pool) == 0 {
		return Ok([]Recommendation{})
	}

	scored := make([]ScoredCandidate, 0, len(pool))
	for _, candidate := range pool {
		scored = append(scored, e.scorer.Score(params.Reference, candidate))
	}
	SortByScore(scored)

	selected := e.selector.Select(scored, params.Limit, params.ScheduledExerciseNames)

	recommendations := make([]Recommendation, 0, len(selected))
	for _, c := range selected {
		recommendations = append(recommendations, Recommendation{
			Exercise:   c.Exercise,
			FinalScore: c.FinalScore,
			Reason:     e.Reason(c),
		})
	}

	return Ok(recommendations)
}

func (e *Engine) validateRecommend(params RecommendParams) error {
	if params.Reference.ID == "" || params.Reference.Name == "" {
		return ErrInvalidReference
	}
	if err := e.cfg.ValidateLimit(params.Limit); err != nil {
		return err
	}
	if params.Reference.PrimaryMuscle() == "" {
		return ErrNoPrimaryMuscle
	}
	return nil
}

// candidatePool drops excluded ids and nameless records from whatever the catalog returned.
func candidatePool(candidates []Exercise, excludeIDs []string) []Exercise {
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	pool := make([]Exercise, 0, len(candidates))
	for _, c := range candidates {
		if _, skip := excluded[c.ID]; skip {
			continue
		}
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		pool = append(pool, c)
	}
	return pool
}

// SortByScore orders candidates by final score descending, then by exercise id ascending.
func SortByScore(candidates []ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].FinalScore != candidates[j].FinalScore {
			return candidates[i].FinalScore > candidates[j].FinalScore
		}
		return candidates[i].Exercise.ID < candidates[j].Exercise.ID
	})
}

// Reason explains which factors made the candidate stand out.
func (e *Engine) Reason(c ScoredCandidate) string {
	t := e.cfg.ReasonThresholds
	var reasons []string
	if c.Diversity > t.Diversity {
		reasons = append(reasons, "Different exercise variation")
	}
	if c.EquipmentVariety > t.EquipmentVariety {
		reasons = append(reasons, "Different equipment type")
	}
	if c.Popularity > t.Popularity {
		reasons = append(reasons, "Popular choice")
	}
	if len(reasons) == 0 {
		return "Good alternative"
	}
	return strings.Join(reasons, e.cfg.ReasonSeparator)
}

// Facets lists the distinct filter values known to the catalog.
func (e *Engine) Facets(ctx context.Context) Result[FacetValues] {
	facets, err := e.catalog.ListFacetValues(ctx)
	if err != nil {
		return Fail[FacetValues](err)
	}
	if facets.TargetAreas == nil {
		facets.TargetAreas = []string{}
	}
	if facets.Equipment == nil {
		facets.Equipment = []string{}
	}
	if facets.Difficulties == nil {
		facets.Difficulties = []string{}
	}
	return Ok(facets)
}
