// Package recommend holds the exercise swap engine shared by the HTTP service and the MCP server:
// name similarity, candidate scoring, diversity-aware selection and catalog search.
package recommend

type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Equipment        string   `json:"equipment"`
	TargetArea       string   `json:"targetArea"`
	MainMuscles      []string `json:"mainMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Difficulty       string   `json:"difficulty"`
	PopularityScore  int      `json:"popularityScore"`
}

// PrimaryMuscle returns the first main muscle, or an empty string if none is set.
func (e Exercise) PrimaryMuscle() string {
	if len(e.MainMuscles) == 0 {
		return ""
	}
	return e.MainMuscles[0]
}

// ScoredCandidate lives only for the duration of a single recommend call.
type ScoredCandidate struct {
	Exercise         Exercise `json:"exercise"`
	Diversity        float64  `json:"diversity"`
	EquipmentVariety float64  `json:"equipmentVariety"`
	Popularity       float64  `json:"popularity"`
	FinalScore       float64  `json:"finalScore"`
}

type Recommendation struct {
	Exercise   Exercise `json:"exercise"`
	FinalScore float64  `json:"finalScore"`
	Reason     string   `json:"reason"`
}

type SearchResult struct {
	Exercise       Exercise `json:"exercise"`
	RelevanceScore float64  `json:"relevanceScore"`
}

// SearchFilters are exact-match facets; an empty field means "any".
type SearchFilters struct {
	TargetArea string `json:"targetArea,omitempty"`
	Equipment  string `json:"equipment,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

func (f SearchFilters) IsEmpty() bool {
	return f.TargetArea == "" && f.Equipment == "" && f.Difficulty == ""
}

type FacetValues struct {
	TargetAreas  []string `json:"targetAreas"`
	Equipment    []string `json:"equipment"`
	Difficulties []string `json:"difficulties"`
}
