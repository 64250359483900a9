package recommend

// Weights of the composite score; they must sum to 1 so the final score stays in [0,1].
type Weights struct {
	Diversity  float64
	Equipment  float64
	Popularity float64
}

// DiversityBuckets map name similarity onto three discrete diversity scores.
// Similarity above NearDuplicateAbove scores NearDuplicate, below DistinctBelow scores Distinct,
// anything in between scores Neutral.
type DiversityBuckets struct {
	NearDuplicateAbove float64
	DistinctBelow      float64
	NearDuplicate      float64
	Distinct           float64
	Neutral            float64
}

type EquipmentScores struct {
	Missing   float64
	Same      float64
	Different float64
}

type ReasonThresholds struct {
	Diversity        float64
	EquipmentVariety float64
	Popularity       float64
}

type RelevanceWeights struct {
	NameMatch        float64
	TargetAreaMatch  float64
	EquipmentMatch   float64
	TargetAreaFilter float64
	EquipmentFilter  float64
}

type Config struct {
	StopWords           []string
	SimilarityThreshold float64
	Weights             Weights
	DiversityBuckets    DiversityBuckets
	EquipmentScores     EquipmentScores
	PopularityScale     float64
	MinLimit            int
	MaxLimit            int
	ReasonThresholds    ReasonThresholds
	ReasonSeparator     string
	Relevance           RelevanceWeights
	DefaultSearchLimit  int
	MaxSearchLimit      int
}

var DefaultStopWords = []string{
	"exercise",
	"movement",
	"incline",
	"decline",
	"raise",
	"press",
	"pull",
}

func DefaultConfig() Config {
	return Config{
		StopWords:           DefaultStopWords,
		SimilarityThreshold: 0.7,
		Weights: Weights{
			Diversity:  0.4,
			Equipment:  0.2,
			Popularity: 0.4,
		},
		DiversityBuckets: DiversityBuckets{
			NearDuplicateAbove: 0.8,
			DistinctBelow:      0.3,
			NearDuplicate:      0.1,
			Distinct:           1.0,
			Neutral:            0.5,
		},
		EquipmentScores: EquipmentScores{
			Missing:   0.5,
			Same:      0.3,
			Different: 0.8,
		},
		PopularityScale: 100,
		MinLimit:        1,
		MaxLimit:        10,
		ReasonThresholds: ReasonThresholds{
			Diversity:        0.7,
			EquipmentVariety: 0.6,
			Popularity:       0.7,
		},
		ReasonSeparator: ", ",
		Relevance: RelevanceWeights{
			NameMatch:        0.5,
			TargetAreaMatch:  0.3,
			EquipmentMatch:   0.2,
			TargetAreaFilter: 0.2,
			EquipmentFilter:  0.1,
		},
		DefaultSearchLimit: 20,
		MaxSearchLimit:     100,
	}
}

// ValidateLimit checks a recommendation limit against MinLimit..MaxLimit.
// Entry points call it before fetching the reference exercise.
func (c Config) ValidateLimit(limit int) error {
	if limit < c.MinLimit || limit > c.MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}
