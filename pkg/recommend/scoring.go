package recommend

import "math"

// Scorer computes the three factor scores and their weighted combination.
// It holds no state besides its configuration and is safe for concurrent use.
type Scorer struct {
	cfg        Config
	similarity *Similarity
}

func NewScorer(cfg Config, similarity *Similarity) *Scorer {
	return &Scorer{
		cfg:        cfg,
		similarity: similarity,
	}
}

// Diversity buckets the name similarity between the reference and the candidate.
func (s *Scorer) Diversity(referenceName, candidateName string) float64 {
	return DiversityFromSimilarity(s.similarity.Names(referenceName, candidateName), s.cfg.DiversityBuckets)
}

func DiversityFromSimilarity(similarity float64, buckets DiversityBuckets) float64 {
	switch {
	case similarity > buckets.NearDuplicateAbove:
		return buckets.NearDuplicate
	case similarity < buckets.DistinctBelow:
		return buckets.Distinct
	default:
		return buckets.Neutral
	}
}

func (s *Scorer) EquipmentVariety(referenceEquipment, candidateEquipment string) float64 {
	return EquipmentVariety(referenceEquipment, candidateEquipment, s.cfg.EquipmentScores)
}

func EquipmentVariety(referenceEquipment, candidateEquipment string, scores EquipmentScores) float64 {
	if referenceEquipment == "" || candidateEquipment == "" {
		return scores.Missing
	}
	if referenceEquipment == candidateEquipment {
		return scores.Same
	}
	return scores.Different
}

func (s *Scorer) Popularity(popularityScore int) float64 {
	return Popularity(popularityScore, s.cfg.PopularityScale)
}

// Popularity normalizes the raw score to [0,1], saturating at scale.
func Popularity(popularityScore int, scale float64) float64 {
	if popularityScore <= 0 || scale <= 0 {
		return 0
	}
	return math.Min(float64(popularityScore)/scale, 1)
}

func (s *Scorer) Composite(diversity, equipmentVariety, popularity float64) float64 {
	return CompositeScore(diversity, equipmentVariety, popularity, s.cfg.Weights)
}

func CompositeScore(diversity, equipmentVariety, popularity float64, w Weights) float64 {
	score := w.Diversity*diversity + w.Equipment*equipmentVariety + w.Popularity*popularity
	return clamp01(score)
}

// Score rates a candidate as a swap for the reference exercise.
func (s *Scorer) Score(reference, candidate Exercise) ScoredCandidate {
	diversity := s.Diversity(reference.Name, candidate.Name)
	equipmentVariety := s.EquipmentVariety(reference.Equipment, candidate.Equipment)
	popularity := s.Popularity(candidate.PopularityScore)

	return ScoredCandidate{
		Exercise:         candidate,
		Diversity:        diversity,
		EquipmentVariety: equipmentVariety,
		Popularity:       popularity,
		FinalScore:       s.Composite(diversity, equipmentVariety, popularity),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
