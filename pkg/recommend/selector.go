package recommend

// Selector picks a small, mutually dissimilar subset of score-sorted candidates.
type Selector struct {
	similarity *Similarity
	threshold  float64
}

func NewSelector(similarity *Similarity, threshold float64) *Selector {
	return &Selector{
		similarity: similarity,
		threshold:  threshold,
	}
}

// Select walks sorted (highest final score first) once and accepts a candidate only when its
// name similarity to every accepted candidate and to every scheduled name stays below the
// threshold. It stops after limit acceptances. Greedy, no backtracking.
func (s *Selector) Select(sorted []ScoredCandidate, limit int, scheduledNames []string) []ScoredCandidate {
	selected := make([]ScoredCandidate, 0, min(limit, len(sorted)))
	if limit <= 0 {
		return selected
	}

	scheduledTokens := make([]map[string]struct{}, 0, len(scheduledNames))
	for _, name := range scheduledNames {
		scheduledTokens = append(scheduledTokens, s.similarity.Tokens(name))
	}
	selectedTokens := make([]map[string]struct{}, 0, cap(selected))

	for _, candidate := range sorted {
		if len(selected) >= limit {
			break
		}

		tokens := s.similarity.Tokens(candidate.Exercise.Name)
		if maxJaccard(tokens, selectedTokens) >= s.threshold {
			continue
		}
		if maxJaccard(tokens, scheduledTokens) >= s.threshold {
			continue
		}

		selected = append(selected, candidate)
		selectedTokens = append(selectedTokens, tokens)
	}

	return selected
}

func maxJaccard(tokens map[string]struct{}, others []map[string]struct{}) float64 {
	highest := 0.0
	for _, other := range others {
		if sim := Jaccard(tokens, other); sim > highest {
			highest = sim
		}
	}
	return highest
}

// SelectDiverse runs the selector with the default stop words and threshold.
func SelectDiverse(sorted []ScoredCandidate, limit int, scheduledNames []string) []ScoredCandidate {
	cfg := DefaultConfig()
	return NewSelector(defaultSimilarity, cfg.SimilarityThreshold).Select(sorted, limit, scheduledNames)
}
