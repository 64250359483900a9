package exercises

import (
	"fmt"
	"io"

	"github.com/2beens/gymcoach/pkg/recommend"

	"github.com/BurntSushi/toml"
)

type catalogFileEntry struct {
	ID               string   `toml:"id"`
	Name             string   `toml:"name"`
	Equipment        string   `toml:"equipment"`
	TargetArea       string   `toml:"target_area"`
	MainMuscles      []string `toml:"main_muscles"`
	SecondaryMuscles []string `toml:"secondary_muscles"`
	Difficulty       string   `toml:"difficulty"`
	PopularityScore  int      `toml:"popularity_score"`
}

type catalogFile struct {
	Exercise []catalogFileEntry `toml:"exercise"`
}

// DecodeCatalogFile reads a list of [[exercise]] tables. Every entry is
// validated, duplicate IDs are rejected.
func DecodeCatalogFile(r io.Reader) ([]recommend.Exercise, error) {
	var file catalogFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Exercise))
	result := make([]recommend.Exercise, 0, len(file.Exercise))
	for i, entry := range file.Exercise {
		ex := recommend.Exercise{
			ID:               entry.ID,
			Name:             entry.Name,
			Equipment:        entry.Equipment,
			TargetArea:       entry.TargetArea,
			MainMuscles:      entry.MainMuscles,
			SecondaryMuscles: entry.SecondaryMuscles,
			Difficulty:       entry.Difficulty,
			PopularityScore:  entry.PopularityScore,
		}
		if err := ValidateExercise(&ex); err != nil {
			return nil, fmt.Errorf("exercise #%d [%s]: %w", i, entry.ID, err)
		}
		if _, ok := seen[ex.ID]; ok {
			return nil, fmt.Errorf("exercise #%d: duplicate id [%s]", i, ex.ID)
		}
		seen[ex.ID] = struct{}{}
		result = append(result, ex)
	}

	return result, nil
}
