package match

import (
	"cmp"
	"slices"
)

// suggestThreshold is the lowest normalized similarity worth suggesting.
const suggestThreshold = 0.5

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64 // normalized Levenshtein similarity, 0-1
}

// Rank scores every candidate name against name, best first. Ties keep the
// order of candidates.
func Rank(name string, candidates []string) []Candidate {
	ranked := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Candidate{Name: c, Score: NormalizedLevenshteinScore(name, c)})
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return ranked
}

// Suggest returns up to limit candidate names similar enough to name to be
// offered as a "did you mean".
func Suggest(name string, candidates []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, candidates) {
		if len(out) == limit || c.Score < suggestThreshold {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
