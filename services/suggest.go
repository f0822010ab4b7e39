package services

import (
	"slices"
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	maxSuggestions  = 3
	minSimilarity   = 0.5
	suggestMinInput = 2
)

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// SuggestNames returns up to three registered names that look like query,
// best match first. Accents and case are ignored for the comparison.
func SuggestNames(query string, names []string) []string {
	q := normalizeInput(query)
	if len([]rune(q)) < suggestMinInput {
		return nil
	}

	byKey := make(map[string][]string)
	var keys []string
	for _, name := range names {
		if name == "" || name == query {
			continue
		}
		key := normalizeInput(name)
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		if !slices.Contains(byKey[key], name) {
			byKey[key] = append(byKey[key], name)
		}
	}
	if len(keys) == 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}
	var candidates []scored
	// Shortlist by shared 2/3-grams, then rank by edit distance.
	matcher := closestmatch.New(keys, []int{2, 3})
	for _, key := range matcher.ClosestN(q, len(keys)) {
		score := calculateSimilarity(q, key)
		if score < minSimilarity {
			continue
		}
		for _, name := range byKey[key] {
			candidates = append(candidates, scored{name: name, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}
