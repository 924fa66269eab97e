package fuzzy

import (
	"strings"
)

// LevenshteinDistance returns the number of single-rune insertions, deletions
// or substitutions needed to turn s1 into s2, ignoring case
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(normalize(s1))
	r2 := []rune(normalize(s2))

	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	// two rows are enough
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// Threshold picks a typo tolerance for a query of the given length
func Threshold(query string) int {
	n := len([]rune(normalize(query)))
	switch {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// Match reports whether query matches text as a substring, a word prefix, or
// a word within threshold edits
func Match(query, text string, threshold int) bool {
	query = normalize(query)
	text = normalize(text)

	if query == "" {
		return true
	}
	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			return true
		}
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
	}

	return false
}

// Score ranks how well query matches a task description. Higher is better;
// zero means no match.
func Score(query, description string) float64 {
	query = normalize(query)
	description = normalize(description)
	if query == "" {
		return 0
	}

	score := 0.0
	if strings.Contains(description, query) {
		score += 100
		if containsWord(description, query) {
			score += 50
		}
		return score
	}

	for _, word := range strings.Fields(description) {
		if strings.HasPrefix(word, query) {
			score += 40
		}
		if dist := LevenshteinDistance(query, word); dist <= Threshold(query) {
			score += 50 - float64(dist)*15
		}
	}
	return score
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
