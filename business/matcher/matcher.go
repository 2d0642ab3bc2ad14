// Package matcher resolves free-text queries to catalog product names.
package matcher

import "strings"

// NameMatcher finds the closest product name by Levenshtein similarity
// ratio. Matching is case-insensitive; a candidate below the cutoff is no
// match at all. On equal ratios the earlier catalog entry wins.
type NameMatcher struct {
	cutoff float64
}

func New(cutoff float64) *NameMatcher {
	return &NameMatcher{cutoff: cutoff}
}

// BestMatch returns the best-matching name from candidates, or false when
// nothing clears the cutoff.
func (m *NameMatcher) BestMatch(query string, candidates []string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(candidates) == 0 {
		return "", false
	}

	best := ""
	bestRatio := m.cutoff
	q := strings.ToLower(query)

	for _, candidate := range candidates {
		ratio := similarity(q, strings.ToLower(candidate))
		if ratio > bestRatio {
			best = candidate
			bestRatio = ratio
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// similarity is a normalized Levenshtein ratio in [0, 1]:
// (len(a)+len(b)-distance) / (len(a)+len(b)).
func similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 && lb == 0 {
		return 1
	}

	dist := levenshtein(a, b)
	return float64(la+lb-dist) / float64(la+lb)
}

// levenshtein computes edit distance with a single rolling row.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	row := make([]int, m+1)
	for j := 0; j <= m; j++ {
		row[j] = j
	}

	for i := 1; i <= n; i++ {
		prev := i
		var val int
		for j := 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				val = row[j-1]
			} else {
				val = min3(row[j-1]+1, prev+1, row[j]+1)
			}
			row[j-1] = prev
			prev = val
		}
		row[m] = prev
	}

	return row[m]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
