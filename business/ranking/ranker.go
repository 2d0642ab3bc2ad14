package ranking

import (
	"sort"

	"dealScout/domain"
)

// TopK scores rows with the given strategy, orders them by descending
// score, and returns the first min(k, len(rows)). The sort is stable so
// ties keep their original row order and results are deterministic for
// identical input and strategy.
func TopK(strategy Strategy, rows []domain.FeatureRow, k int) []domain.ScoredRow {
	if len(rows) == 0 || k <= 0 {
		return []domain.ScoredRow{}
	}

	scores := strategy.Score(rows)

	scored := make([]domain.ScoredRow, len(rows))
	for i, row := range rows {
		scored[i] = domain.ScoredRow{
			FeatureRow: row,
			Score:      scores[i],
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}
