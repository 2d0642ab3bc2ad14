package ranking

import (
	"testing"

	"dealScout/domain"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func offerRow(price, rating, delivery float64) domain.FeatureRow {
	return domain.FeatureRow{
		Price:          f64(price),
		Rating:         f64(rating),
		DeliveryInDays: f64(delivery),
	}
}

func TestHeuristicScoreFormula(t *testing.T) {
	s := NewHeuristicStrategy()

	rows := []domain.FeatureRow{
		offerRow(1000, 4.5, 2),
		offerRow(500, 3.0, 5),
	}

	scores := s.Score(rows)
	assert.Len(t, scores, 2)

	// maxPrice=1000, maxDelivery=5
	// row 0: 0.4*(1-1000/1000) + 0.3*(4.5/5) + 0.3*(1-2/5) = 0 + 0.27 + 0.18
	// row 1: 0.4*(1-500/1000)  + 0.3*(3.0/5) + 0.3*(1-5/5) = 0.2 + 0.18 + 0
	assert.InDelta(t, 0.45, scores[0], 1e-6)
	assert.InDelta(t, 0.38, scores[1], 1e-6)

	// the pricier but better-rated, faster-shipping offer wins
	assert.Greater(t, scores[0], scores[1])
}

func TestHeuristicScoreIsBatchRelative(t *testing.T) {
	s := NewHeuristicStrategy()

	target := offerRow(500, 4.0, 2)

	alone := s.Score([]domain.FeatureRow{target})
	against := s.Score([]domain.FeatureRow{target, offerRow(2000, 4.0, 2)})

	// alone, 500 is the batch max price and the price term vanishes;
	// next to a 2000 offer the same row earns price credit
	assert.Greater(t, against[0], alone[0])
}

func TestHeuristicScoreMissingFieldDefaults(t *testing.T) {
	s := NewHeuristicStrategy()

	rows := []domain.FeatureRow{
		{}, // everything absent: price->1, rating->0, delivery->3
		offerRow(100, 5.0, 1),
	}

	scores := s.Score(rows)
	assert.Len(t, scores, 2)

	// maxPrice=100, maxDelivery=3
	// row 0: 0.4*(1-1/100) + 0.3*0 + 0.3*(1-3/3) = 0.396
	assert.InDelta(t, 0.396, scores[0], 1e-6)

	for _, sc := range scores {
		assert.False(t, sc != sc, "score must not be NaN")
	}
}

func TestHeuristicScoreEmptyBatch(t *testing.T) {
	s := NewHeuristicStrategy()
	assert.Empty(t, s.Score(nil))
	assert.Empty(t, s.Score([]domain.FeatureRow{}))
}

func TestHeuristicName(t *testing.T) {
	assert.Equal(t, StrategyFallback, NewHeuristicStrategy().Name())
}
