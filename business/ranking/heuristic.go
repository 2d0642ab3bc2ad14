package ranking

import "dealScout/domain"

// Defaults applied when an offer is missing a field the formula needs.
// Price defaults to 1 to avoid division by zero.
const (
	defaultPrice    = 1.0
	defaultRating   = 0.0
	defaultDelivery = 3.0

	epsilon = 1e-6
)

// Heuristic weights for the fallback formula.
const (
	weightPrice    = 0.4
	weightRating   = 0.3
	weightDelivery = 0.3
)

// HeuristicStrategy is the closed-form fallback used when no trained
// artifact is available:
//
//	score = 0.4*(1 - price/(maxPrice+eps)) + 0.3*(rating/5) + 0.3*(1 - delivery/(maxDelivery+eps))
//
// maxPrice and maxDelivery are taken over the rows of a single Score
// call, so the formula is batch-relative: the same offer scores
// differently depending on what it is compared against. Kept exactly for
// compatibility with the trained-model fallback path; scores are not
// comparable across batches.
type HeuristicStrategy struct{}

func NewHeuristicStrategy() *HeuristicStrategy {
	return &HeuristicStrategy{}
}

func (*HeuristicStrategy) Name() string {
	return StrategyFallback
}

func (*HeuristicStrategy) Score(rows []domain.FeatureRow) []float64 {
	if len(rows) == 0 {
		return []float64{}
	}

	maxPrice := 0.0
	maxDelivery := 0.0
	for _, row := range rows {
		if p := priceOrDefault(row); p > maxPrice {
			maxPrice = p
		}
		if d := deliveryOrDefault(row); d > maxDelivery {
			maxDelivery = d
		}
	}

	scores := make([]float64, len(rows))
	for i, row := range rows {
		price := priceOrDefault(row)
		rating := ratingOrDefault(row)
		delivery := deliveryOrDefault(row)

		scores[i] = weightPrice*(1-price/(maxPrice+epsilon)) +
			weightRating*(rating/5) +
			weightDelivery*(1-delivery/(maxDelivery+epsilon))
	}

	return scores
}

func priceOrDefault(row domain.FeatureRow) float64 {
	if row.Price == nil {
		return defaultPrice
	}
	return *row.Price
}

func ratingOrDefault(row domain.FeatureRow) float64 {
	if row.Rating == nil {
		return defaultRating
	}
	return *row.Rating
}

func deliveryOrDefault(row domain.FeatureRow) float64 {
	if row.DeliveryInDays == nil {
		return defaultDelivery
	}
	return *row.DeliveryInDays
}
