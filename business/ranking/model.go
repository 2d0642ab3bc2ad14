package ranking

import (
	"encoding/json"
	"fmt"
	"math"

	"dealScout/domain"
)

// ModelStrategy scores rows with the trained artifact: the fitted
// preprocessing transform followed by the linear regressor. Immutable
// after construction.
type ModelStrategy struct {
	version string
	payload ArtifactPayload
}

// NewModelStrategy deserializes and validates an artifact. Any error here
// is recoverable: the caller falls back to the heuristic.
func NewModelStrategy(artifact domain.ModelArtifact) (*ModelStrategy, error) {
	var payload ArtifactPayload
	if err := json.Unmarshal(artifact.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode artifact payload: %w", err)
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	return &ModelStrategy{
		version: artifact.Version,
		payload: payload,
	}, nil
}

func (*ModelStrategy) Name() string {
	return StrategyLearned
}

// Version reports the loaded artifact version for the admin surface.
func (m *ModelStrategy) Version() string {
	return m.version
}

// Score transforms and regresses each row. Row count in equals row count
// out; rows are never dropped, and a non-finite prediction is clamped to
// zero so ordering stays well defined.
func (m *ModelStrategy) Score(rows []domain.FeatureRow) []float64 {
	scores := make([]float64, len(rows))

	for i, row := range rows {
		x := m.payload.Transform(row)

		score := m.payload.Intercept
		for j, w := range m.payload.Weights {
			score += w * x[j]
		}

		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}
		scores[i] = score
	}

	return scores
}
