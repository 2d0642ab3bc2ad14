package ranking

import (
	"context"

	"dealScout/domain"
	"dealScout/pkg/logger"
)

const (
	StrategyLearned  = "learned"
	StrategyFallback = "fallback"
)

// Strategy maps a batch of feature rows to one score per row. The active
// strategy is chosen once at startup and is immutable afterwards, so it
// may be shared across requests without locking. Implementations must
// return exactly len(rows) finite scores.
type Strategy interface {
	Name() string
	Score(rows []domain.FeatureRow) []float64
}

// ArtifactSource yields the newest trained artifact, or an error when
// none is usable. Absence is a normal condition, not a failure.
type ArtifactSource interface {
	Latest(ctx context.Context) (domain.ModelArtifact, error)
}

// SelectStrategy picks the learned model when a valid artifact loads,
// and degrades to the heuristic on any load or validation error. It
// never fails: a broken artifact store still leaves a working ranker.
func SelectStrategy(ctx context.Context, source ArtifactSource) Strategy {
	if source == nil {
		logger.Warn("no artifact source configured, using fallback ranking")
		return NewHeuristicStrategy()
	}

	artifact, err := source.Latest(ctx)
	if err != nil {
		logger.Warn("trained artifact unavailable, using fallback ranking", err)
		return NewHeuristicStrategy()
	}

	model, err := NewModelStrategy(artifact)
	if err != nil {
		logger.Warn("trained artifact rejected, using fallback ranking",
			"version", artifact.Version,
			"error", err,
		)
		return NewHeuristicStrategy()
	}

	logger.Info("trained model loaded",
		"version", artifact.Version,
		"features", len(model.payload.FeatureNames),
	)
	return model
}
