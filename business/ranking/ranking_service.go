package ranking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealScout/domain"
	"dealScout/pkg/logger"
	"dealScout/pkg/metrics"
)

// User-visible outcomes. Everything else the pipeline can hit (missing
// fields, schema drift, artifact trouble) is absorbed before scoring.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoOffers        = errors.New("no offers for product")
)

// ---- Collaborator interfaces ----

// Catalog is the read-only product snapshot loaded at startup.
type Catalog interface {
	Products() []domain.Product
	ProductNames() []string
	ByName(name string) (domain.Product, bool)
}

// NameMatcher resolves free text to at most one catalog product name.
type NameMatcher interface {
	BestMatch(query string, names []string) (string, bool)
}

// ---- Usecase / Service ----

type RankingService struct {
	catalog  Catalog
	matcher  NameMatcher
	strategy Strategy
}

func NewRankingService(catalog Catalog, matcher NameMatcher, strategy Strategy) *RankingService {
	return &RankingService{
		catalog:  catalog,
		matcher:  matcher,
		strategy: strategy,
	}
}

// StrategyName reports which scoring variant is active.
func (s *RankingService) StrategyName() string {
	return s.strategy.Name()
}

// RankByQuery resolves a free-text query to a catalog product and ranks
// its offers. Returns ErrProductNotFound when no name is close enough;
// the ranker is never invoked in that case.
func (s *RankingService) RankByQuery(ctx context.Context, query string, k int) (domain.RankingResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RankingResult{}, fmt.Errorf("context error: %w", err)
	}

	name, ok := s.matcher.BestMatch(query, s.catalog.ProductNames())
	if !ok {
		metrics.RankRequestsTotal.WithLabelValues("not_found", s.strategy.Name()).Inc()
		return domain.RankingResult{}, ErrProductNotFound
	}

	product, ok := s.catalog.ByName(name)
	if !ok {
		// matcher returned a name the snapshot no longer carries
		metrics.RankRequestsTotal.WithLabelValues("not_found", s.strategy.Name()).Inc()
		return domain.RankingResult{}, ErrProductNotFound
	}

	offers, err := s.RankOffersForEntry(ctx, product, k)
	if err != nil {
		return domain.RankingResult{}, err
	}

	return domain.RankingResult{
		ProductName:  product.ProductName,
		Description:  product.Description,
		BaseImageURL: product.BaseImageURL,
		Strategy:     s.strategy.Name(),
		Offers:       offers,
	}, nil
}

// RankOffersForEntry flattens one matched product and returns its top-K
// offers, highest score first. Returns ErrNoOffers when the product
// flattens to zero rows — that is a distinct outcome, not an empty
// ranking of a valid set.
func (s *RankingService) RankOffersForEntry(ctx context.Context, product domain.Product, k int) ([]domain.ScoredRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()

	rows := Flatten(product)
	if len(rows) == 0 {
		metrics.RankRequestsTotal.WithLabelValues("no_offers", s.strategy.Name()).Inc()
		return nil, ErrNoOffers
	}

	top := TopK(s.strategy, rows, k)

	tid := TraceIDFromContext(ctx)
	logger.Debug("offers_ranked",
		"trace_id", tid,
		"product", product.ProductName,
		"strategy", s.strategy.Name(),
		"offer_count", len(rows),
		"returned", len(top),
	)

	metrics.RankLatency.Observe(time.Since(start).Seconds())
	metrics.RankRequestsTotal.WithLabelValues("ok", s.strategy.Name()).Inc()
	metrics.OffersScoredTotal.Add(float64(len(rows)))

	return top, nil
}

// ScoreFeatureRows applies the active strategy directly to prepared rows,
// preserving their order. Exposed for training parity checks and tests.
func (s *RankingService) ScoreFeatureRows(rows []domain.FeatureRow) []domain.ScoredRow {
	scores := s.strategy.Score(rows)

	scored := make([]domain.ScoredRow, len(rows))
	for i, row := range rows {
		scored[i] = domain.ScoredRow{
			FeatureRow: row,
			Score:      scores[i],
		}
	}
	return scored
}
