// Package trainer builds the ranking model artifact offline: it flattens
// the full catalog through the serving feature schema, derives a synthetic
// target, fits the preprocessing transform and a ridge regressor, and
// persists both as one artifact for the serving side to load.
package trainer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"dealScout/business/ranking"
	"dealScout/domain"
	"dealScout/pkg/logger"
)

// ridgeLambda is the L2 term keeping the normal equations invertible when
// columns are collinear (one-hot groups always are).
const ridgeLambda = 1e-3

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAllWithOffers(ctx context.Context) ([]domain.Product, error)
}

// ArtifactRepository contract interface
type ArtifactRepository interface {
	Save(ctx context.Context, artifact *domain.ModelArtifact) error
}

type TrainerService struct {
	catalogRepo  CatalogRepository
	artifactRepo ArtifactRepository
}

func NewTrainerService(catalogRepo CatalogRepository, artifactRepo ArtifactRepository) *TrainerService {
	return &TrainerService{
		catalogRepo:  catalogRepo,
		artifactRepo: artifactRepo,
	}
}

// Run loads the catalog, fits a model, and persists the artifact.
func (s *TrainerService) Run(ctx context.Context) (*domain.ModelArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.catalogRepo.FindAllWithOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	rows := make([]domain.FeatureRow, 0)
	for _, product := range products {
		rows = append(rows, ranking.Flatten(product)...)
	}
	logger.Info("catalog flattened", "products", len(products), "offers", len(rows))

	artifact, err := Fit(rows)
	if err != nil {
		return nil, err
	}

	if err := s.artifactRepo.Save(ctx, artifact); err != nil {
		return nil, fmt.Errorf("save artifact: %w", err)
	}

	logger.Info("artifact saved",
		"version", artifact.Version,
		"rows", artifact.RowCount,
		"rmse", artifact.RMSE,
	)
	return artifact, nil
}

// Fit fits the preprocessing transform and ridge regressor against the
// bestness target and packages both as an artifact.
func Fit(rows []domain.FeatureRow) (*domain.ModelArtifact, error) {
	if len(rows) == 0 {
		return nil, errors.New("no offers to train on")
	}

	payload := fitTransform(rows)

	// Encode the design matrix with a leading bias column.
	width := transformWidth(payload)
	X := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, row := range rows {
		x := payload.Transform(row)
		X[i] = append([]float64{1}, x...)
		y[i] = bestnessScore(row)
	}

	// Normal equations: (X^T X + lambda I) w = X^T y.
	dim := width + 1
	A := zeroMatrix(dim)
	b := make([]float64, dim)
	for i := range X {
		addOuter(A, X[i])
		addScaled(b, X[i], y[i])
	}
	for i := 0; i < dim; i++ {
		A[i][i] += ridgeLambda
	}

	AInv, err := invert(A)
	if err != nil {
		return nil, fmt.Errorf("fit regressor: %w", err)
	}
	w := matVecMul(AInv, b)

	payload.Intercept = w[0]
	payload.Weights = w[1:]

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("fitted payload failed validation: %w", err)
	}

	// Training-set RMSE, reported on the artifact for inspection.
	sse := 0.0
	for i := range X {
		pred := dot(w, X[i])
		d := pred - y[i]
		sse += d * d
	}
	rmse := math.Sqrt(sse / float64(len(X)))

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode artifact payload: %w", err)
	}

	return &domain.ModelArtifact{
		Version:  time.Now().UTC().Format("20060102T150405Z"),
		Payload:  raw,
		RMSE:     rmse,
		RowCount: len(rows),
	}, nil
}

// bestnessScore is the synthetic training target:
//
//	(rating * ln(1 + rating_count)) / (price / 1000)
//
// Missing rating and rating_count count as 0; missing or non-positive
// price counts as 1 to avoid division by zero.
func bestnessScore(row domain.FeatureRow) float64 {
	price := 1.0
	if row.Price != nil && *row.Price > 0 {
		price = *row.Price
	}

	rating := 0.0
	if row.Rating != nil {
		rating = *row.Rating
	}

	ratingCount := 0.0
	if row.RatingCount != nil {
		ratingCount = *row.RatingCount
	}

	return (rating * math.Log1p(ratingCount)) / (price / 1000)
}

// fitTransform computes the imputation and encoding parameters over the
// training rows, mirroring what the serving transform will apply:
// numeric median over observed values, mean/std over the imputed column;
// categorical vocabulary over the imputed column, sorted.
func fitTransform(rows []domain.FeatureRow) *ranking.ArtifactPayload {
	payload := &ranking.ArtifactPayload{
		FeatureNames: ranking.FeatureNames(),
		Numeric:      make(map[string]ranking.NumericParams),
		Categorical:  make(map[string]ranking.CategoricalParams),
	}

	for _, feature := range ranking.Schema {
		switch feature.Kind {
		case ranking.KindNumeric:
			observed := make([]float64, 0, len(rows))
			for _, row := range rows {
				if v, ok := ranking.NumericValue(row, feature.Name); ok {
					observed = append(observed, v)
				}
			}
			med := median(observed)

			imputed := make([]float64, len(rows))
			for i, row := range rows {
				v, ok := ranking.NumericValue(row, feature.Name)
				if !ok {
					v = med
				}
				imputed[i] = v
			}
			mean, std := meanStd(imputed)

			payload.Numeric[feature.Name] = ranking.NumericParams{
				Median: med,
				Mean:   mean,
				Std:    std,
			}

		case ranking.KindCategorical:
			seen := make(map[string]struct{})
			for _, row := range rows {
				v, ok := ranking.CategoricalValue(row, feature.Name)
				if !ok {
					v = "Unknown"
				}
				seen[v] = struct{}{}
			}

			categories := make([]string, 0, len(seen))
			for v := range seen {
				categories = append(categories, v)
			}
			sort.Strings(categories)

			payload.Categorical[feature.Name] = ranking.CategoricalParams{
				Categories: categories,
			}
		}
	}

	return payload
}

// transformWidth is the encoded vector length of an unfitted payload
// (Width() reads the weight slice, which does not exist yet here).
func transformWidth(payload *ranking.ArtifactPayload) int {
	width := 0
	for _, feature := range ranking.Schema {
		switch feature.Kind {
		case ranking.KindCategorical:
			width += len(payload.Categorical[feature.Name].Categories)
		default:
			width++
		}
	}
	return width
}
