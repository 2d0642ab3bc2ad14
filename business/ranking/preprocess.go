package ranking

import (
	"fmt"

	"dealScout/domain"

	"github.com/go-playground/validator/v10"
)

// ArtifactPayload is the serialized form of a fitted preprocessing
// transform plus regressor, shared between the offline trainer (producer)
// and the learned strategy (consumer).
type ArtifactPayload struct {
	// FeatureNames is the exact ordered column list the transform was
	// fit against. It may drift from the live Schema; missing columns
	// are injected as undefined and imputed.
	FeatureNames []string `json:"feature_names" validate:"required,min=1"`

	Numeric     map[string]NumericParams     `json:"numeric" validate:"required"`
	Categorical map[string]CategoricalParams `json:"categorical" validate:"required"`

	Weights   []float64 `json:"weights" validate:"required,min=1"`
	Intercept float64   `json:"intercept"`
}

// NumericParams: impute at the training median, then standardize.
type NumericParams struct {
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
}

// CategoricalParams: impute "Unknown", then one-hot over the training
// vocabulary. A category unseen at fit time encodes to all zeros.
type CategoricalParams struct {
	Categories []string `json:"categories" validate:"required"`
}

const imputeCategory = "Unknown"

var payloadValidate = validator.New()

// Validate checks structural integrity: every feature name must carry its
// transform parameters and the regressor width must match the encoded
// vector width. Any violation sends the loader to the fallback strategy.
func (p *ArtifactPayload) Validate() error {
	if err := payloadValidate.Struct(p); err != nil {
		return fmt.Errorf("artifact payload invalid: %w", err)
	}

	width := 0
	for _, name := range p.FeatureNames {
		switch KindOf(name) {
		case KindNumeric:
			if _, ok := p.Numeric[name]; !ok {
				return fmt.Errorf("artifact missing numeric params for %q", name)
			}
			width++
		case KindCategorical:
			params, ok := p.Categorical[name]
			if !ok {
				return fmt.Errorf("artifact missing categorical params for %q", name)
			}
			width += len(params.Categories)
		case KindBoolean:
			width++
		}
	}

	if width != len(p.Weights) {
		return fmt.Errorf("artifact weight width mismatch: transform emits %d, regressor expects %d",
			width, len(p.Weights))
	}

	return nil
}

// Width returns the encoded vector length.
func (p *ArtifactPayload) Width() int {
	return len(p.Weights)
}

// Transform encodes one feature row into the regressor's input vector.
// A feature name the row cannot supply behaves as absent and is imputed,
// so schema drift never raises. Row fields outside FeatureNames are
// simply not encoded.
func (p *ArtifactPayload) Transform(row domain.FeatureRow) []float64 {
	x := make([]float64, 0, p.Width())

	for _, name := range p.FeatureNames {
		switch KindOf(name) {
		case KindNumeric:
			params := p.Numeric[name]
			v, ok := NumericValue(row, name)
			if !ok {
				v = params.Median
			}
			std := params.Std
			if std == 0 {
				std = 1
			}
			x = append(x, (v-params.Mean)/std)

		case KindCategorical:
			params := p.Categorical[name]
			v, ok := CategoricalValue(row, name)
			if !ok {
				v = imputeCategory
			}
			for _, category := range params.Categories {
				if v == category {
					x = append(x, 1)
				} else {
					x = append(x, 0)
				}
			}

		case KindBoolean:
			if BooleanValue(row, name) {
				x = append(x, 1)
			} else {
				x = append(x, 0)
			}
		}
	}

	return x
}
