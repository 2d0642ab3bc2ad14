package ranking

import "dealScout/domain"

// FeatureKind tags how a feature is preprocessed before the regressor.
type FeatureKind int

const (
	KindNumeric FeatureKind = iota
	KindCategorical
	KindBoolean
)

type Feature struct {
	Name string
	Kind FeatureKind
}

// Schema is the canonical ordered feature set shared by the flattener,
// the learned model, and the offline trainer. Order matters: the fitted
// transform and the regressor weights are positional.
var Schema = []Feature{
	{Name: "price", Kind: KindNumeric},
	{Name: "rating", Kind: KindNumeric},
	{Name: "rating_count", Kind: KindNumeric},
	{Name: "delivery_in_days", Kind: KindNumeric},
	{Name: "RAM_GB", Kind: KindNumeric},
	{Name: "warranty_months", Kind: KindNumeric},
	{Name: "brand", Kind: KindCategorical},
	{Name: "Color", Kind: KindCategorical},
	{Name: "is_trusted_seller", Kind: KindBoolean},
	{Name: "is_replaceable", Kind: KindBoolean},
}

// FeatureNames returns the schema's names in order.
func FeatureNames() []string {
	names := make([]string, len(Schema))
	for i, f := range Schema {
		names[i] = f.Name
	}
	return names
}

// KindOf looks a feature kind up by name. Unknown names report numeric,
// the safest imputable kind, so schema drift in a stored artifact never
// turns into a serving failure.
func KindOf(name string) FeatureKind {
	for _, f := range Schema {
		if f.Name == name {
			return f.Kind
		}
	}
	return KindNumeric
}

// NumericValue extracts a named numeric feature from a row. The second
// return is false when the value is absent and must be imputed.
func NumericValue(row domain.FeatureRow, name string) (float64, bool) {
	var p *float64
	switch name {
	case "price":
		p = row.Price
	case "rating":
		p = row.Rating
	case "rating_count":
		p = row.RatingCount
	case "delivery_in_days":
		p = row.DeliveryInDays
	case "RAM_GB":
		p = row.RAMGB
	case "warranty_months":
		p = row.WarrantyMonths
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// CategoricalValue extracts a named categorical feature from a row.
func CategoricalValue(row domain.FeatureRow, name string) (string, bool) {
	var p *string
	switch name {
	case "brand":
		p = row.Brand
	case "Color":
		p = row.Color
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// BooleanValue extracts a named boolean feature from a row. Absent
// booleans read as false, matching the fillna(false) convention.
func BooleanValue(row domain.FeatureRow, name string) bool {
	var p *bool
	switch name {
	case "is_trusted_seller":
		p = row.IsTrustedSeller
	case "is_replaceable":
		p = row.IsReplaceable
	}
	if p == nil {
		return false
	}
	return *p
}
