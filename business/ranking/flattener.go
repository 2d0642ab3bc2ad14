package ranking

import (
	"fmt"

	"dealScout/domain"
)

// Flatten expands one catalog product into independent feature rows, one
// per offer across all variants. A product with no offers yields an empty
// slice; callers must treat that as the distinct no-offers outcome rather
// than ranking zero rows.
func Flatten(product domain.Product) []domain.FeatureRow {
	rows := make([]domain.FeatureRow, 0)

	var brand *string
	if product.Brand != "" {
		b := product.Brand
		brand = &b
	}

	for _, variant := range product.Variants {
		specs := variant.Specifications

		ramGB := specNumber(specs, "RAM_GB")
		warranty := specNumber(specs, "warranty_months")
		replaceable := specBool(specs, "is_replaceable")
		color := specString(specs, "Color")

		summary := specsSummary(specs)

		for _, offer := range variant.Offers {
			var trusted *bool
			t := offer.IsTrustedSeller
			trusted = &t

			rows = append(rows, domain.FeatureRow{
				Brand:           brand,
				Price:           offer.Price,
				Rating:          offer.Rating,
				RatingCount:     offer.RatingCount,
				DeliveryInDays:  offer.DeliveryInDays,
				IsTrustedSeller: trusted,
				RAMGB:           ramGB,
				WarrantyMonths:  warranty,
				IsReplaceable:   replaceable,
				Color:           color,

				ProductName:    product.ProductName,
				SellerName:     offer.SellerName,
				Specifications: summary,
			})
		}
	}

	return rows
}

// specsSummary builds the human-readable specification map shown next to
// each ranked offer.
func specsSummary(specs map[string]any) map[string]string {
	summary := map[string]string{
		"RAM":         "N/A",
		"Storage":     "N/A",
		"Color":       "N/A",
		"Warranty":    "N/A",
		"Replaceable": "No",
	}

	if v := specNumber(specs, "RAM_GB"); v != nil {
		summary["RAM"] = fmt.Sprintf("%v GB", trimFloat(*v))
	}
	if v := specNumber(specs, "Storage_GB"); v != nil {
		summary["Storage"] = fmt.Sprintf("%v GB", trimFloat(*v))
	}
	if v := specString(specs, "Color"); v != nil {
		summary["Color"] = *v
	}
	if v := specNumber(specs, "warranty_months"); v != nil {
		summary["Warranty"] = fmt.Sprintf("%v Months", trimFloat(*v))
	}
	if v := specBool(specs, "is_replaceable"); v != nil && *v {
		summary["Replaceable"] = "Yes"
	}

	return summary
}

// trimFloat renders whole numbers without a trailing ".0".
func trimFloat(v float64) any {
	if v == float64(int64(v)) {
		return int64(v)
	}
	return v
}

// JSONB numbers arrive as float64, but imported documents may carry
// strings or ints depending on the producer; accept the common shapes.
func specNumber(specs map[string]any, key string) *float64 {
	raw, ok := specs[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

func specString(specs map[string]any, key string) *string {
	raw, ok := specs[key]
	if !ok || raw == nil {
		return nil
	}

	if s, ok := raw.(string); ok && s != "" {
		return &s
	}
	return nil
}

func specBool(specs map[string]any, key string) *bool {
	raw, ok := specs[key]
	if !ok || raw == nil {
		return nil
	}

	if b, ok := raw.(bool); ok {
		return &b
	}
	return nil
}
