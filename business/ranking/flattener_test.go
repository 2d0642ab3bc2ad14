package ranking

import (
	"testing"

	"dealScout/domain"

	"github.com/stretchr/testify/assert"
)

func testProduct() domain.Product {
	return domain.Product{
		ProductName: "Acme Phone X",
		Brand:       "Acme",
		Variants: []domain.Variant{
			{
				VariantID: "acme-x-8-128",
				Specifications: map[string]any{
					"RAM_GB":          float64(8),
					"Storage_GB":      float64(128),
					"Color":           "Black",
					"warranty_months": float64(12),
					"is_replaceable":  true,
				},
				Offers: []domain.Offer{
					{SellerName: "ShopA", Price: f64(999), Rating: f64(4.2), IsTrustedSeller: true},
					{SellerName: "ShopB", Price: f64(949), Rating: f64(3.9)},
				},
			},
			{
				VariantID:      "acme-x-12-256",
				Specifications: map[string]any{},
				Offers: []domain.Offer{
					{SellerName: "ShopC", Price: f64(1199)},
				},
			},
		},
	}
}

func TestFlattenRowPerOffer(t *testing.T) {
	rows := Flatten(testProduct())

	assert.Len(t, rows, 3)
	assert.Equal(t, "ShopA", rows[0].SellerName)
	assert.Equal(t, "ShopB", rows[1].SellerName)
	assert.Equal(t, "ShopC", rows[2].SellerName)
	for _, row := range rows {
		assert.Equal(t, "Acme Phone X", row.ProductName)
	}
}

func TestFlattenMergesVariantSpecsIntoRows(t *testing.T) {
	rows := Flatten(testProduct())

	first := rows[0]
	assert.NotNil(t, first.Brand)
	assert.Equal(t, "Acme", *first.Brand)
	assert.NotNil(t, first.RAMGB)
	assert.Equal(t, 8.0, *first.RAMGB)
	assert.NotNil(t, first.WarrantyMonths)
	assert.Equal(t, 12.0, *first.WarrantyMonths)
	assert.NotNil(t, first.Color)
	assert.Equal(t, "Black", *first.Color)
	assert.NotNil(t, first.IsReplaceable)
	assert.True(t, *first.IsReplaceable)
	assert.NotNil(t, first.IsTrustedSeller)
	assert.True(t, *first.IsTrustedSeller)

	// bare variant: spec fields stay absent for imputation downstream
	last := rows[2]
	assert.Nil(t, last.RAMGB)
	assert.Nil(t, last.Color)
	assert.Nil(t, last.IsReplaceable)
	assert.Nil(t, last.Rating)
}

func TestFlattenSpecsSummary(t *testing.T) {
	rows := Flatten(testProduct())

	assert.Equal(t, map[string]string{
		"RAM":         "8 GB",
		"Storage":     "128 GB",
		"Color":       "Black",
		"Warranty":    "12 Months",
		"Replaceable": "Yes",
	}, rows[0].Specifications)

	assert.Equal(t, map[string]string{
		"RAM":         "N/A",
		"Storage":     "N/A",
		"Color":       "N/A",
		"Warranty":    "N/A",
		"Replaceable": "No",
	}, rows[2].Specifications)
}

func TestFlattenNoOffersYieldsEmpty(t *testing.T) {
	p := domain.Product{
		ProductName: "Ghost Product",
		Variants: []domain.Variant{
			{VariantID: "v1", Specifications: map[string]any{"RAM_GB": float64(4)}},
		},
	}
	assert.Empty(t, Flatten(p))
	assert.Empty(t, Flatten(domain.Product{ProductName: "No Variants"}))
}

func TestFlattenTolerantSpecShapes(t *testing.T) {
	p := domain.Product{
		ProductName: "Messy Import",
		Variants: []domain.Variant{
			{
				Specifications: map[string]any{
					"RAM_GB":         int(16),  // int instead of float64
					"Color":          "",       // empty string reads as absent
					"is_replaceable": "yes",    // wrong type reads as absent
					"Storage_GB":     nil,      // explicit null
				},
				Offers: []domain.Offer{{SellerName: "ShopA"}},
			},
		},
	}

	rows := Flatten(p)
	assert.Len(t, rows, 1)
	assert.NotNil(t, rows[0].RAMGB)
	assert.Equal(t, 16.0, *rows[0].RAMGB)
	assert.Nil(t, rows[0].Color)
	assert.Nil(t, rows[0].IsReplaceable)
	assert.Equal(t, "N/A", rows[0].Specifications["Storage"])
}
