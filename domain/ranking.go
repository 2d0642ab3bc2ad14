package domain

// FeatureRow is the flattened join of one offer with its variant
// specifications and parent product. One row per offer; rows are
// independent of their siblings. Optional fields stay nil when the source
// data is absent so the scoring side can tell "missing" from zero.
type FeatureRow struct {
	// Model features
	Brand           *string  `json:"brand,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	RatingCount     *float64 `json:"rating_count,omitempty"`
	DeliveryInDays  *float64 `json:"delivery_in_days,omitempty"`
	IsTrustedSeller *bool    `json:"is_trusted_seller,omitempty"`
	RAMGB           *float64 `json:"RAM_GB,omitempty"`
	WarrantyMonths  *float64 `json:"warranty_months,omitempty"`
	IsReplaceable   *bool    `json:"is_replaceable,omitempty"`
	Color           *string  `json:"Color,omitempty"`

	// Display-only fields
	ProductName    string            `json:"product_name"`
	SellerName     string            `json:"seller_name"`
	Specifications map[string]string `json:"specifications"`
}

// ScoredRow is a FeatureRow with the strategy's scalar score attached.
type ScoredRow struct {
	FeatureRow
	Score float64 `json:"score"`
}

// RankingResult is the ordered top-K outcome for one matched product.
type RankingResult struct {
	ProductName  string      `json:"product_name"`
	Description  string      `json:"description"`
	BaseImageURL string      `json:"base_image_url"`
	Strategy     string      `json:"strategy"`
	Offers       []ScoredRow `json:"offers"`
}
