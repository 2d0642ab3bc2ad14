package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name    TEXT NOT NULL UNIQUE,
//     brand           TEXT,
//     description     TEXT,
//     base_image_url  TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName  string    `gorm:"column:product_name;type:text;not null;uniqueIndex" json:"product_name"`
	Brand        string    `gorm:"column:brand;type:text" json:"brand"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	BaseImageURL string    `gorm:"column:base_image_url;type:text" json:"base_image_url"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`

	Variants []Variant `gorm:"foreignKey:ProductRef;constraint:OnDelete:CASCADE" json:"variants"`
}

func (Product) TableName() string {
	return "products"
}

type Variant struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductRef uint64 `gorm:"column:product_ref;not null;index" json:"-"`
	VariantID  string `gorm:"column:variant_id;type:text" json:"variant_id"`

	// Specifications holds RAM_GB, Storage_GB, Color, warranty_months,
	// is_replaceable keyed by attribute name.
	Specifications datatypes.JSONMap `gorm:"column:specifications;type:jsonb" json:"specifications"`

	Offers []Offer `gorm:"foreignKey:VariantRef;constraint:OnDelete:CASCADE" json:"offers"`
}

func (Variant) TableName() string {
	return "variants"
}

// Offer is one seller's listing for a variant. Optional numerics are
// pointers so absent values survive the round trip instead of becoming
// zeros; scoring applies its own defaults.
type Offer struct {
	ID              uint64   `gorm:"primaryKey;autoIncrement" json:"id"`
	VariantRef      uint64   `gorm:"column:variant_ref;not null;index" json:"-"`
	SellerName      string   `gorm:"column:seller_name;type:text" json:"seller_name"`
	Price           *float64 `gorm:"column:price;type:numeric" json:"price,omitempty"`
	Rating          *float64 `gorm:"column:rating;type:numeric" json:"rating,omitempty"`
	RatingCount     *float64 `gorm:"column:rating_count;type:numeric" json:"rating_count,omitempty"`
	DeliveryInDays  *float64 `gorm:"column:delivery_in_days;type:numeric" json:"delivery_in_days,omitempty"`
	IsTrustedSeller bool     `gorm:"column:is_trusted_seller;default:false" json:"is_trusted_seller"`
}

func (Offer) TableName() string {
	return "offers"
}
