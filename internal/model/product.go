package model

import "github.com/lib/pq"

type Product struct {
	BaseModel
	Name             string         `db:"name" json:"name"`
	Slug             string         `db:"slug" json:"slug"`
	Price            float64        `db:"price" json:"price"`
	SalePrice        *float64       `db:"sale_price" json:"sale_price"` // Nullable
	CategoryID       *string        `db:"category_id" json:"category_id"`
	Stock            int            `db:"stock" json:"stock"`
	SKU              string         `db:"sku" json:"sku"`
	ShortDescription *string        `db:"short_description" json:"short_description"`
	Description      *string        `db:"description" json:"description"`
	Images           pq.StringArray `db:"images" json:"images"`
	GalleryImages    pq.StringArray `db:"gallery_images" json:"gallery_images"`
	Specifications   pq.StringArray `db:"specifications" json:"specifications"`
	IsNew            bool           `db:"is_new" json:"is_new"`
	IsBestSeller     bool           `db:"is_best_seller" json:"is_best_seller"`
	IsFeatured       bool           `db:"is_featured" json:"is_featured"`
	IsActive         bool           `db:"is_active" json:"is_active"`
	HasVariants      bool           `db:"has_variants" json:"has_variants"` // Computed from product_variants
	Category         *Category      `db:"-" json:"category"`                // Joined data
}

// ListPrice is the price shoppers pay before variant adjustments: the sale price when one is set.
func (p *Product) ListPrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}
	return p.Price
}

// OnSale reports whether a sale price below the regular price is set.
func (p *Product) OnSale() bool {
	return p.SalePrice != nil && *p.SalePrice > 0 && *p.SalePrice < p.Price
}

// FirstImage returns the primary image or the placeholder used by the storefront.
func (p *Product) FirstImage() string {
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}
	return "/placeholder.svg"
}

type ProductVariant struct {
	BaseModel
	ProductID       string  `db:"product_id" json:"product_id"`
	Size            *string `db:"size" json:"size"`
	Color           *string `db:"color" json:"color"`
	SKU             string  `db:"sku" json:"sku"`
	PriceAdjustment float64 `db:"price_adjustment" json:"price_adjustment"`
	Stock           int     `db:"stock" json:"stock"`
	IsActive        bool    `db:"is_active" json:"is_active"`
}

// Available reports whether the variant can be put in a cart.
func (v *ProductVariant) Available() bool {
	return v.IsActive && v.Stock > 0
}
