package dto

import (
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/variant"
)

type ProductFilters struct {
	IsActive     *bool  `json:"is_active,omitempty"`
	IsNew        *bool  `json:"is_new,omitempty"`
	IsBestSeller *bool  `json:"is_best_seller,omitempty"`
	IsFeatured   *bool  `json:"is_featured,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
	ExcludeID    string `json:"exclude_id,omitempty"`
	SearchQuery  string `json:"q,omitempty"`          // name, sku, short description
	SortBy       string `json:"sort_by,omitempty"`    // name, price, created_at
	SortOrder    string `json:"sort_order,omitempty"` // asc, desc
	Limit        int    `json:"limit,omitempty"`
}

// SelectionView is the picker state plus everything needed to render the price block.
type SelectionView struct {
	Selection    variant.Selection `json:"selection"`
	SizeOptions  []variant.Option  `json:"size_options"`
	ColorOptions []variant.Option  `json:"color_options"`
	Price        float64           `json:"price"`
	RegularPrice *float64          `json:"regular_price,omitempty"` // set when on sale
	Stock        int               `json:"stock"`
	InStock      bool              `json:"in_stock"`
	Complete     bool              `json:"complete"`
}

type ProductDetail struct {
	Product  *model.Product         `json:"product"`
	Variants []model.ProductVariant `json:"variants"`
	View     SelectionView          `json:"view"`
	Related  []model.Product        `json:"related"`
}
