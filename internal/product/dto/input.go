package dto

import "github.com/fekuna/omnipos-storefront/internal/variant"

type VariantInput struct {
	Size            *string `json:"size"`
	Color           *string `json:"color"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Stock           int     `json:"stock" validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

type CreateProductInput struct {
	Name             string         `json:"name" validate:"required,max=255"`
	Slug             string         `json:"slug" validate:"slug,max=255"`
	Price            float64        `json:"price" validate:"gte=0"`
	SalePrice        *float64       `json:"sale_price" validate:"omitempty,gte=0"`
	CategoryID       *string        `json:"category_id" validate:"omitempty,uuid"`
	Stock            int            `json:"stock" validate:"gte=0"`
	SKU              string         `json:"sku" validate:"required,max=100"`
	ShortDescription string         `json:"short_description"`
	Description      string         `json:"description"`
	Images           []string       `json:"images" validate:"min=1,dive,required"`
	GalleryImages    []string       `json:"gallery_images" validate:"dive,required"`
	Specifications   []string       `json:"specifications"`
	IsNew            bool           `json:"is_new"`
	IsBestSeller     bool           `json:"is_best_seller"`
	IsFeatured       bool           `json:"is_featured"`
	IsActive         *bool          `json:"is_active"`
	Variants         []VariantInput `json:"variants" validate:"dive"`
}

// UpdateProductInput replaces every product field. A nil Variants leaves the stored
// variants untouched; a non-nil one, even empty, replaces them.
type UpdateProductInput struct {
	ID string `json:"-" validate:"required"`
	CreateProductInput
}

type CreateVariantInput struct {
	ProductID       string  `json:"-" validate:"required"`
	Size            *string `json:"size"`
	Color           *string `json:"color"`
	SKU             string  `json:"sku" validate:"max=100"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Stock           int     `json:"stock" validate:"gte=0"`
}

type UpdateVariantInput struct {
	ID              string  `json:"-" validate:"required"`
	ProductID       string  `json:"-" validate:"required"`
	Size            *string `json:"size"`
	Color           *string `json:"color"`
	SKU             string  `json:"sku" validate:"max=100"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Stock           int     `json:"stock" validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

// SelectionInput identifies the current selection by its variant id ("" for none) and the
// action to apply to it.
type SelectionInput struct {
	VariantID string         `json:"variant_id"`
	Action    variant.Action `json:"action"`
}
