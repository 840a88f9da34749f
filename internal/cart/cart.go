// Package cart builds cart line items from a product and the shopper's variant selection.
// The cart itself lives in the browser; the service only validates and prices what goes into it.
package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/variant"
)

var (
	ErrVariantRequired   = fmt.Errorf("%w: variant selection required", model.ErrInvalidInput)
	ErrUnknownVariant    = fmt.Errorf("%w: variant does not belong to product", model.ErrInvalidInput)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be at least 1", model.ErrInvalidInput)
	ErrOutOfStock        = fmt.Errorf("%w: out of stock", model.ErrInsufficientStock)
	ErrInsufficientStock = fmt.Errorf("%w: quantity exceeds stock", model.ErrInsufficientStock)
)

type VariantInfo struct {
	Size  *string `json:"size,omitempty"`
	Color *string `json:"color,omitempty"`
}

type LineItem struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"product_id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	SalePrice   *float64     `json:"sale_price,omitempty"`
	Image       string       `json:"image"`
	Quantity    int          `json:"quantity"`
	Stock       int          `json:"stock"`
	VariantID   *string      `json:"variant_id,omitempty"`
	VariantInfo *VariantInfo `json:"variant_info,omitempty"`
	Subtotal    float64      `json:"subtotal"`
}

// StockError carries the available quantity for the shopper-facing message.
type StockError struct {
	Stock int
	err   error
}

func (e *StockError) Error() string { return e.err.Error() }
func (e *StockError) Unwrap() error { return e.err }

// NewLineItem validates a selection against the product's variants and prices it.
// variantID is ignored for products without variants.
func NewLineItem(p *model.Product, variants []model.ProductVariant, variantID string, quantity int) (*LineItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var selected *model.ProductVariant
	if len(variants) > 0 {
		if variantID == "" {
			return nil, ErrVariantRequired
		}
		selected = variant.FindByID(variants, variantID)
		if selected == nil {
			return nil, ErrUnknownVariant
		}
		if !selected.IsActive {
			return nil, &StockError{Stock: 0, err: ErrOutOfStock}
		}
	}

	stock := variant.EffectiveStock(p, selected)
	if stock <= 0 {
		return nil, &StockError{Stock: 0, err: ErrOutOfStock}
	}
	if quantity > stock {
		return nil, &StockError{Stock: stock, err: ErrInsufficientStock}
	}

	adjustment := decimal.Zero
	if selected != nil {
		adjustment = decimal.NewFromFloat(selected.PriceAdjustment)
	}
	price := decimal.NewFromFloat(p.Price).Add(adjustment)
	unit := decimal.NewFromFloat(p.ListPrice()).Add(adjustment)

	item := &LineItem{
		ID:        p.ID,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     price.Round(2).InexactFloat64(),
		Image:     p.FirstImage(),
		Quantity:  quantity,
		Stock:     stock,
	}

	if p.SalePrice != nil && *p.SalePrice > 0 {
		sale := decimal.NewFromFloat(*p.SalePrice).Add(adjustment)
		s := sale.Round(2).InexactFloat64()
		item.SalePrice = &s
	}

	if selected != nil {
		id := selected.ID
		item.ID = p.ID + "-" + selected.ID
		item.VariantID = &id
		item.VariantInfo = &VariantInfo{Size: selected.Size, Color: selected.Color}
		if suffix := variantLabel(selected); suffix != "" {
			item.Name = fmt.Sprintf("%s (%s)", p.Name, suffix)
		}
	}

	item.Subtotal = unit.Mul(decimal.NewFromInt(int64(quantity))).Round(2).InexactFloat64()
	return item, nil
}

func variantLabel(v *model.ProductVariant) string {
	parts := make([]string, 0, 2)
	for _, s := range []*string{v.Size, v.Color} {
		if s != nil && *s != "" {
			parts = append(parts, *s)
		}
	}
	return strings.Join(parts, " / ")
}

// AvailableStock extracts the quantity carried by a stock error, if any.
func AvailableStock(err error) (int, bool) {
	var se *StockError
	if errors.As(err, &se) {
		return se.Stock, true
	}
	return 0, false
}
