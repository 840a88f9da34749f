package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func shirt() *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: "p1"},
		Name:      "Linen Shirt",
		Price:     1000,
		SalePrice: floatPtr(900),
		Stock:     8,
		Images:    []string{"shirt.jpg"},
		IsActive:  true,
	}
}

func shirtVariants() []model.ProductVariant {
	return []model.ProductVariant{
		{BaseModel: model.BaseModel{ID: "v-s"}, Size: strPtr("S"), Color: strPtr("White"), PriceAdjustment: 0, Stock: 3, IsActive: true},
		{BaseModel: model.BaseModel{ID: "v-xl"}, Size: strPtr("XL"), PriceAdjustment: 50.5, Stock: 2, IsActive: true},
		{BaseModel: model.BaseModel{ID: "v-off"}, Size: strPtr("M"), Stock: 9, IsActive: false},
		{BaseModel: model.BaseModel{ID: "v-empty"}, Size: strPtr("L"), Stock: 0, IsActive: true},
	}
}

func TestNewLineItemWithVariant(t *testing.T) {
	item, err := cart.NewLineItem(shirt(), shirtVariants(), "v-xl", 2)
	require.NoError(t, err)

	assert.Equal(t, "p1-v-xl", item.ID)
	assert.Equal(t, "Linen Shirt (XL)", item.Name)
	assert.Equal(t, 1050.5, item.Price)
	require.NotNil(t, item.SalePrice)
	assert.Equal(t, 950.5, *item.SalePrice)
	assert.Equal(t, 1901.0, item.Subtotal)
	assert.Equal(t, 2, item.Stock)
	assert.Equal(t, "shirt.jpg", item.Image)
	require.NotNil(t, item.VariantID)
	assert.Equal(t, "v-xl", *item.VariantID)

	item, err = cart.NewLineItem(shirt(), shirtVariants(), "v-s", 1)
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt (S / White)", item.Name)
}

func TestNewLineItemWithoutVariants(t *testing.T) {
	p := shirt()
	p.SalePrice = nil
	p.Images = nil

	item, err := cart.NewLineItem(p, nil, "ignored", 3)
	require.NoError(t, err)

	assert.Equal(t, "p1", item.ID)
	assert.Equal(t, "Linen Shirt", item.Name)
	assert.Nil(t, item.SalePrice)
	assert.Nil(t, item.VariantID)
	assert.Equal(t, 3000.0, item.Subtotal)
	assert.Equal(t, 8, item.Stock)
	assert.Equal(t, "/placeholder.svg", item.Image)
}

func TestNewLineItemErrors(t *testing.T) {
	tests := []struct {
		name      string
		variantID string
		quantity  int
		want      error
		stock     int
	}{
		{"zero quantity", "v-s", 0, cart.ErrInvalidQuantity, 0},
		{"no selection", "", 1, cart.ErrVariantRequired, 0},
		{"foreign variant", "v-other", 1, cart.ErrUnknownVariant, 0},
		{"inactive variant", "v-off", 1, cart.ErrOutOfStock, 0},
		{"sold out variant", "v-empty", 1, cart.ErrOutOfStock, 0},
		{"more than stock", "v-s", 4, cart.ErrInsufficientStock, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cart.NewLineItem(shirt(), shirtVariants(), tc.variantID, tc.quantity)
			require.ErrorIs(t, err, tc.want)

			if stock, ok := cart.AvailableStock(err); ok {
				assert.Equal(t, tc.stock, stock)
			}
		})
	}
}

func TestErrorClasses(t *testing.T) {
	assert.ErrorIs(t, cart.ErrVariantRequired, model.ErrInvalidInput)
	assert.ErrorIs(t, cart.ErrInvalidQuantity, model.ErrInvalidInput)
	assert.ErrorIs(t, cart.ErrOutOfStock, model.ErrInsufficientStock)
	assert.ErrorIs(t, cart.ErrInsufficientStock, model.ErrInsufficientStock)
}
