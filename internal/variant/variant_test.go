package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/variant"
)

func str(s string) *string { return &s }

func mk(id string, size, color *string, stock int, active bool) model.ProductVariant {
	return model.ProductVariant{
		BaseModel: model.BaseModel{ID: id},
		ProductID: "p1",
		Size:      size,
		Color:     color,
		Stock:     stock,
		IsActive:  active,
	}
}

func TestAvailableSizes(t *testing.T) {
	vs := []model.ProductVariant{
		mk("v1", str("M"), str("Red"), 1, true),
		mk("v2", str("S"), str("Red"), 0, false),
		mk("v3", nil, str("Blue"), 2, true),
		mk("v4", str("M"), str("Blue"), 2, true),
		mk("v5", str("L"), nil, 0, true),
	}

	assert.Equal(t, []string{"M", "S", "L"}, variant.AvailableSizes(vs))
	assert.Equal(t, []string{"Red", "Blue"}, variant.AvailableColors(vs))
}

func TestEmptyVariantList(t *testing.T) {
	var vs []model.ProductVariant

	assert.Empty(t, variant.AvailableSizes(vs))
	assert.Empty(t, variant.AvailableColors(vs))
	assert.False(t, variant.IsCombinationAvailable(vs, nil, nil))
	assert.False(t, variant.IsCombinationAvailable(vs, str("S"), nil))
	assert.False(t, variant.IsCombinationAvailable(vs, nil, str("Red")))
	assert.False(t, variant.IsCombinationAvailable(vs, str("S"), str("Red")))
	assert.Nil(t, variant.ResolveSizeSelection(vs, "S", nil))
	assert.Nil(t, variant.FirstAvailable(vs))
}

func TestIsCombinationAvailable(t *testing.T) {
	vs := []model.ProductVariant{
		mk("v1", str("S"), str("Red"), 3, true),
		mk("v2", str("S"), str("Blue"), 0, true),
		mk("v3", str("M"), str("Blue"), 4, false),
		mk("v4", str("L"), str("Green"), 1, true),
	}

	tests := []struct {
		name  string
		size  *string
		color *string
		want  bool
	}{
		{"any", nil, nil, true},
		{"size only in stock", str("S"), nil, true},
		{"pair in stock", str("S"), str("Red"), true},
		{"pair zero stock", str("S"), str("Blue"), false},
		{"inactive variant", str("M"), nil, false},
		{"color only, only in inactive or zero stock rows", nil, str("Blue"), false},
		{"color only in stock", nil, str("Green"), true},
		{"unknown size", str("XL"), nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, variant.IsCombinationAvailable(vs, tc.size, tc.color))
		})
	}
}

func TestIsCombinationAvailable_NoActiveStock(t *testing.T) {
	vs := []model.ProductVariant{
		mk("v1", str("S"), nil, 0, true),
		mk("v2", str("M"), nil, 5, false),
	}
	assert.False(t, variant.IsCombinationAvailable(vs, nil, nil))
}

func TestScenarioA_SizeOnly(t *testing.T) {
	vs := []model.ProductVariant{
		mk("v1", str("38"), nil, 5, true),
		mk("v2", str("40"), nil, 0, true),
	}

	assert.Equal(t, []string{"38", "40"}, variant.AvailableSizes(vs))
	assert.Empty(t, variant.AvailableColors(vs))
	assert.True(t, variant.IsCombinationAvailable(vs, str("38"), nil))
	assert.False(t, variant.IsCombinationAvailable(vs, str("40"), nil))
}

func TestScenarioB_TwoAxes(t *testing.T) {
	vs := []model.ProductVariant{
		mk("red-s", str("S"), str("Red"), 3, true),
		mk("blue-s", str("S"), str("Blue"), 0, true),
	}

	bySize := variant.ResolveSizeSelection(vs, "S", nil)
	require.NotNil(t, bySize)
	assert.Equal(t, "red-s", bySize.ID)

	byColor := variant.ResolveColorSelection(vs, "Blue", bySize.Size)
	require.NotNil(t, byColor)
	assert.Equal(t, "blue-s", byColor.ID)
	assert.False(t, byColor.Available())
	assert.False(t, variant.IsCombinationAvailable(vs, str("S"), str("Blue")))
}

func TestResolveSizeSelection_NoExactPair(t *testing.T) {
	vs := []model.ProductVariant{
		mk("v1", str("S"), str("Red"), 3, true),
		mk("v2", str("M"), str("Blue"), 3, true),
	}

	assert.Nil(t, variant.ResolveSizeSelection(vs, "M", str("Red")))
	assert.Nil(t, variant.ResolveColorSelection(vs, "Blue", str("S")))
}

func TestResolveSkipsInactive(t *testing.T) {
	vs := []model.ProductVariant{
		mk("off", str("S"), nil, 3, false),
		mk("on", str("S"), nil, 0, true),
	}

	got := variant.ResolveSizeSelection(vs, "S", nil)
	require.NotNil(t, got)
	assert.Equal(t, "on", got.ID)
}

func TestResolveIsIdempotent(t *testing.T) {
	vs := []model.ProductVariant{
		mk("v1", str("S"), str("Red"), 3, true),
		mk("v2", str("S"), str("Blue"), 1, true),
	}

	first := variant.ResolveSizeSelection(vs, "S", str("Blue"))
	second := variant.ResolveSizeSelection(vs, "S", str("Blue"))
	require.NotNil(t, first)
	assert.Equal(t, first, second)

	first.Stock = 99
	assert.Equal(t, 1, vs[1].Stock, "resolvers must return copies")
}

func TestEffectivePrice(t *testing.T) {
	v := mk("v1", str("S"), nil, 1, true)
	v.PriceAdjustment = 150

	assert.Equal(t, 1150.0, variant.EffectivePrice(1000, &v))
	assert.Equal(t, 1000.0, variant.EffectivePrice(1000, nil))

	v.PriceAdjustment = -200
	assert.Equal(t, 800.0, variant.EffectivePrice(1000, &v))
}

func TestEffectiveStock(t *testing.T) {
	p := &model.Product{Stock: 10}
	v := mk("v1", str("S"), nil, 3, true)

	assert.Equal(t, 10, variant.EffectiveStock(p, nil))
	assert.Equal(t, 3, variant.EffectiveStock(p, &v))
	assert.Equal(t, 0, variant.EffectiveStock(nil, nil))
}

func TestFirstAvailable(t *testing.T) {
	vs := []model.ProductVariant{
		mk("v1", str("36"), nil, 0, true),
		mk("v2", str("38"), nil, 5, false),
		mk("v3", str("40"), nil, 12, true),
	}

	got := variant.FirstAvailable(vs)
	require.NotNil(t, got)
	assert.Equal(t, "v3", got.ID)

	assert.Equal(t, "v2", variant.FindByID(vs, "v2").ID)
	assert.Nil(t, variant.FindByID(vs, "nope"))
}
