package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fekuna/omnipos-storefront/internal/slug"
)

func TestMake(t *testing.T) {
	tests := map[string]string{
		"Classic Fit Oxford Shirt": "classic-fit-oxford-shirt",
		"  Men's Fashion!! ":       "men-s-fashion",
		"Kids 2-in-1 Set":          "kids-2-in-1-set",
	}
	for in, want := range tests {
		assert.Equal(t, want, slug.Make(in), in)
	}
	assert.Empty(t, slug.Make("শাড়ি"))
}

func TestVariantSKU(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.Equal(t, "MW-OXF-001-XL", slug.VariantSKU("MW-OXF-001", s("xl"), nil))
	assert.Equal(t, "MW-OXF-001-EXTRA-LARGE", slug.VariantSKU("MW-OXF-001", s("extra  large"), nil))
	assert.Equal(t, "MW-OXF-001-M-NAVY-BLUE", slug.VariantSKU("MW-OXF-001", s("M"), s("Navy Blue")))
	assert.Equal(t, "MW-OXF-001-RED", slug.VariantSKU("MW-OXF-001", s(" "), s("red")))
	assert.Equal(t, "MW-OXF-001", slug.VariantSKU("MW-OXF-001", nil, nil))
}
