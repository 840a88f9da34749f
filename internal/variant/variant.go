// Package variant holds the size/color picker logic for a single product's variant list.
//
// Every function is pure and works on the caller's slice without modifying it.
// Variants returned by the resolvers are copies.
package variant

import "github.com/fekuna/omnipos-storefront/internal/model"

// AvailableSizes returns the distinct sizes in first-seen order, including sizes of
// inactive or sold out variants so the full button rail can be rendered.
func AvailableSizes(variants []model.ProductVariant) []string {
	return distinct(variants, func(v *model.ProductVariant) *string { return v.Size })
}

// AvailableColors is AvailableSizes for the color axis.
func AvailableColors(variants []model.ProductVariant) []string {
	return distinct(variants, func(v *model.ProductVariant) *string { return v.Color })
}

func distinct(variants []model.ProductVariant, attr func(*model.ProductVariant) *string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(variants))
	for i := range variants {
		val := attr(&variants[i])
		if val == nil {
			continue
		}
		if _, ok := seen[*val]; ok {
			continue
		}
		seen[*val] = struct{}{}
		out = append(out, *val)
	}
	return out
}

// IsCombinationAvailable reports whether some active, in-stock variant matches size and color.
// A nil size or color matches any value.
func IsCombinationAvailable(variants []model.ProductVariant, size, color *string) bool {
	for i := range variants {
		v := &variants[i]
		if matches(v.Size, size) && matches(v.Color, color) && v.Available() {
			return true
		}
	}
	return false
}

// ResolveSizeSelection finds the variant a click on targetSize selects. With a color already
// selected the color must match too. Stock is not checked; inactive variants are skipped.
func ResolveSizeSelection(variants []model.ProductVariant, targetSize string, currentColor *string) *model.ProductVariant {
	for i := range variants {
		v := variants[i]
		if !v.IsActive || !equals(v.Size, targetSize) {
			continue
		}
		if currentColor != nil && !equals(v.Color, *currentColor) {
			continue
		}
		return &v
	}
	return nil
}

// ResolveColorSelection mirrors ResolveSizeSelection with the axes swapped.
func ResolveColorSelection(variants []model.ProductVariant, targetColor string, currentSize *string) *model.ProductVariant {
	for i := range variants {
		v := variants[i]
		if !v.IsActive || !equals(v.Color, targetColor) {
			continue
		}
		if currentSize != nil && !equals(v.Size, *currentSize) {
			continue
		}
		return &v
	}
	return nil
}

// FirstAvailable returns the first active, in-stock variant.
func FirstAvailable(variants []model.ProductVariant) *model.ProductVariant {
	for i := range variants {
		if variants[i].Available() {
			v := variants[i]
			return &v
		}
	}
	return nil
}

// FindByID returns a copy of the variant with id, or nil.
func FindByID(variants []model.ProductVariant, id string) *model.ProductVariant {
	for i := range variants {
		if variants[i].ID == id {
			v := variants[i]
			return &v
		}
	}
	return nil
}

// EffectivePrice applies the selected variant's adjustment to base. No rounding happens here.
func EffectivePrice(base float64, selected *model.ProductVariant) float64 {
	if selected == nil {
		return base
	}
	return base + selected.PriceAdjustment
}

// EffectiveStock is the selected variant's stock, or the product's own stock without a selection.
func EffectiveStock(p *model.Product, selected *model.ProductVariant) int {
	if selected != nil {
		return selected.Stock
	}
	if p == nil {
		return 0
	}
	return p.Stock
}

func matches(have, want *string) bool {
	if want == nil {
		return true
	}
	return equals(have, *want)
}

func equals(have *string, want string) bool {
	return have != nil && *have == want
}
