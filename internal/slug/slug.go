// Package slug derives URL slugs and variant SKUs from display names.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Make lowercases s and collapses every run of characters outside [a-z0-9] into a hyphen.
// Names written entirely in other scripts yield "".
func Make(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// VariantSKU appends the upper-cased variant label to the product SKU, e.g. "MW-OXF-001-XL".
// Size and color are joined with a hyphen when both are set.
func VariantSKU(productSKU string, size, color *string) string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{size, color} {
		if p == nil {
			continue
		}
		if v := strings.TrimSpace(*p); v != "" {
			parts = append(parts, whitespace.ReplaceAllString(strings.ToUpper(v), "-"))
		}
	}
	if len(parts) == 0 {
		return productSKU
	}
	return productSKU + "-" + strings.Join(parts, "-")
}
