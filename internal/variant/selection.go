package variant

import "github.com/fekuna/omnipos-storefront/internal/model"

// Availability distinguishes a sold out combination from one that does not exist.
type Availability string

const (
	Available Availability = "available"
	SoldOut   Availability = "sold_out"
	Missing   Availability = "missing"
)

// Selectable reports whether a picker button in this state is enabled.
func (a Availability) Selectable() bool { return a == Available }

// CombinationState classifies size/color (nil matches anything) against the active variants.
func CombinationState(variants []model.ProductVariant, size, color *string) Availability {
	state := Missing
	for i := range variants {
		v := &variants[i]
		if !v.IsActive || !matches(v.Size, size) || !matches(v.Color, color) {
			continue
		}
		if v.Stock > 0 {
			return Available
		}
		state = SoldOut
	}
	return state
}

type Option struct {
	Value    string       `json:"value"`
	State    Availability `json:"state"`
	Selected bool         `json:"selected"`
}

type ActionType string

const (
	SelectSize  ActionType = "select_size"
	SelectColor ActionType = "select_color"
	Clear       ActionType = "clear"
)

type Action struct {
	Type  ActionType `json:"type"`
	Value string     `json:"value"`
}

// Selection is the picker state. Size and Color always mirror Variant.
type Selection struct {
	Size    *string               `json:"size"`
	Color   *string               `json:"color"`
	Variant *model.ProductVariant `json:"variant"`
}

func NewSelection(v *model.ProductVariant) Selection {
	if v == nil {
		return Selection{}
	}
	return Selection{Size: v.Size, Color: v.Color, Variant: v}
}

// Initial selects the first available variant, if any.
func Initial(variants []model.ProductVariant) Selection {
	return NewSelection(FirstAvailable(variants))
}

// Apply returns the selection after a. A size or color that resolves to no variant leaves
// the selection unchanged; the caller decides whether to clear first.
func (s Selection) Apply(variants []model.ProductVariant, a Action) Selection {
	switch a.Type {
	case SelectSize:
		if v := ResolveSizeSelection(variants, a.Value, s.Color); v != nil {
			return NewSelection(v)
		}
	case SelectColor:
		if v := ResolveColorSelection(variants, a.Value, s.Size); v != nil {
			return NewSelection(v)
		}
	case Clear:
		return Selection{}
	}
	return s
}

// SizeOptions renders the size rail relative to the selected color.
func (s Selection) SizeOptions(variants []model.ProductVariant) []Option {
	sizes := AvailableSizes(variants)
	opts := make([]Option, 0, len(sizes))
	for _, size := range sizes {
		size := size
		opts = append(opts, Option{
			Value:    size,
			State:    CombinationState(variants, &size, s.Color),
			Selected: equals(s.Size, size),
		})
	}
	return opts
}

// ColorOptions renders the color list relative to the selected size.
func (s Selection) ColorOptions(variants []model.ProductVariant) []Option {
	colors := AvailableColors(variants)
	opts := make([]Option, 0, len(colors))
	for _, color := range colors {
		color := color
		opts = append(opts, Option{
			Value:    color,
			State:    CombinationState(variants, s.Size, &color),
			Selected: equals(s.Color, color),
		})
	}
	return opts
}

// Complete reports whether the shopper may proceed to the cart: products without
// variants are always complete, others need a resolved variant.
func (s Selection) Complete(variants []model.ProductVariant) bool {
	return len(variants) == 0 || s.Variant != nil
}
