// Package fallback serves the static catalogue used whenever the database is unreachable
// or returns nothing. Every function builds fresh values so callers may mutate the results.
package fallback

import (
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/model"
)

var loadedAt = time.Now().UTC()

func Categories() []model.Category {
	counts := map[string]int{}
	for _, p := range productSeeds {
		counts[p.categorySlug]++
	}

	out := make([]model.Category, 0, len(categorySeeds))
	for _, c := range categorySeeds {
		out = append(out, model.Category{
			BaseModel:    model.BaseModel{ID: c.id, CreatedAt: loadedAt, UpdatedAt: loadedAt},
			Name:         c.name,
			Slug:         c.slug,
			Image:        c.image,
			ProductCount: counts[c.slug],
		})
	}
	return out
}

func CategoryBySlug(slug string) *model.Category {
	for _, c := range Categories() {
		if c.Slug == slug {
			c := c
			return &c
		}
	}
	return nil
}

// Products returns the whole catalogue with categories joined, in seed order.
func Products() []model.Product {
	cats := map[string]model.Category{}
	for _, c := range Categories() {
		cats[c.Slug] = c
	}

	out := make([]model.Product, 0, len(productSeeds))
	for _, s := range productSeeds {
		p := model.Product{
			BaseModel:        model.BaseModel{ID: s.id, CreatedAt: loadedAt, UpdatedAt: loadedAt},
			Name:             s.name,
			Slug:             s.slug,
			Price:            s.price,
			Stock:            s.stock,
			SKU:              s.sku,
			ShortDescription: strPtr(s.short),
			Description:      strPtr(s.description),
			Images:           append([]string{}, s.images...),
			GalleryImages:    []string{},
			Specifications:   []string{},
			IsNew:            s.isNew,
			IsBestSeller:     s.isBestSeller,
			IsFeatured:       s.isFeatured,
			IsActive:         true,
			HasVariants:      len(variantSeeds) > 0,
		}
		if s.salePrice != nil {
			sale := *s.salePrice
			p.SalePrice = &sale
		}
		if c, ok := cats[s.categorySlug]; ok {
			c := c
			p.CategoryID = &c.ID
			p.Category = &c
		}
		out = append(out, p)
	}
	return out
}

func ProductBySlug(slug string) *model.Product {
	for _, p := range Products() {
		if p.Slug == slug {
			p := p
			return &p
		}
	}
	return nil
}

func ProductByID(id string) *model.Product {
	for _, p := range Products() {
		if p.ID == id {
			p := p
			return &p
		}
	}
	return nil
}

// Featured returns the first limit products; the catalogue has no recency to sort by.
func Featured(limit int) []model.Product {
	return head(Products(), limit)
}

func BestSellers() []model.Product {
	return filter(Products(), func(p *model.Product) bool { return p.IsBestSeller })
}

func NewArrivals() []model.Product {
	return filter(Products(), func(p *model.Product) bool { return p.IsNew })
}

func ByCategory(categorySlug string) []model.Product {
	return filter(Products(), func(p *model.Product) bool {
		return p.Category != nil && p.Category.Slug == categorySlug
	})
}

// Related returns up to limit products sharing the category of p, excluding p itself.
func Related(p *model.Product, limit int) []model.Product {
	if p == nil {
		return []model.Product{}
	}
	related := filter(Products(), func(o *model.Product) bool {
		return o.ID != p.ID && sameCategory(o.CategoryID, p.CategoryID)
	})
	return head(related, limit)
}

// Search matches query case-insensitively against name, SKU and short description.
func Search(query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	return filter(Products(), func(p *model.Product) bool {
		if q == "" {
			return true
		}
		short := ""
		if p.ShortDescription != nil {
			short = *p.ShortDescription
		}
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(strings.ToLower(short), q)
	})
}

func Slides() []model.SliderSlide {
	out := make([]model.SliderSlide, 0, len(slideSeeds))
	for i, s := range slideSeeds {
		out = append(out, model.SliderSlide{
			BaseModel: model.BaseModel{ID: s.id, CreatedAt: loadedAt, UpdatedAt: loadedAt},
			Image:     s.image,
			Heading:   s.heading,
			Text:      s.text,
			CTAText:   s.ctaText,
			CTALink:   s.ctaLink,
			SortOrder: i,
			IsActive:  true,
		})
	}
	return out
}

func Reviews() []model.Review {
	out := make([]model.Review, 0, len(reviewSeeds))
	for _, r := range reviewSeeds {
		created := loadedAt
		if t, err := time.Parse("2006-01-02", r.date); err == nil {
			created = t
		}
		out = append(out, model.Review{
			ID:         r.id,
			Name:       r.name,
			Rating:     r.rating,
			Text:       r.text,
			IsApproved: true,
			CreatedAt:  created,
		})
	}
	return out
}

// Variants returns the sample size rail re-keyed to productID.
func Variants(productID string) []model.ProductVariant {
	out := make([]model.ProductVariant, 0, len(variantSeeds))
	for _, v := range variantSeeds {
		size := v.size
		out = append(out, model.ProductVariant{
			BaseModel: model.BaseModel{ID: v.id, CreatedAt: loadedAt, UpdatedAt: loadedAt},
			ProductID: productID,
			Size:      &size,
			SKU:       "SKU-" + v.size,
			Stock:     v.stock,
			IsActive:  true,
		})
	}
	return out
}

func filter(ps []model.Product, keep func(*model.Product) bool) []model.Product {
	out := []model.Product{}
	for i := range ps {
		if keep(&ps[i]) {
			out = append(out, ps[i])
		}
	}
	return out
}

func head(ps []model.Product, limit int) []model.Product {
	if limit > 0 && len(ps) > limit {
		return ps[:limit]
	}
	return ps
}

func sameCategory(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
