package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/validation"
)

type sample struct {
	Name   string   `json:"name" validate:"required"`
	Slug   string   `json:"slug" validate:"slug"`
	Price  float64  `json:"price" validate:"gte=0"`
	Images []string `json:"images" validate:"min=1"`
}

func TestValidate(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name   string
		in     sample
		fields []string
	}{
		{"valid", sample{Name: "Shirt", Slug: "classic-shirt", Images: []string{"a.jpg"}}, nil},
		{"empty slug allowed", sample{Name: "Shirt", Images: []string{"a.jpg"}}, nil},
		{"bad slug", sample{Name: "Shirt", Slug: "Bad Slug", Images: []string{"a.jpg"}}, []string{"sample.slug"}},
		{"double hyphen", sample{Name: "Shirt", Slug: "a--b", Images: []string{"a.jpg"}}, []string{"sample.slug"}},
		{"missing name and images", sample{Price: -1}, []string{"sample.name", "sample.price", "sample.images"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			if tc.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			got := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				got = append(got, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tc.fields, got)
		})
	}
}
