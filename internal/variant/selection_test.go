package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/variant"
)

func twoAxis() []model.ProductVariant {
	return []model.ProductVariant{
		mk("red-s", str("S"), str("Red"), 3, true),
		mk("blue-s", str("S"), str("Blue"), 0, true),
		mk("blue-m", str("M"), str("Blue"), 2, true),
		mk("green-l", str("L"), str("Green"), 4, false),
	}
}

func TestCombinationState(t *testing.T) {
	vs := twoAxis()

	assert.Equal(t, variant.Available, variant.CombinationState(vs, str("S"), str("Red")))
	assert.Equal(t, variant.SoldOut, variant.CombinationState(vs, str("S"), str("Blue")))
	assert.Equal(t, variant.Missing, variant.CombinationState(vs, str("M"), str("Red")))
	assert.Equal(t, variant.Missing, variant.CombinationState(vs, str("L"), nil), "inactive rows do not count")
	assert.Equal(t, variant.Available, variant.CombinationState(vs, nil, str("Blue")))

	assert.True(t, variant.Available.Selectable())
	assert.False(t, variant.SoldOut.Selectable())
	assert.False(t, variant.Missing.Selectable())
}

func TestInitialSelection(t *testing.T) {
	sel := variant.Initial(twoAxis())
	require.NotNil(t, sel.Variant)
	assert.Equal(t, "red-s", sel.Variant.ID)
	assert.Equal(t, "S", *sel.Size)
	assert.Equal(t, "Red", *sel.Color)

	empty := variant.Initial(nil)
	assert.Nil(t, empty.Variant)
	assert.Nil(t, empty.Size)
	assert.Nil(t, empty.Color)
}

func TestApply(t *testing.T) {
	vs := twoAxis()
	sel := variant.Initial(vs)

	t.Run("color with fixed size resolves to sold out variant", func(t *testing.T) {
		next := sel.Apply(vs, variant.Action{Type: variant.SelectColor, Value: "Blue"})
		require.NotNil(t, next.Variant)
		assert.Equal(t, "blue-s", next.Variant.ID)
		assert.False(t, next.Variant.Available())
	})

	t.Run("size without matching pair is a no-op", func(t *testing.T) {
		next := sel.Apply(vs, variant.Action{Type: variant.SelectSize, Value: "M"})
		assert.Equal(t, sel, next)
	})

	t.Run("size after switching color", func(t *testing.T) {
		blue := sel.Apply(vs, variant.Action{Type: variant.SelectColor, Value: "Blue"})
		next := blue.Apply(vs, variant.Action{Type: variant.SelectSize, Value: "M"})
		require.NotNil(t, next.Variant)
		assert.Equal(t, "blue-m", next.Variant.ID)
	})

	t.Run("clear", func(t *testing.T) {
		next := sel.Apply(vs, variant.Action{Type: variant.Clear})
		assert.Equal(t, variant.Selection{}, next)

		again := next.Apply(vs, variant.Action{Type: variant.SelectSize, Value: "M"})
		require.NotNil(t, again.Variant)
		assert.Equal(t, "blue-m", again.Variant.ID)
	})

	t.Run("unknown action", func(t *testing.T) {
		assert.Equal(t, sel, sel.Apply(vs, variant.Action{Type: "bogus", Value: "S"}))
	})
}

func TestOptions(t *testing.T) {
	vs := twoAxis()
	sel := variant.Initial(vs)

	sizes := sel.SizeOptions(vs)
	assert.Equal(t, []variant.Option{
		{Value: "S", State: variant.Available, Selected: true},
		{Value: "M", State: variant.Missing},
		{Value: "L", State: variant.Missing},
	}, sizes)

	colors := sel.ColorOptions(vs)
	assert.Equal(t, []variant.Option{
		{Value: "Red", State: variant.Available, Selected: true},
		{Value: "Blue", State: variant.SoldOut},
		{Value: "Green", State: variant.Missing},
	}, colors)
}

func TestComplete(t *testing.T) {
	vs := twoAxis()

	assert.True(t, variant.Selection{}.Complete(nil))
	assert.False(t, variant.Selection{}.Complete(vs))
	assert.True(t, variant.Initial(vs).Complete(vs))
}
