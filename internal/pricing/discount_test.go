package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePricePerDay(t *testing.T) {
	t.Run("Zero discount is policy invariant", func(t *testing.T) {
		firstDay := EffectivePricePerDay(dec("100"), dec("0"), MethodFirstDay)
		progressive := EffectivePricePerDay(dec("100"), dec("0"), MethodProgressive)
		assert.True(t, firstDay.Equal(dec("100")))
		assert.True(t, progressive.Equal(dec("100")))
	})

	t.Run("Both methods produce identical results", func(t *testing.T) {
		cases := []struct {
			base, discount string
		}{
			{"100", "0"},
			{"100", "10"},
			{"85.50", "12.5"},
			{"249.99", "33"},
			{"60", "100"},
		}
		for _, c := range cases {
			firstDay := EffectivePricePerDay(dec(c.base), dec(c.discount), MethodFirstDay)
			progressive := EffectivePricePerDay(dec(c.base), dec(c.discount), MethodProgressive)
			assert.True(t, firstDay.Equal(progressive), "base=%s discount=%s", c.base, c.discount)
		}
	})

	t.Run("Discount reduces the price proportionally", func(t *testing.T) {
		got := EffectivePricePerDay(dec("200"), dec("15"), MethodFirstDay)
		assert.True(t, got.Equal(dec("170")))
	})

	t.Run("Negative discount clamps to zero", func(t *testing.T) {
		got := EffectivePricePerDay(dec("100"), dec("-10"), MethodFirstDay)
		assert.True(t, got.Equal(dec("100")))
	})

	t.Run("Discount above 100 clamps to free", func(t *testing.T) {
		got := EffectivePricePerDay(dec("100"), dec("150"), MethodFirstDay)
		assert.True(t, got.IsZero())
	})
}

func TestBaseRentalTotal(t *testing.T) {
	t.Run("Quantity times days times effective price", func(t *testing.T) {
		// 90/day at 5% discount, 2 units for 7 days: 85.5 * 2 * 7 = 1197.00
		got := BaseRentalTotal(dec("90"), dec("5"), 2, 7, MethodFirstDay)
		assert.Equal(t, "1197.00", got.StringFixed(2))
	})

	t.Run("Rounds half up at the boundary", func(t *testing.T) {
		// 33.335 * 1 * 1 rounds to 33.34
		got := BaseRentalTotal(dec("33.335"), dec("0"), 1, 1, MethodFirstDay)
		assert.Equal(t, "33.34", got.StringFixed(2))
	})

	t.Run("Negative quantity or days clamps to zero", func(t *testing.T) {
		assert.True(t, BaseRentalTotal(dec("90"), dec("0"), -1, 7, MethodFirstDay).IsZero())
		assert.True(t, BaseRentalTotal(dec("90"), dec("0"), 1, -7, MethodFirstDay).IsZero())
	})
}
