package cart_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/cart-engine/internal/config"
	"github.com/your-org/cart-engine/internal/domain/cart"
)

func testPricingConfig() config.PricingConfig {
	return config.PricingConfig{
		MemberDiscountRate:    0.05,
		BundleDiscountRate:    0.10,
		BundleMinItems:        2,
		TaxRate:               0.08,
		FreeShippingThreshold: 5000,
		StandardShippingCost:  1000,
		PromotionsEnabled:     true,
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []cart.Item
		cfg   config.PricingConfig
		want  cart.Snapshot
	}{
		{
			name: "single line, bundle triggered by unit count",
			items: []cart.Item{
				{ID: "a", UnitPrice: 1000, Quantity: 2},
			},
			cfg: testPricingConfig(),
			want: cart.Snapshot{
				ItemCount:               2,
				Subtotal:                2000,
				MemberDiscount:          100,
				BundleDiscount:          200, // itemCount sums quantities, so one line with qty 2 qualifies
				TotalDiscounts:          300,
				DiscountedSubtotal:      1700,
				Tax:                     136,
				Shipping:                1000,
				Total:                   2836,
				Savings:                 300,
				FreeShippingProgressPct: 34,
				AmountToFreeShipping:    3300,
			},
		},
		{
			name: "below bundle threshold",
			items: []cart.Item{
				{ID: "a", UnitPrice: 1000, Quantity: 1},
			},
			cfg: testPricingConfig(),
			want: cart.Snapshot{
				ItemCount:               1,
				Subtotal:                1000,
				MemberDiscount:          50,
				BundleDiscount:          0,
				TotalDiscounts:          50,
				DiscountedSubtotal:      950,
				Tax:                     76,
				Shipping:                1000,
				Total:                   2026,
				Savings:                 50,
				FreeShippingProgressPct: 19,
				AmountToFreeShipping:    4050,
			},
		},
		{
			name: "promotions disabled",
			items: []cart.Item{
				{ID: "a", UnitPrice: 1000, Quantity: 3},
			},
			cfg: func() config.PricingConfig {
				cfg := testPricingConfig()
				cfg.PromotionsEnabled = false
				return cfg
			}(),
			want: cart.Snapshot{
				ItemCount:               3,
				Subtotal:                3000,
				DiscountedSubtotal:      3000,
				Tax:                     240,
				Shipping:                1000,
				Total:                   4240,
				FreeShippingProgressPct: 60,
				AmountToFreeShipping:    2000,
			},
		},
		{
			name: "free shipping waived counts as savings",
			items: []cart.Item{
				{ID: "a", UnitPrice: 4000, Quantity: 2},
			},
			cfg: testPricingConfig(),
			want: cart.Snapshot{
				ItemCount:               2,
				Subtotal:                8000,
				MemberDiscount:          400,
				BundleDiscount:          800,
				TotalDiscounts:          1200,
				DiscountedSubtotal:      6800,
				Tax:                     544,
				Shipping:                0,
				Total:                   7344,
				Savings:                 2200, // discounts plus the waived standard shipping
				FreeShippingProgressPct: 100,
				AmountToFreeShipping:    0,
			},
		},
		{
			name:  "empty cart",
			items: []cart.Item{},
			cfg:   testPricingConfig(),
			want: cart.Snapshot{
				Shipping:             1000,
				Total:                1000,
				AmountToFreeShipping: 5000,
			},
		},
		{
			name: "extreme discount rates floor at zero",
			items: []cart.Item{
				{ID: "a", UnitPrice: 1000, Quantity: 2},
			},
			cfg: func() config.PricingConfig {
				cfg := testPricingConfig()
				cfg.MemberDiscountRate = 0.6
				cfg.BundleDiscountRate = 0.6
				return cfg
			}(),
			want: cart.Snapshot{
				ItemCount:            2,
				Subtotal:             2000,
				MemberDiscount:       1200,
				BundleDiscount:       1200,
				TotalDiscounts:       2400,
				DiscountedSubtotal:   0,
				Tax:                  0,
				Shipping:             1000,
				Total:                1000,
				Savings:              2400,
				AmountToFreeShipping: 5000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cart.ComputeTotals(tt.items, tt.cfg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTotals_SubtotalProperty(t *testing.T) {
	var items []cart.Item
	var wantSubtotal int64
	var wantCount int

	for i := 0; i < 20; i++ {
		item := cart.Item{
			ID:        gofakeit.UUID(),
			Name:      gofakeit.ProductName(),
			UnitPrice: int64(gofakeit.Number(1, 100000)),
			Quantity:  gofakeit.Number(1, 10),
		}
		items = append(items, item)
		wantSubtotal += item.UnitPrice * int64(item.Quantity)
		wantCount += item.Quantity
	}

	got := cart.ComputeTotals(items, testPricingConfig())
	require.Equal(t, wantSubtotal, got.Subtotal)
	require.Equal(t, wantCount, got.ItemCount)
	assert.Equal(t, got.MemberDiscount+got.BundleDiscount, got.TotalDiscounts)
	assert.Equal(t, got.DiscountedSubtotal+got.Tax+got.Shipping, got.Total)
	assert.GreaterOrEqual(t, got.DiscountedSubtotal, int64(0))
}

func TestComputeTotals_DiscountsAreAdditiveNotCompounded(t *testing.T) {
	items := []cart.Item{{ID: "a", UnitPrice: 10000, Quantity: 2}}

	got := cart.ComputeTotals(items, testPricingConfig())

	// Both discounts come off the original subtotal: 5% + 10% of 20000.
	// Compounding would make the bundle discount 10% of 19000 instead.
	assert.Equal(t, int64(1000), got.MemberDiscount)
	assert.Equal(t, int64(2000), got.BundleDiscount)
	assert.Equal(t, int64(17000), got.DiscountedSubtotal)
}
