package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/cart-engine/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Pricing.MemberDiscountRate)
	assert.Equal(t, 0.10, cfg.Pricing.BundleDiscountRate)
	assert.Equal(t, 2, cfg.Pricing.BundleMinItems)
	assert.Equal(t, int64(5000), cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, int64(1000), cfg.Pricing.StandardShippingCost)
	assert.True(t, cfg.Pricing.PromotionsEnabled)
	assert.Equal(t, 10, cfg.Cart.MaxQuantityPerItem)
	assert.Equal(t, 7, cfg.Cart.ExpiryDays)
	assert.Equal(t, "cart:state", cfg.Cart.StorageKey)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("CART_MAX_QUANTITY_PER_ITEM", "3")
	t.Setenv("PROMOTIONS_ENABLED", "false")
	t.Setenv("CART_EXPIRY_DAYS", "1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.Pricing.TaxRate)
	assert.Equal(t, 3, cfg.Cart.MaxQuantityPerItem)
	assert.False(t, cfg.Pricing.PromotionsEnabled)
	assert.Equal(t, 24*time.Hour, cfg.CartExpiry())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantError string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:      "tax rate above 1",
			mutate:    func(c *config.Config) { c.Pricing.TaxRate = 1.5 },
			wantError: "TAX_RATE",
		},
		{
			name:      "negative member discount rate",
			mutate:    func(c *config.Config) { c.Pricing.MemberDiscountRate = -0.1 },
			wantError: "MEMBER_DISCOUNT_RATE",
		},
		{
			name:      "zero max quantity",
			mutate:    func(c *config.Config) { c.Cart.MaxQuantityPerItem = 0 },
			wantError: "CART_MAX_QUANTITY_PER_ITEM",
		},
		{
			name:      "empty storage key",
			mutate:    func(c *config.Config) { c.Cart.StorageKey = "" },
			wantError: "CART_STORAGE_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load()
			require.NoError(t, err)

			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
