// internal/domain/cart/pricing.go
package cart

import "github.com/your-org/cart-engine/internal/config"

// ComputeTotals derives the full pricing snapshot for a list of cart lines.
// Member and bundle discounts are both computed against the original subtotal
// and summed, not compounded. All money math truncates toward zero.
func ComputeTotals(items []Item, cfg config.PricingConfig) Snapshot {
	var totals Snapshot

	for _, item := range items {
		totals.ItemCount += item.Quantity
		totals.Subtotal += item.UnitPrice * int64(item.Quantity)
	}

	if cfg.PromotionsEnabled {
		totals.MemberDiscount = int64(float64(totals.Subtotal) * cfg.MemberDiscountRate)
		if totals.ItemCount >= cfg.BundleMinItems {
			totals.BundleDiscount = int64(float64(totals.Subtotal) * cfg.BundleDiscountRate)
		}
	}
	totals.TotalDiscounts = totals.MemberDiscount + totals.BundleDiscount

	// Extreme rate configurations could push discounts past the subtotal
	totals.DiscountedSubtotal = totals.Subtotal - totals.TotalDiscounts
	if totals.DiscountedSubtotal < 0 {
		totals.DiscountedSubtotal = 0
	}

	totals.Tax = int64(float64(totals.DiscountedSubtotal) * cfg.TaxRate)

	if totals.DiscountedSubtotal >= cfg.FreeShippingThreshold {
		totals.Shipping = 0
		totals.Savings = totals.TotalDiscounts + cfg.StandardShippingCost
	} else {
		totals.Shipping = cfg.StandardShippingCost
		totals.Savings = totals.TotalDiscounts
	}

	totals.Total = totals.DiscountedSubtotal + totals.Tax + totals.Shipping

	if cfg.FreeShippingThreshold > 0 {
		progress := float64(totals.DiscountedSubtotal) / float64(cfg.FreeShippingThreshold) * 100
		if progress > 100 {
			progress = 100
		}
		totals.FreeShippingProgressPct = progress
	} else {
		totals.FreeShippingProgressPct = 100
	}

	if remaining := cfg.FreeShippingThreshold - totals.DiscountedSubtotal; remaining > 0 {
		totals.AmountToFreeShipping = remaining
	}

	return totals
}
