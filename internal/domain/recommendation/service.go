// internal/domain/recommendation/service.go
package recommendation

import (
	"github.com/your-org/cart-engine/internal/config"
	"github.com/your-org/cart-engine/internal/domain/cart"
	"github.com/your-org/cart-engine/internal/domain/product"
)

// Service derives product suggestions from the current cart contents
type Service struct {
	catalog *product.Catalog
	config  *config.Config
}

// NewService creates a new recommendation service
func NewService(catalog *product.Catalog, cfg *config.Config) *Service {
	return &Service{
		catalog: catalog,
		config:  cfg,
	}
}

// ForCart returns a bounded, deduplicated list of suggested products for the
// given cart lines. Returns nil when recommendations are disabled.
func (s *Service) ForCart(items []cart.Item) []product.Product {
	if !s.config.Cart.ShowRecommendations {
		return nil
	}
	return Select(items, s.catalog, s.config.Cart.MaxRecommendations)
}

// Select picks up to maxDisplay catalog products for the given cart lines.
// Categories present in the cart drive the selection in first-seen order;
// a cart without categorized items falls back to the catalog's default list.
// Ids already in the cart and ids unknown to the catalog are dropped.
func Select(items []cart.Item, catalog *product.Catalog, maxDisplay int) []product.Product {
	if maxDisplay <= 0 {
		return []product.Product{}
	}

	inCart := make(map[string]bool, len(items))
	for _, item := range items {
		inCart[item.ID] = true
	}

	// Distinct categories, first-seen order
	var categories []string
	seenCategory := make(map[string]bool)
	for _, item := range items {
		if item.Category == "" || seenCategory[item.Category] {
			continue
		}
		seenCategory[item.Category] = true
		categories = append(categories, item.Category)
	}

	var candidates []string
	if len(categories) == 0 {
		candidates = catalog.Default
	} else {
		for _, category := range categories {
			candidates = append(candidates, catalog.CategoryRecommendations[category]...)
		}
	}

	results := make([]product.Product, 0, maxDisplay)
	seen := make(map[string]bool, len(candidates))
	for _, id := range candidates {
		if seen[id] || inCart[id] {
			continue
		}
		seen[id] = true

		p, ok := catalog.Get(id)
		if !ok {
			continue
		}
		results = append(results, p)
		if len(results) == maxDisplay {
			break
		}
	}

	return results
}
