// internal/domain/product/entity.go
package product

// Product represents a catalog product record
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Price    int64    `json:"price"` // Price in cents
	Category string   `json:"category,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
	Colors   []string `json:"colors,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
}

// Catalog is the static product source consumed by the cart engine.
// CategoryRecommendations maps a category to the product ids suggested for it;
// Default is the fallback list used when the cart has no categorized items.
type Catalog struct {
	Products                map[string]Product  `json:"products"`
	CategoryRecommendations map[string][]string `json:"category_recommendations"`
	Default                 []string            `json:"default"`
}

// NewCatalog builds a catalog from a product list and recommendation mappings
func NewCatalog(products []Product, categoryRecs map[string][]string, defaultRecs []string) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		Products:                byID,
		CategoryRecommendations: categoryRecs,
		Default:                 defaultRecs,
	}
}

// Get looks up a product by id
func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.Products[id]
	return p, ok
}
