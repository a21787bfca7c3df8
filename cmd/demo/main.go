// cmd/demo/main.go
package main

import (
	"context"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/your-org/cart-engine/internal/config"
	"github.com/your-org/cart-engine/internal/domain/cart"
	"github.com/your-org/cart-engine/internal/domain/checkout"
	"github.com/your-org/cart-engine/internal/domain/product"
	"github.com/your-org/cart-engine/internal/domain/recommendation"
	"github.com/your-org/cart-engine/internal/infrastructure/database/memory"
	"github.com/your-org/cart-engine/internal/infrastructure/database/redis"
	"github.com/your-org/cart-engine/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	appLogger := logger.New(cfg)

	// Connect to Redis, falling back to the in-memory store
	var kv cart.KeyValue
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, using in-memory cart storage")
		kv = memory.NewStore()
	} else {
		defer redisClient.Close()
		if err := redisClient.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}
		kv = redisClient
	}

	catalog := demoCatalog()
	store := cart.NewStore(cfg, kv, appLogger)
	recommender := recommendation.NewService(catalog, cfg)
	checkoutService := checkout.NewService(cfg, store, appLogger)

	log.Println("✅ Cart engine ready")

	// Scripted session exercising the full mutation surface
	store.AddItem(cart.Item{
		ID:              "tee-classic",
		Name:            "Classic Tee",
		UnitPrice:       2500,
		Quantity:        2,
		Category:        "apparel",
		AvailableSizes:  []string{"S", "M", "L"},
		AvailableColors: []string{"black", "white"},
	})
	store.AddItem(cart.Item{
		ID:        "mug-logo",
		Name:      "Logo Mug",
		UnitPrice: 1200,
		Category:  "accessories",
	})
	state := store.UpdateQuantity("mug-logo", 2)
	logState(appLogger, "cart after adds", state)

	state = store.SaveForLater("mug-logo")
	logState(appLogger, "after save for later", state)
	state = store.MoveToCart("mug-logo")
	logState(appLogger, "after move to cart", state)

	for _, p := range recommender.ForCart(state.Items) {
		appLogger.WithFields(logrus.Fields{"id": p.ID, "title": p.Title, "price": p.Price}).
			Info("Recommended product")
	}

	// First attempt is blocked: the tee is missing its size and color
	result, err := checkoutService.CreateSession(context.Background(), checkout.User{
		ID:    "demo-user",
		Email: "demo@example.com",
	})
	if err != nil {
		appLogger.WithError(err).Error("Checkout attempt failed")
	} else if !result.Validation.IsValid {
		for _, missing := range result.Validation.IncompleteItems {
			appLogger.WithFields(logrus.Fields{
				"item":    missing.ItemName,
				"missing": missing.MissingSelections,
			}).Warn("Checkout blocked")
		}
	}

	store.UpdateItemAttribute("tee-classic", "size", "M")
	state = store.UpdateItemAttribute("tee-classic", "color", "black")
	logState(appLogger, "ready for checkout", state)

	result, err = checkoutService.CreateSession(context.Background(), checkout.User{
		ID:    "demo-user",
		Email: "demo@example.com",
	})
	switch {
	case err != nil:
		appLogger.WithError(err).Error("Checkout attempt failed")
	case result.Session != nil:
		appLogger.WithFields(logrus.Fields{
			"session_id":   result.Session.SessionID,
			"redirect_url": result.Session.RedirectURL,
		}).Info("Checkout session created")
	}
}

func logState(l *logrus.Logger, msg string, state cart.State) {
	l.WithFields(logrus.Fields{
		"items":       len(state.Items),
		"saved_items": len(state.SavedItems),
		"item_count":  state.Totals.ItemCount,
		"subtotal":    state.Totals.Subtotal,
		"discounts":   state.Totals.TotalDiscounts,
		"tax":         state.Totals.Tax,
		"shipping":    state.Totals.Shipping,
		"total":       state.Totals.Total,
	}).Info(msg)
}

func demoCatalog() *product.Catalog {
	products := []product.Product{
		{ID: "tee-classic", Title: "Classic Tee", Price: 2500, Category: "apparel", Sizes: []string{"S", "M", "L"}, Colors: []string{"black", "white"}},
		{ID: "hoodie-zip", Title: "Zip Hoodie", Price: 5500, Category: "apparel", Sizes: []string{"M", "L"}, Colors: []string{"gray"}},
		{ID: "cap-snap", Title: "Snapback Cap", Price: 1800, Category: "apparel"},
		{ID: "mug-logo", Title: "Logo Mug", Price: 1200, Category: "accessories"},
		{ID: "sticker-pack", Title: "Sticker Pack", Price: 500, Category: "accessories"},
		{ID: "bottle-steel", Title: "Steel Bottle", Price: 2200, Category: "accessories"},
	}
	return product.NewCatalog(products, map[string][]string{
		"apparel":     {"hoodie-zip", "cap-snap", "tee-classic"},
		"accessories": {"sticker-pack", "bottle-steel", "mug-logo"},
	}, []string{"tee-classic", "mug-logo", "sticker-pack", "bottle-steel"})
}
