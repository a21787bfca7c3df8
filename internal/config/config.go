// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the cart engine
type Config struct {
	App      AppConfig
	Pricing  PricingConfig
	Cart     CartConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// PricingConfig contains the discount, tax and shipping policy.
// Money values are integer minor units (cents); rates are fractions in [0,1].
type PricingConfig struct {
	MemberDiscountRate    float64
	BundleDiscountRate    float64
	BundleMinItems        int
	TaxRate               float64
	FreeShippingThreshold int64
	StandardShippingCost  int64
	PromotionsEnabled     bool
}

// CartConfig contains cart behavior configuration
type CartConfig struct {
	MaxQuantityPerItem  int
	ExpiryDays          int
	ShowRecommendations bool
	MaxRecommendations  int
	EnableSaveForLater  bool
	StorageKey          string
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// CheckoutConfig contains checkout-session service configuration
type CheckoutConfig struct {
	SessionURL      string
	SuccessRedirect string
	CancelRedirect  string
	RequestTimeout  time.Duration
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Cart Engine"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Pricing: PricingConfig{
			MemberDiscountRate:    getEnvAsFloat("MEMBER_DISCOUNT_RATE", 0.05),
			BundleDiscountRate:    getEnvAsFloat("BUNDLE_DISCOUNT_RATE", 0.10),
			BundleMinItems:        getEnvAsInt("BUNDLE_MIN_ITEMS", 2),
			TaxRate:               getEnvAsFloat("TAX_RATE", 0.08),
			FreeShippingThreshold: getEnvAsInt64("FREE_SHIPPING_THRESHOLD", 5000),
			StandardShippingCost:  getEnvAsInt64("STANDARD_SHIPPING_COST", 1000),
			PromotionsEnabled:     getEnvAsBool("PROMOTIONS_ENABLED", true),
		},
		Cart: CartConfig{
			MaxQuantityPerItem:  getEnvAsInt("CART_MAX_QUANTITY_PER_ITEM", 10),
			ExpiryDays:          getEnvAsInt("CART_EXPIRY_DAYS", 7),
			ShowRecommendations: getEnvAsBool("CART_SHOW_RECOMMENDATIONS", true),
			MaxRecommendations:  getEnvAsInt("CART_MAX_RECOMMENDATIONS", 4),
			EnableSaveForLater:  getEnvAsBool("CART_ENABLE_SAVE_FOR_LATER", true),
			StorageKey:          getEnv("CART_STORAGE_KEY", "cart:state"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Checkout: CheckoutConfig{
			SessionURL:      getEnv("CHECKOUT_SESSION_URL", ""),
			SuccessRedirect: getEnv("CHECKOUT_SUCCESS_REDIRECT", "/checkout/success"),
			CancelRedirect:  getEnv("CHECKOUT_CANCEL_REDIRECT", "/cart"),
			RequestTimeout:  getEnvAsDuration("CHECKOUT_REQUEST_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Pricing.MemberDiscountRate < 0 || c.Pricing.MemberDiscountRate > 1 {
		return fmt.Errorf("MEMBER_DISCOUNT_RATE must be between 0 and 1")
	}
	if c.Pricing.BundleDiscountRate < 0 || c.Pricing.BundleDiscountRate > 1 {
		return fmt.Errorf("BUNDLE_DISCOUNT_RATE must be between 0 and 1")
	}
	if c.Pricing.TaxRate < 0 || c.Pricing.TaxRate > 1 {
		return fmt.Errorf("TAX_RATE must be between 0 and 1")
	}
	if c.Pricing.FreeShippingThreshold < 0 {
		return fmt.Errorf("FREE_SHIPPING_THRESHOLD cannot be negative")
	}
	if c.Pricing.StandardShippingCost < 0 {
		return fmt.Errorf("STANDARD_SHIPPING_COST cannot be negative")
	}
	if c.Cart.MaxQuantityPerItem < 1 {
		return fmt.Errorf("CART_MAX_QUANTITY_PER_ITEM must be at least 1")
	}
	if c.Cart.ExpiryDays < 1 {
		return fmt.Errorf("CART_EXPIRY_DAYS must be at least 1")
	}
	if c.Cart.StorageKey == "" {
		return fmt.Errorf("CART_STORAGE_KEY is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// CartExpiry returns the persisted cart lifetime as a duration
func (c *Config) CartExpiry() time.Duration {
	return time.Duration(c.Cart.ExpiryDays) * 24 * time.Hour
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
