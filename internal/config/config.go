package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// DefaultJWTSecret is the development signing secret. Anyone can mint tokens
// with it, so it is refused once a real database is configured.
const DefaultJWTSecret = "changeme"

type Config struct {
	HTTPAddr           string
	GRPCAddr           string
	PostgresDSN        string
	RedisAddr          string
	JWTSecret          string
	JWTIssuer          string
	IdentitySvcAddr    string
	CatalogBaseURL     string
	CommissionRate     decimal.Decimal
	AutoOffer          bool
	SweepInterval      time.Duration
	TelegramToken      string
	IntegrationKeyHash string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	rate, err := decimal.NewFromString(getenv("DELIVERY_COMMISSION_RATE", "0.20"))
	if err != nil {
		return Config{}, fmt.Errorf("DELIVERY_COMMISSION_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return Config{}, fmt.Errorf("DELIVERY_COMMISSION_RATE must be within [0,1], got %s", rate)
	}
	autoOffer, err := strconv.ParseBool(getenv("DISPATCH_AUTO_OFFER", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("DISPATCH_AUTO_OFFER: %w", err)
	}
	sweep, err := time.ParseDuration(getenv("DISPATCH_SWEEP_INTERVAL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("DISPATCH_SWEEP_INTERVAL: %w", err)
	}

	cfg := Config{
		HTTPAddr:           getenv("DELIVERY_SERVICE_ADDR", ":8083"),
		GRPCAddr:           getenv("DELIVERY_GRPC_ADDR", ":9083"),
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		JWTSecret:          getenv("JWT_SECRET", DefaultJWTSecret),
		JWTIssuer:          os.Getenv("JWT_ISSUER"),
		IdentitySvcAddr:    os.Getenv("IDENTITY_SERVICE_ADDR"),
		CatalogBaseURL:     getenv("CATALOG_SERVICE_BASEURL", "http://catalog:8081"),
		CommissionRate:     rate,
		AutoOffer:          autoOffer,
		SweepInterval:      sweep,
		TelegramToken:      os.Getenv("TELEGRAM_RIDER_BOT_TOKEN"),
		IntegrationKeyHash: os.Getenv("INTEGRATION_KEY_HASH"),
	}
	if cfg.JWTSecret == DefaultJWTSecret {
		if cfg.PostgresDSN != "" {
			return Config{}, fmt.Errorf("JWT_SECRET must be set when POSTGRES_DSN is configured")
		}
		log.Printf("[config] WARNING: JWT_SECRET not set, using the development secret; tokens can be forged")
	}
	log.Printf("[config] DELIVERY_SERVICE_ADDR=%s", cfg.HTTPAddr)
	log.Printf("[config] DELIVERY_GRPC_ADDR=%s", cfg.GRPCAddr)
	log.Printf("[config] CATALOG_SERVICE_BASEURL=%s", cfg.CatalogBaseURL)
	log.Printf("[config] DELIVERY_COMMISSION_RATE=%s auto_offer=%t sweep=%s", cfg.CommissionRate, cfg.AutoOffer, cfg.SweepInterval)
	if cfg.PostgresDSN == "" {
		log.Printf("[config] POSTGRES_DSN not set, using in-memory store")
	}
	return cfg, nil
}
