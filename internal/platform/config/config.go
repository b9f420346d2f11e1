package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Sweep settings for the periodic zakat cycle pass.
	SweepInterval    time.Duration
	SweepUserTimeout time.Duration

	// RateCacheTTL bounds how long resolved market rates are served from cache.
	RateCacheTTL time.Duration

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "assets-zakat-management-system")
	viper.SetDefault("SWEEP_INTERVAL", "6h")
	viper.SetDefault("SWEEP_USER_TIMEOUT", "30s")
	viper.SetDefault("RATE_CACHE_TTL", "5m")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	sweepIntervalStr := viper.GetString("SWEEP_INTERVAL")
	sweepInterval, err := time.ParseDuration(sweepIntervalStr)
	if err != nil {
		sweepInterval = 6 * time.Hour
		log.Printf("Warning: Invalid value for SWEEP_INTERVAL ('%s'). Defaulting to %s.\n", sweepIntervalStr, sweepInterval)
	}
	cfg.SweepInterval = sweepInterval

	sweepTimeoutStr := viper.GetString("SWEEP_USER_TIMEOUT")
	sweepTimeout, err := time.ParseDuration(sweepTimeoutStr)
	if err != nil {
		sweepTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for SWEEP_USER_TIMEOUT ('%s'). Defaulting to %s.\n", sweepTimeoutStr, sweepTimeout)
	}
	cfg.SweepUserTimeout = sweepTimeout

	rateTTLStr := viper.GetString("RATE_CACHE_TTL")
	rateTTL, err := time.ParseDuration(rateTTLStr)
	if err != nil {
		rateTTL = 5 * time.Minute
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s.\n", rateTTLStr, rateTTL)
	}
	cfg.RateCacheTTL = rateTTL

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
