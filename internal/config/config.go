package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	HTTP    HTTPConfig
	Redis   RedisConfig
	HubSpot HubSpotConfig
	Flow    FlowConfig
}

// HTTPConfig holds the HTTP server configuration
type HTTPConfig struct {
	Addr string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL takes precedence over Addr when set (redis:// form)
	URL      string
	Addr     string
	Password string
	DB       int
}

// HubSpotConfig holds CRM integration configuration
type HubSpotConfig struct {
	BaseURL string
	Token   string
}

// FlowConfig holds the wizard flow policy flags.
type FlowConfig struct {
	// AutoResolveMembership fills membership with MULTI and marks the
	// membership step complete when a C Corp is chosen. When false the
	// state step's prerequisite exempts the membership step for C Corps
	// instead.
	AutoResolveMembership bool

	// ForceLLC removes the entity-type choice and resolves every draft
	// to an LLC. Previously-used alternate flow; off by default.
	ForceLLC bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Addr: getEnvOrDefault("HTTP_ADDR", ":8080"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		HubSpot: HubSpotConfig{
			BaseURL: getEnvOrDefault("HUBSPOT_API_URL", "https://api.hubapi.com"),
			Token:   os.Getenv("HUBSPOT_TOKEN"),
		},
		Flow: FlowConfig{
			AutoResolveMembership: getEnvAsBoolOrDefault("AUTO_RESOLVE_MEMBERSHIP", true),
			ForceLLC:              getEnvAsBoolOrDefault("FORCE_LLC", false),
		},
	}

	if cfg.HubSpot.Token == "" {
		return nil, fmt.Errorf("HUBSPOT_TOKEN is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
