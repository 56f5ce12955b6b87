// Package config loads session defaults from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-provided session defaults
type Config struct {
	// Seed for the session's random source; zero means wall clock
	Seed int64

	// TraceRolls enables dice roll traces
	TraceRolls bool

	// TraceModifiers enables attribute modifier traces
	TraceModifiers bool
}

// Load reads configuration from environment variables, picking up a
// local .env file when present. Unset or malformed values fall back to
// their defaults.
func Load() *Config {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	return &Config{
		Seed:           getEnvAsInt64OrDefault("IRONCOPPER_SEED", 0),
		TraceRolls:     getEnvAsBoolOrDefault("IRONCOPPER_TRACE_ROLLS", false),
		TraceModifiers: getEnvAsBoolOrDefault("IRONCOPPER_TRACE_MODIFIERS", false),
	}
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
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
