// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string

	// Rate limiting
	RequestsPerMinute int
	RateLimitBurst    int
}

func Load() *Config {
	requestsPerMinute, _ := strconv.Atoi(getEnv("RATE_LIMIT_RPM", "120"))
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "sportmate.db"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key"),

		RequestsPerMinute: requestsPerMinute,
		RateLimitBurst:    burst,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
