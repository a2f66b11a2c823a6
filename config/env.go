package config

import (
	"os"

	"go.uber.org/zap"
)

// GetEnv returns the value of an environment variable, or "" when unset.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault returns the value of an environment variable, falling back
// to fallback with a logged warning when the variable is missing or empty.
func GetEnvOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		Logger.Warn(key+" not set, using default", zap.String("default", fallback))
		return fallback
	}
	return value
}
