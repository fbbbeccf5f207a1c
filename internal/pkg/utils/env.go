package utils

import (
	"log"
	"os"
	"strconv"
)

// GetEnvString returns the variable's value, or fallback when unset.
func GetEnvString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt parses the variable as an integer. An unset or malformed
// value falls back, malformed ones with a startup log line.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("env %s: %v, using %d", key, err, fallback)
		return fallback
	}
	return parsed
}

// GetEnvFloat parses the variable as a float64 with the same fallback
// behaviour as GetEnvInt.
func GetEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("env %s: %v, using %g", key, err, fallback)
		return fallback
	}
	return parsed
}
