package config

import "os"

// Get returns the environment variable value or the fallback when the
// variable is unset or empty. .env loading is handled by the binaries.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
