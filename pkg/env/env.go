// Package env reads process environment variables with a fallback.
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
