package env

import (
	"log"
	"os"
)

// GetEnvString returns the value of key, or defaultValue when key is unset.
// A variable set to the empty string counts as set.
func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		log.Printf("[Config] %s overridden from environment", key)
		return value
	}
	return defaultValue
}
