package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Remote    bool
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("CLOCKFACE_SERVER", "http://localhost:8080"),
		Remote:    os.Getenv("CLOCKFACE_REMOTE") == "true",
		Output:    "text",
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
