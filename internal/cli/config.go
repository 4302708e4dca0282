package cli

import (
	"os"

	"github.com/kwanchai/cleanbook/internal/identity"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	IdentityFile string
	Output       string
	Verbose      bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		// The server mounts the API under /api beside the web pages
		ServerURL:    getEnvOrDefault("CLEANBOOK_SERVER", "http://localhost:8080/api"),
		IdentityFile: getEnvOrDefault("CLEANBOOK_IDENTITY_FILE", identity.DefaultIdentityFile()),
		Output:       "text",
		Verbose:      false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
