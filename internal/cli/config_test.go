package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultServerURLTargetsAPIMount(t *testing.T) {
	cfg := DefaultConfig()

	// The server serves the API under /api beside the web pages
	assert.Equal(t, "http://localhost:8080/api", cfg.ServerURL)
}

func TestServerURLFromEnvironment(t *testing.T) {
	t.Setenv("CLEANBOOK_SERVER", "https://booking.example.com/api")

	cfg := DefaultConfig()
	assert.Equal(t, "https://booking.example.com/api", cfg.ServerURL)
}
