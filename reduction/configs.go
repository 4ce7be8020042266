package reduction

import (
	"fmt"
	"os"
	"strconv"
)

// REDUCTION_ENDPOINT must point to the root of the reduction service (no
// /fit or /transform appended). The provider appends paths itself, so
// callers only supply the host base URL.

type Config struct {
	// Reduction service endpoint and auth
	Endpoint     string // Base URL of the reduction service
	ServiceToken string // Optional bearer token, empty for local services
	HTTPTimeoutS int    // HTTP timeout seconds (default 120, fits are slow)
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 120
	if v := os.Getenv("REDUCTION_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return &Config{
		Endpoint:     os.Getenv("REDUCTION_ENDPOINT"),
		ServiceToken: os.Getenv("REDUCTION_SERVICE_TOKEN"),
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("reduction: missing REDUCTION_ENDPOINT")
	}
	return nil
}
