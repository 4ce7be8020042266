package qdrant

import (
	"context"
	"fmt"
	"log"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Client wraps the official Qdrant Go client for read access to a
// collection of embedded documents.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	started bool
}

// NewClient connects to Qdrant and validates connectivity via a health
// check. The SDK creates lightweight gRPC connections, so the health check
// fails fast when the service is unreachable.
func NewClient(cfg *Config) (*Client, error) {
	log.Printf("[Qdrant] Connecting to endpoint: %s:%d", cfg.Endpoint, cfg.Port)

	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	c := &Client{
		api:     api,
		cfg:     cfg,
		started: true,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	log.Println("[Qdrant] Client connected successfully")
	return c, nil
}

// healthCheck verifies the availability of the Qdrant service. Lightweight
// and fast, used during startup and readiness probes.
func (c *Client) healthCheck() error {
	if !c.started {
		return fmt.Errorf("[Qdrant] client not started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if c.api == nil {
		return fmt.Errorf("[Qdrant] client not initialized")
	}

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	log.Printf("[Qdrant] Health check passed (title=%s, version=%s, endpoint=%s)", resp.Title, resp.Version, c.cfg.Endpoint)

	return nil
}

// Api returns the underlying Qdrant SDK client for direct access to
// low-level operations.
func (c *Client) Api() *qdrant.Client {
	return c.api
}

// Close gracefully shuts down the Qdrant client. The official SDK doesn't
// maintain persistent connections, so this is currently a no-op kept for
// lifecycle symmetry.
func (c *Client) Close() error {
	if !c.started {
		return nil
	}

	log.Println("[Qdrant] closing client (no-op)")
	return nil
}
