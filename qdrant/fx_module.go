package qdrant

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the Qdrant source into Fx.
//
// A *Config must be available in the dependency injection container.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle closes the client on application shutdown.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
