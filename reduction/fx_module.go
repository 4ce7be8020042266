package reduction

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the reduction system into Fx.
//
// It provides:
//   - Config                 (NewConfig)
//   - *Client                (newClientFromParams)
//   - Lifecycle hook         (RegisterReductionLifecycle)
//
// A Propagator in the container is picked up automatically; without one
// the service calls simply carry no trace context.
var FXModule = fx.Module(
	"reduction",

	fx.Provide(
		NewConfig,           // -> *Config
		newClientFromParams, // -> *Client
	),

	fx.Invoke(RegisterReductionLifecycle),
)

type clientParams struct {
	fx.In

	Cfg        *Config
	Propagator Propagator `optional:"true"`
}

func newClientFromParams(p clientParams) (*Client, error) {
	return NewClient(p.Cfg, p.Propagator)
}

// RegisterReductionLifecycle ensures that the Client (and its reducer)
// are properly cleaned up on application shutdown.
func RegisterReductionLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
