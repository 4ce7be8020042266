package reduction

import (
	"context"
	"fmt"
	"math/rand"
)

// Client is the public entrypoint for dimensionality reduction.
//
// It hides all provider details (reduction service endpoints, HTTP, etc.)
// from the application layer.
type Client struct {
	reducer Reducer
}

// Options tunes a single Reduce call.
type Options struct {
	// Components is the target width, 2 or 3. Zero means 2.
	Components int

	// SubsampleFit caps how many vectors the projection is fitted on.
	// When the input exceeds it, Fit runs on a random sample and
	// Transform projects the full set. <= 0 fits on everything.
	SubsampleFit int

	// Seed makes the subsample reproducible. Zero uses 42.
	Seed int64
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on Reducer or inferenceProvider.
// A nil propagator disables trace propagation on service calls.
func NewClient(cfg *Config, propagator Propagator) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("reduction: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg, propagator)
	if err != nil {
		return nil, fmt.Errorf("reduction: failed to create provider: %w", err)
	}

	return &Client{reducer: p}, nil
}

// NewClientWithReducer wires a custom Reducer, used by tests and by callers
// that run the projection locally.
func NewClientWithReducer(r Reducer) *Client {
	return &Client{reducer: r}
}

// Reduce projects vectors down to opts.Components dimensions.
//
// Vectors already at the target width are returned as a copy without
// touching the service. Vectors narrower than the target are an error.
func (c *Client) Reduce(ctx context.Context, vectors [][]float64, opts Options) ([][]float64, error) {
	components := opts.Components
	if components == 0 {
		components = 2
	}
	if components != 2 && components != 3 {
		return nil, fmt.Errorf("reduction: components must be 2 or 3, got %d", components)
	}
	if len(vectors) == 0 {
		return nil, nil
	}

	dims := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dims {
			return nil, fmt.Errorf("reduction: vector %d has %d dimensions, want %d", i, len(v), dims)
		}
	}
	if dims < components {
		return nil, fmt.Errorf("reduction: vectors have %d dimensions, cannot project to %d", dims, components)
	}
	if dims == components {
		out := make([][]float64, len(vectors))
		for i, v := range vectors {
			row := make([]float64, dims)
			copy(row, v)
			out[i] = row
		}
		return out, nil
	}

	if opts.SubsampleFit > 0 && len(vectors) > opts.SubsampleFit {
		return c.subsampleReduce(ctx, vectors, components, opts)
	}
	return c.reducer.FitTransform(ctx, vectors, components)
}

// subsampleReduce fits on a random sample of the vectors and then
// transforms the full set.
func (c *Client) subsampleReduce(ctx context.Context, vectors [][]float64, components int, opts Options) ([][]float64, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = 42
	}
	rng := rand.New(rand.NewSource(seed))

	sample := make([][]float64, 0, opts.SubsampleFit)
	for _, idx := range rng.Perm(len(vectors))[:opts.SubsampleFit] {
		sample = append(sample, vectors[idx])
	}

	if err := c.reducer.Fit(ctx, sample, components); err != nil {
		return nil, fmt.Errorf("reduction: fit on %d-vector sample: %w", len(sample), err)
	}
	return c.reducer.Transform(ctx, vectors)
}

// Close allows the client to release any internal resources used by the reducer.
// Currently this is a no-op unless the reducer implements Close().
func (c *Client) Close() error {
	if closer, ok := c.reducer.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
