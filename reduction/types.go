package reduction

import "context"

// Propagator serializes the active trace context so calls to the
// reduction service join the caller's trace; satisfied by the tracer
// package's client.
type Propagator interface {
	GetCarrier(ctx context.Context) map[string]string
}

// Reducer contract
type Reducer interface {
	// Fit learns a projection from the given vectors down to components
	// dimensions. Subsequent Transform calls reuse that projection.
	Fit(ctx context.Context, vectors [][]float64, components int) error

	// Transform projects vectors with the most recently fitted model.
	Transform(ctx context.Context, vectors [][]float64) ([][]float64, error)

	// FitTransform fits on the vectors and returns their projection in one
	// round trip.
	FitTransform(ctx context.Context, vectors [][]float64, components int) ([][]float64, error)
}
