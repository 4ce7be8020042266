package reduction

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type inferenceProvider struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	propagator   Propagator
}

func newInferenceProvider(cfg *Config, propagator Propagator) (*inferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing REDUCTION_ENDPOINT")
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.Endpoint, "/")

	return &inferenceProvider{
		baseURL:      base,
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
		propagator:   propagator,
	}, nil
}

// Fit posts the vectors to the service's /fit endpoint. The fitted model
// stays server-side and is reused by Transform.
func (p *inferenceProvider) Fit(ctx context.Context, vectors [][]float64, components int) error {
	if len(vectors) == 0 {
		return fmt.Errorf("inference: no vectors provided")
	}

	reqBody := map[string]any{
		"vectors":      vectors,
		"n_components": components,
	}
	return p.postJSON(ctx, p.baseURL+"/fit", reqBody, nil)
}

// Transform projects vectors with the model from the last Fit.
func (p *inferenceProvider) Transform(ctx context.Context, vectors [][]float64) ([][]float64, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("inference: no vectors provided")
	}

	reqBody := map[string]any{
		"vectors": vectors,
	}
	var parsed struct {
		Embedding [][]float64 `json:"embedding"`
	}
	if err := p.postJSON(ctx, p.baseURL+"/transform", reqBody, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Embedding) != len(vectors) {
		return nil, fmt.Errorf("inference: got %d projected vectors for %d inputs", len(parsed.Embedding), len(vectors))
	}
	return parsed.Embedding, nil
}

// FitTransform fits and projects in a single request.
func (p *inferenceProvider) FitTransform(ctx context.Context, vectors [][]float64, components int) ([][]float64, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("inference: no vectors provided")
	}

	reqBody := map[string]any{
		"vectors":      vectors,
		"n_components": components,
	}
	var parsed struct {
		Embedding [][]float64 `json:"embedding"`
	}
	if err := p.postJSON(ctx, p.baseURL+"/fit_transform", reqBody, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Embedding) != len(vectors) {
		return nil, fmt.Errorf("inference: got %d projected vectors for %d inputs", len(parsed.Embedding), len(vectors))
	}
	return parsed.Embedding, nil
}
