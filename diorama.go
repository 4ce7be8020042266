// Package diorama turns embedded documents into interactive scatter plots.
//
// The Explorer holds a dataset (documents plus their embedding vectors) and
// assembles plotly figures from it: filter the documents with a Mongo-style
// query expression, project the vectors down to 2D or 3D, color the points
// by any field, and hover to see the full document.
//
//	explorer, _ := diorama.New(documents, embedding)
//	fig, _ := explorer.Show(ctx, diorama.ShowOptions{
//		Filter:  map[string]any{"score": map[string]any{"$gte": 3}},
//		ColorBy: []string{"city"},
//	})
//	viz.SaveHTML("cities.html", fig)
//
// For service deployments the App in app.go wires the Explorer together
// with a document source, the reduction client and the dashboard server.
package diorama

import (
	"context"
	"fmt"
	"sync"

	"github.com/diorama-viz/diorama/dashboard"
	"github.com/diorama-viz/diorama/fields"
	"github.com/diorama-viz/diorama/hover"
	"github.com/diorama-viz/diorama/query"
	"github.com/diorama-viz/diorama/reduction"
	"github.com/diorama-viz/diorama/viz"
)

// Explorer holds one dataset and produces figures from it. Safe for
// concurrent use; SetData swaps the dataset atomically.
type Explorer struct {
	mu        sync.RWMutex
	documents []map[string]any
	embedding [][]float64

	reducer        *reduction.Client
	colorScheme    string
	methodLabel    string
	maxTraces      int
	maxColorFields int
	threshold      int
	hoverMaxLen    int
	subsampleFit   int
	height         int
}

// Option tunes an Explorer at construction time.
type Option func(*Explorer)

// WithReducer enables projection of embeddings wider than the figure
// dimensionality.
func WithReducer(c *reduction.Client) Option {
	return func(e *Explorer) { e.reducer = c }
}

// WithColorScheme selects "light" (default) or "dark".
func WithColorScheme(scheme string) Option {
	return func(e *Explorer) { e.colorScheme = scheme }
}

// WithMethodLabel names the reduction method on the figure axes.
func WithMethodLabel(label string) Option {
	return func(e *Explorer) { e.methodLabel = label }
}

// WithMaxCategoricalTraces caps categories per perspective before grouping
// the remainder as "Other".
func WithMaxCategoricalTraces(n int) Option {
	return func(e *Explorer) { e.maxTraces = n }
}

// WithMaxColorFields caps how many field paths automatic color discovery
// offers in the dropdown.
func WithMaxColorFields(n int) Option {
	return func(e *Explorer) { e.maxColorFields = n }
}

// WithCategoricalThreshold sets the unique-value cutoff between
// categorical and continuous coloring for numeric fields.
func WithCategoricalThreshold(n int) Option {
	return func(e *Explorer) { e.threshold = n }
}

// WithHoverMaxLength caps the hover text per point.
func WithHoverMaxLength(n int) Option {
	return func(e *Explorer) { e.hoverMaxLen = n }
}

// WithSubsampleFit makes reductions fit on at most n vectors and then
// transform the full set.
func WithSubsampleFit(n int) Option {
	return func(e *Explorer) { e.subsampleFit = n }
}

// WithFigureHeight fixes the figure height in pixels.
func WithFigureHeight(px int) Option {
	return func(e *Explorer) { e.height = px }
}

// New builds an Explorer over the given documents and embedding vectors.
// The two slices run in parallel: embedding[i] belongs to documents[i].
func New(documents []map[string]any, embedding [][]float64, opts ...Option) (*Explorer, error) {
	e := &Explorer{}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.SetData(documents, embedding); err != nil {
		return nil, err
	}
	return e, nil
}

// SetData replaces the dataset.
func (e *Explorer) SetData(documents []map[string]any, embedding [][]float64) error {
	if len(documents) != len(embedding) {
		return fmt.Errorf("diorama: %d documents but %d embedding vectors", len(documents), len(embedding))
	}
	if len(embedding) > 0 {
		dims := len(embedding[0])
		for i, v := range embedding {
			if len(v) != dims {
				return fmt.Errorf("diorama: embedding vector %d has %d dimensions, want %d", i, len(v), dims)
			}
		}
	}

	e.mu.Lock()
	e.documents = documents
	e.embedding = embedding
	e.mu.Unlock()
	return nil
}

// Len returns how many documents are loaded.
func (e *Explorer) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.documents)
}

// ShowOptions selects what one figure shows.
type ShowOptions struct {
	// Filter is a query expression; nil or empty keeps every document.
	Filter map[string]any

	// ColorBy lists field paths for the color dropdown; empty discovers
	// the best-covered paths automatically.
	ColorBy []string

	// ColorTypes pins paths to a color type instead of detection.
	ColorTypes map[string]fields.ColorType

	// Components is the figure dimensionality, 2 or 3. Zero means 2.
	Components int
}

// Show assembles a figure: project, filter, color, hover. Projection runs
// over the full dataset before the filter is applied, so a point keeps the
// same position no matter which filter selected it.
func (e *Explorer) Show(ctx context.Context, opts ShowOptions) (*viz.Figure, error) {
	e.mu.RLock()
	documents, embedding := e.documents, e.embedding
	e.mu.RUnlock()

	if len(opts.Filter) > 0 {
		// Fail fast on a bad filter before paying for the projection.
		if err := query.Validate(opts.Filter); err != nil {
			return nil, err
		}
	}

	components := opts.Components
	if components == 0 {
		components = 2
	}

	reduced, err := e.project(ctx, embedding, components)
	if err != nil {
		return nil, err
	}

	if len(opts.Filter) > 0 {
		subset, mask, err := query.Filter(documents, opts.Filter)
		if err != nil {
			return nil, err
		}
		kept := make([][]float64, 0, len(subset))
		for i, keep := range mask {
			if keep {
				kept = append(kept, reduced[i])
			}
		}
		documents, reduced = subset, kept
	}

	colorBy := opts.ColorBy
	if len(colorBy) == 0 {
		colorBy = fields.TopPaths(documents, e.maxColorFields)
	}

	perspectives := viz.BuildPerspectives(documents, colorBy, opts.ColorTypes, e.threshold)
	hoverText := hover.Text(documents, e.hoverMaxLen)

	return viz.CreateFigure(reduced, perspectives, hoverText, viz.Options{
		ColorScheme:          e.colorScheme,
		MaxCategoricalTraces: e.maxTraces,
		MethodLabel:          e.methodLabel,
		Height:               e.height,
	})
}

// project brings the vectors down to the figure dimensionality, going
// through the reducer only when they are wider than the target.
func (e *Explorer) project(ctx context.Context, embedding [][]float64, components int) ([][]float64, error) {
	if len(embedding) == 0 {
		return nil, nil
	}
	dims := len(embedding[0])
	if dims == components {
		return embedding, nil
	}
	if e.reducer == nil {
		return nil, fmt.Errorf("diorama: embedding has %d dimensions but no reducer is configured", dims)
	}
	return e.reducer.Reduce(ctx, embedding, reduction.Options{
		Components:   components,
		SubsampleFit: e.subsampleFit,
	})
}

// Reduce projects the loaded embedding down to components dimensions
// using the configured reducer. Embeddings already at the target width
// come back unchanged.
func (e *Explorer) Reduce(ctx context.Context, components int) ([][]float64, error) {
	e.mu.RLock()
	embedding := e.embedding
	e.mu.RUnlock()

	if components == 0 {
		components = 2
	}
	return e.project(ctx, embedding, components)
}

// Save writes the figure for opts to an HTML file.
func (e *Explorer) Save(ctx context.Context, path string, opts ShowOptions) error {
	fig, err := e.Show(ctx, opts)
	if err != nil {
		return err
	}
	return viz.SaveHTML(path, fig)
}

// BuildFigure implements the dashboard's figure contract.
func (e *Explorer) BuildFigure(ctx context.Context, req dashboard.FigureRequest) (*viz.Figure, error) {
	return e.Show(ctx, ShowOptions{
		Filter:     req.Filter,
		ColorBy:    req.ColorBy,
		Components: req.Components,
	})
}
