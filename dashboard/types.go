package dashboard

import (
	"context"

	"github.com/diorama-viz/diorama/viz"
)

// FigureRequest is one figure to assemble.
type FigureRequest struct {
	// Filter is a query expression; nil or empty keeps every document.
	Filter map[string]any

	// ColorBy lists the field paths offered in the color dropdown; empty
	// lets the builder discover them.
	ColorBy []string

	// Components is the target dimensionality, 2 or 3.
	Components int
}

// FigureBuilder assembles a figure from the loaded documents; implemented
// by the explorer at the package root.
type FigureBuilder interface {
	BuildFigure(ctx context.Context, req FigureRequest) (*viz.Figure, error)
}
