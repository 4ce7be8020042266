// Package viz assembles interactive scatter figures from reduced
// embeddings and coloring perspectives.
//
// The Go side is a figure producer: CreateFigure builds a plotly-shaped
// JSON document (traces + layout + dropdown updatemenus) and WriteHTML
// wraps it in a standalone page that loads plotly.js from a CDN. No
// rendering happens in-process.
//
// A Perspective is one way of coloring the points. Categorical
// perspectives expand into one trace per category so the legend can
// toggle them; continuous perspectives are a single trace with a
// colorscale and colorbar. A dropdown menu switches which perspective's
// traces are visible.
package viz
