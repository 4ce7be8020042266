package viz

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
)

const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var pageTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
<style>html, body, #figure { margin: 0; height: 100%; }</style>
</head>
<body>
<div id="figure"></div>
<script>
var figure = {{.FigureJSON}};
Plotly.newPlot("figure", figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`))

// WriteHTML renders the figure as a standalone HTML page that loads
// plotly.js from its CDN.
func WriteHTML(w io.Writer, fig *Figure) error {
	raw, err := json.Marshal(fig)
	if err != nil {
		return fmt.Errorf("viz: encode figure: %w", err)
	}

	title := "Embedding"
	if fig.Layout.Title != nil {
		title = fig.Layout.Title.Text
	}
	return pageTemplate.Execute(w, struct {
		Title      string
		PlotlyURL  string
		FigureJSON template.JS
	}{
		Title:      title,
		PlotlyURL:  plotlyCDN,
		FigureJSON: template.JS(raw),
	})
}

// SaveHTML writes the figure page to a local file.
func SaveHTML(path string, fig *Figure) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteHTML(f, fig); err != nil {
		return err
	}
	return f.Close()
}
