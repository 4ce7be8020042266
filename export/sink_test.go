package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diorama-viz/diorama/fields"
	"github.com/diorama-viz/diorama/viz"
)

func testFigure(t *testing.T) *viz.Figure {
	t.Helper()
	fig, err := viz.CreateFigure(
		[][]float64{{0, 0}, {1, 1}},
		[]viz.Perspective{{Name: "c", ColorType: fields.Categorical, Categories: []string{"x", "y"}}},
		[]string{"a", "b"},
		viz.Options{},
	)
	require.NoError(t, err)
	return fig
}

func TestFileSinkExport(t *testing.T) {
	dir := t.TempDir()
	sink := FileSink{Dir: dir}

	path, err := sink.Export(context.Background(), "cities", testFigure(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cities.html"), path)

	page, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Plotly.newPlot")
}

func TestHTMLName(t *testing.T) {
	assert.Equal(t, "figure.html", htmlName(""))
	assert.Equal(t, "cities.html", htmlName("cities"))
	assert.Equal(t, "cities.html", htmlName("cities.html"))
}
