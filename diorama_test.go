package diorama

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/diorama-viz/diorama/dashboard"
	"github.com/diorama-viz/diorama/logger"
	"github.com/diorama-viz/diorama/metrics"
	"github.com/diorama-viz/diorama/query"
	"github.com/diorama-viz/diorama/reduction"
	"github.com/diorama-viz/diorama/tracer"
	"github.com/diorama-viz/diorama/viz"
)

func sampleData() ([]map[string]any, [][]float64) {
	documents := []map[string]any{
		{"city": "Sydney", "score": 4.5},
		{"city": "Melbourne", "score": 2.0},
		{"city": "Sydney", "score": nil},
		{"city": "Brisbane"},
	}
	embedding := [][]float64{
		{0.0, 0.1},
		{1.0, 1.1},
		{2.0, 2.1},
		{3.0, 3.1},
	}
	return documents, embedding
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	docs, _ := sampleData()
	_, err := New(docs, [][]float64{{1, 2}})
	assert.Error(t, err)
}

func TestShowUnfiltered(t *testing.T) {
	docs, emb := sampleData()
	e, err := New(docs, emb)
	require.NoError(t, err)

	fig, err := e.Show(context.Background(), ShowOptions{ColorBy: []string{"city"}})
	require.NoError(t, err)

	// Three cities, one trace each, every point plotted.
	require.Len(t, fig.Data, 3)
	total := 0
	for _, tr := range fig.Data {
		total += len(tr.X)
	}
	assert.Equal(t, 4, total)
}

func TestShowFilterKeepsEmbeddingAligned(t *testing.T) {
	docs, emb := sampleData()
	e, err := New(docs, emb)
	require.NoError(t, err)

	fig, err := e.Show(context.Background(), ShowOptions{
		Filter:  map[string]any{"city": "Sydney"},
		ColorBy: []string{"city"},
	})
	require.NoError(t, err)

	require.Len(t, fig.Data, 1)
	// Rows 0 and 2 are the Sydney documents.
	assert.Equal(t, []float64{0.0, 2.0}, fig.Data[0].X)
	assert.Equal(t, []float64{0.1, 2.1}, fig.Data[0].Y)
}

func TestShowNullVersusAbsent(t *testing.T) {
	docs, emb := sampleData()
	e, err := New(docs, emb)
	require.NoError(t, err)

	// Row 2 has score: null, row 3 has no score at all. $exists keeps the
	// null one.
	fig, err := e.Show(context.Background(), ShowOptions{
		Filter:  map[string]any{"score": map[string]any{"$exists": true}},
		ColorBy: []string{"city"},
	})
	require.NoError(t, err)

	total := 0
	for _, tr := range fig.Data {
		total += len(tr.X)
	}
	assert.Equal(t, 3, total)
}

func TestShowDiscoversColorFields(t *testing.T) {
	docs, emb := sampleData()
	e, err := New(docs, emb)
	require.NoError(t, err)

	fig, err := e.Show(context.Background(), ShowOptions{})
	require.NoError(t, err)

	require.Len(t, fig.Layout.UpdateMenus, 1)
	labels := []string{}
	for _, b := range fig.Layout.UpdateMenus[0].Buttons {
		labels = append(labels, b.Label)
	}
	assert.Contains(t, labels, "city")
	assert.Contains(t, labels, "score")
}

func TestShowMalformedFilter(t *testing.T) {
	docs, emb := sampleData()
	e, err := New(docs, emb)
	require.NoError(t, err)

	_, err = e.Show(context.Background(), ShowOptions{
		Filter: map[string]any{"score": map[string]any{"$like": 3}},
	})
	assert.ErrorIs(t, err, query.ErrUnknownOperator)
}

// identityReducer projects to the first n components.
type identityReducer struct{}

func (identityReducer) Fit(context.Context, [][]float64, int) error { return nil }
func (identityReducer) Transform(_ context.Context, vectors [][]float64) ([][]float64, error) {
	return nil, errors.New("not fitted")
}
func (identityReducer) FitTransform(_ context.Context, vectors [][]float64, components int) ([][]float64, error) {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		out[i] = v[:components]
	}
	return out, nil
}

func TestShowReducesWideEmbeddings(t *testing.T) {
	docs, _ := sampleData()
	wide := [][]float64{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
		{1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2},
	}

	e, err := New(docs, wide, WithReducer(reduction.NewClientWithReducer(identityReducer{})))
	require.NoError(t, err)

	fig, err := e.Show(context.Background(), ShowOptions{Components: 3, ColorBy: []string{"city"}})
	require.NoError(t, err)
	require.NotEmpty(t, fig.Data)
	assert.Equal(t, "scatter3d", fig.Data[0].Type)
}

// centeringReducer subtracts the mean of the fitted set before keeping
// the first components, so its output depends on which vectors it saw.
type centeringReducer struct {
	mean       []float64
	components int
}

func (r *centeringReducer) Fit(_ context.Context, vectors [][]float64, components int) error {
	r.components = components
	r.mean = make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for j, x := range v {
			r.mean[j] += x
		}
	}
	for j := range r.mean {
		r.mean[j] /= float64(len(vectors))
	}
	return nil
}

func (r *centeringReducer) Transform(_ context.Context, vectors [][]float64) ([][]float64, error) {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		row := make([]float64, r.components)
		for j := range row {
			row[j] = v[j] - r.mean[j]
		}
		out[i] = row
	}
	return out, nil
}

func (r *centeringReducer) FitTransform(ctx context.Context, vectors [][]float64, components int) ([][]float64, error) {
	if err := r.Fit(ctx, vectors, components); err != nil {
		return nil, err
	}
	return r.Transform(ctx, vectors)
}

func TestShowFilterKeepsProjectedPositionsStable(t *testing.T) {
	docs, _ := sampleData()
	wide := [][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{20, 21, 22, 23},
	}

	show := func(filter map[string]any) *viz.Figure {
		e, err := New(docs, wide, WithReducer(reduction.NewClientWithReducer(&centeringReducer{})))
		require.NoError(t, err)
		fig, err := e.Show(context.Background(), ShowOptions{Filter: filter, ColorBy: []string{"city"}})
		require.NoError(t, err)
		return fig
	}

	all := show(nil)
	sydney := show(map[string]any{"city": "Sydney"})

	// The projection is fitted on the full dataset either way, so the
	// Sydney points land at the same coordinates filtered or not.
	var want *viz.Trace
	for i := range all.Data {
		if all.Data[i].Name == "Sydney" {
			want = &all.Data[i]
		}
	}
	require.NotNil(t, want)
	require.Len(t, sydney.Data, 1)
	assert.Equal(t, want.X, sydney.Data[0].X)
	assert.Equal(t, want.Y, sydney.Data[0].Y)
}

func TestReduce(t *testing.T) {
	docs, _ := sampleData()
	wide := [][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	e, err := New(docs, wide, WithReducer(reduction.NewClientWithReducer(identityReducer{})))
	require.NoError(t, err)

	reduced, err := e.Reduce(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, reduced, 4)
	assert.Equal(t, []float64{0, 1}, reduced[0])
}

func TestShowWideEmbeddingWithoutReducer(t *testing.T) {
	docs, _ := sampleData()
	wide := [][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}}
	e, err := New(docs, wide)
	require.NoError(t, err)

	_, err = e.Show(context.Background(), ShowOptions{Components: 2})
	assert.Error(t, err)
}

func TestSaveWritesHTML(t *testing.T) {
	docs, emb := sampleData()
	e, err := New(docs, emb)
	require.NoError(t, err)

	path := t.TempDir() + "/figure.html"
	require.NoError(t, e.Save(context.Background(), path, ShowOptions{ColorBy: []string{"city"}}))

	page, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Plotly.newPlot")
}

// memorySource serves a fixed dataset.
type memorySource struct {
	documents []map[string]any
	embedding [][]float64
}

func (s memorySource) Load(context.Context) ([]map[string]any, [][]float64, error) {
	return s.documents, s.embedding, nil
}

func TestFXWiring(t *testing.T) {
	docs, emb := sampleData()

	var e *Explorer
	var builder dashboard.FigureBuilder
	app := fxtest.New(t,
		fx.Provide(
			func() logger.Config { return logger.Config{Level: logger.Error, ServiceName: "test"} },
			func() tracer.Config { return tracer.Config{ServiceName: "test"} },
			func(l *logger.Logger) tracer.Logger { return l },
			func() metrics.Config { return metrics.Config{Address: ":0", ServiceName: "test"} },
			func() dashboard.Config {
				cfg := dashboard.DefaultConfig()
				cfg.Address = ":0"
				return cfg
			},
			func() Source { return memorySource{documents: docs, embedding: emb} },
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		FXModule,
		dashboard.FXModule,
		fx.Populate(&e, &builder),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, e)
	assert.Equal(t, 4, e.Len())

	fig, err := builder.BuildFigure(context.Background(), dashboard.FigureRequest{
		Filter:     map[string]any{"city": "Sydney"},
		ColorBy:    []string{"city"},
		Components: 2,
	})
	require.NoError(t, err)
	require.Len(t, fig.Data, 1)
	assert.Len(t, fig.Data[0].X, 2)
}
