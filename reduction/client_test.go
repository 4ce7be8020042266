package reduction

import (
	"context"
	"testing"
)

// fakeReducer records calls and projects every vector to its first
// `components` values.
type fakeReducer struct {
	fitCalls          [][]float64
	fitComponents     int
	transformCalls    [][]float64
	fitTransformCalls [][]float64
	components        int
}

func (f *fakeReducer) Fit(_ context.Context, vectors [][]float64, components int) error {
	f.fitCalls = vectors
	f.fitComponents = components
	f.components = components
	return nil
}

func (f *fakeReducer) Transform(_ context.Context, vectors [][]float64) ([][]float64, error) {
	f.transformCalls = vectors
	return truncate(vectors, f.components), nil
}

func (f *fakeReducer) FitTransform(_ context.Context, vectors [][]float64, components int) ([][]float64, error) {
	f.fitTransformCalls = vectors
	f.components = components
	return truncate(vectors, components), nil
}

func truncate(vectors [][]float64, components int) [][]float64 {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		out[i] = v[:components]
	}
	return out
}

func wideVectors(n, dims int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, dims)
		for j := range row {
			row[j] = float64(i)
		}
		out[i] = row
	}
	return out
}

func TestReducePassthrough(t *testing.T) {
	fake := &fakeReducer{}
	client := NewClientWithReducer(fake)

	vectors := [][]float64{{1, 2}, {3, 4}}
	out, err := client.Reduce(context.Background(), vectors, Options{Components: 2})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(out) != 2 || out[0][0] != 1 || out[1][1] != 4 {
		t.Fatalf("unexpected output %v", out)
	}
	if fake.fitTransformCalls != nil || fake.fitCalls != nil {
		t.Fatal("passthrough must not call the reducer")
	}

	// Passthrough returns a copy, not an alias.
	out[0][0] = 99
	if vectors[0][0] != 1 {
		t.Fatal("passthrough aliased the input")
	}
}

func TestReduceTooNarrow(t *testing.T) {
	client := NewClientWithReducer(&fakeReducer{})
	if _, err := client.Reduce(context.Background(), [][]float64{{1, 2}}, Options{Components: 3}); err == nil {
		t.Fatal("want error for 2D input with 3 components")
	}
}

func TestReduceBadComponents(t *testing.T) {
	client := NewClientWithReducer(&fakeReducer{})
	for _, components := range []int{1, 4, -2} {
		if _, err := client.Reduce(context.Background(), wideVectors(3, 8), Options{Components: components}); err == nil {
			t.Fatalf("components=%d: want error", components)
		}
	}
}

func TestReduceDefaultsToTwoComponents(t *testing.T) {
	fake := &fakeReducer{}
	client := NewClientWithReducer(fake)

	out, err := client.Reduce(context.Background(), wideVectors(4, 10), Options{})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(out) != 4 || len(out[0]) != 2 {
		t.Fatalf("want (4, 2) output, got (%d, %d)", len(out), len(out[0]))
	}
	if fake.fitTransformCalls == nil {
		t.Fatal("expected FitTransform call")
	}
}

func TestReduceRaggedInput(t *testing.T) {
	client := NewClientWithReducer(&fakeReducer{})
	_, err := client.Reduce(context.Background(), [][]float64{{1, 2, 3}, {1, 2}}, Options{Components: 2})
	if err == nil {
		t.Fatal("want error for ragged vectors")
	}
}

func TestReduceSubsampleFit(t *testing.T) {
	fake := &fakeReducer{}
	client := NewClientWithReducer(fake)

	vectors := wideVectors(100, 16)
	out, err := client.Reduce(context.Background(), vectors, Options{Components: 3, SubsampleFit: 10})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(fake.fitCalls) != 10 {
		t.Fatalf("fit sample size %d, want 10", len(fake.fitCalls))
	}
	if fake.fitComponents != 3 {
		t.Fatalf("fit components %d, want 3", fake.fitComponents)
	}
	if len(fake.transformCalls) != 100 {
		t.Fatalf("transform saw %d vectors, want all 100", len(fake.transformCalls))
	}
	if len(out) != 100 || len(out[0]) != 3 {
		t.Fatalf("want (100, 3) output, got (%d, %d)", len(out), len(out[0]))
	}
	if fake.fitTransformCalls != nil {
		t.Fatal("subsample path must not call FitTransform")
	}
}

func TestReduceSubsampleIsReproducible(t *testing.T) {
	vectors := wideVectors(50, 8)

	run := func() [][]float64 {
		fake := &fakeReducer{}
		client := NewClientWithReducer(fake)
		if _, err := client.Reduce(context.Background(), vectors, Options{Components: 2, SubsampleFit: 5}); err != nil {
			t.Fatalf("Reduce: %v", err)
		}
		return fake.fitCalls
	}

	first := run()
	second := run()
	for i := range first {
		if first[i][0] != second[i][0] {
			t.Fatalf("sample differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestReduceEmptyInput(t *testing.T) {
	client := NewClientWithReducer(&fakeReducer{})
	out, err := client.Reduce(context.Background(), nil, Options{Components: 2})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if out != nil {
		t.Fatalf("want nil output for empty input, got %v", out)
	}
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := NewClient(&Config{}, nil); err == nil {
		t.Fatal("want error for missing endpoint")
	}
}
