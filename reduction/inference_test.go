package reduction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diorama-viz/diorama/logger"
	"github.com/diorama-viz/diorama/tracer"
)

func TestInferenceProviderFitTransform(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"embedding": [][]float64{{1, 2}, {3, 4}},
		})
	}))
	defer srv.Close()

	p, err := newInferenceProvider(&Config{Endpoint: srv.URL + "/", ServiceToken: "tok", HTTPTimeoutS: 5}, nil)
	if err != nil {
		t.Fatalf("newInferenceProvider: %v", err)
	}

	out, err := p.FitTransform(context.Background(), [][]float64{{1, 2, 3}, {4, 5, 6}}, 2)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	if gotPath != "/fit_transform" {
		t.Fatalf("path %q", gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("auth %q", gotAuth)
	}
	if gotBody["n_components"] != float64(2) {
		t.Fatalf("n_components %v", gotBody["n_components"])
	}
	if len(out) != 2 || out[1][1] != 4 {
		t.Fatalf("unexpected output %v", out)
	}
}

func TestInferenceProviderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p, err := newInferenceProvider(&Config{Endpoint: srv.URL, HTTPTimeoutS: 5}, nil)
	if err != nil {
		t.Fatalf("newInferenceProvider: %v", err)
	}
	if _, err := p.Transform(context.Background(), [][]float64{{1, 2}}); err == nil {
		t.Fatal("want error on 500 response")
	}
}

func TestInferenceProviderLengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"embedding": [][]float64{{1, 2}}})
	}))
	defer srv.Close()

	p, err := newInferenceProvider(&Config{Endpoint: srv.URL, HTTPTimeoutS: 5}, nil)
	if err != nil {
		t.Fatalf("newInferenceProvider: %v", err)
	}
	if _, err := p.Transform(context.Background(), [][]float64{{1, 2}, {3, 4}}); err == nil {
		t.Fatal("want error when the service returns fewer vectors")
	}
}

func TestInferenceProviderPropagatesTrace(t *testing.T) {
	var gotTraceparent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceparent = r.Header.Get("Traceparent")
		json.NewEncoder(w).Encode(map[string]any{
			"embedding": [][]float64{{1, 2}},
		})
	}))
	defer srv.Close()

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
	tr := tracer.NewClient(tracer.Config{ServiceName: "test"}, log)

	client, err := NewClient(&Config{Endpoint: srv.URL, HTTPTimeoutS: 5}, tr)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, span := tr.StartSpan(context.Background(), "reduce")
	defer span.End()

	if _, err := client.Reduce(ctx, [][]float64{{1, 2, 3, 4}}, Options{Components: 2}); err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if gotTraceparent == "" {
		t.Fatal("service call carried no traceparent header")
	}
	if want := span.SpanContext().TraceID().String(); !strings.Contains(gotTraceparent, want) {
		t.Fatalf("traceparent %q does not carry trace %s", gotTraceparent, want)
	}
}
