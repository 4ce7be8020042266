package qdrant

import (
	"reflect"
	"testing"

	qdrant "github.com/qdrant/go-client/qdrant"
)

func TestPayloadToDocument(t *testing.T) {
	payload := qdrant.NewValueMap(map[string]any{
		"city":   "Sydney",
		"score":  4.5,
		"count":  int64(3),
		"active": true,
		"tags":   []any{"a", "b"},
		"address": map[string]any{
			"zip": "2000",
		},
		"deleted_at": nil,
	})

	doc := payloadToDocument(payload)

	want := map[string]any{
		"city":   "Sydney",
		"score":  4.5,
		"count":  int64(3),
		"active": true,
		"tags":   []any{"a", "b"},
		"address": map[string]any{
			"zip": "2000",
		},
		"deleted_at": nil,
	}
	if !reflect.DeepEqual(doc, want) {
		t.Fatalf("payloadToDocument = %#v, want %#v", doc, want)
	}

	// Null payload values survive as nil map entries, distinct from keys
	// that were never set.
	if v, ok := doc["deleted_at"]; !ok || v != nil {
		t.Fatalf("deleted_at: got (%v, %v), want (nil, present)", v, ok)
	}
}

func TestPayloadToDocumentEmpty(t *testing.T) {
	doc := payloadToDocument(nil)
	if doc == nil || len(doc) != 0 {
		t.Fatalf("want empty non-nil document, got %#v", doc)
	}
}

func TestExtractValueNil(t *testing.T) {
	if v := extractValue(nil); v != nil {
		t.Fatalf("extractValue(nil) = %v", v)
	}
}

func TestToFloat64s(t *testing.T) {
	got := toFloat64s([]float32{1.5, -2})
	if len(got) != 2 || got[0] != 1.5 || got[1] != -2 {
		t.Fatalf("toFloat64s = %v", got)
	}
}
