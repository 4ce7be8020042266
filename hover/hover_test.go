package hover

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestText_EscapesAndRewrites(t *testing.T) {
	docs := []map[string]any{
		{"name": "<b>bold</b>", "tag": "a&b"},
	}
	got := Text(docs, 0)
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	html := got[0]
	if strings.Contains(html, "<b>") {
		t.Error("raw HTML must be escaped")
	}
	for _, want := range []string{"&lt;b&gt;", "&amp;", "<br>", "&nbsp;&nbsp;"} {
		if !strings.Contains(html, want) {
			t.Errorf("hover text missing %q: %s", want, html)
		}
	}
	if strings.Contains(html, "\n") {
		t.Error("newlines should be rewritten to <br>")
	}
}

func TestText_Truncates(t *testing.T) {
	doc := map[string]any{"long": strings.Repeat("x", 2000)}
	got := Text([]map[string]any{doc}, 100)[0]
	if !strings.HasSuffix(got, "<br>...") {
		t.Errorf("truncated text should end with <br>..., got tail %q", got[len(got)-20:])
	}
}

func TestText_TruncatesOnRuneBoundary(t *testing.T) {
	doc := map[string]any{"name": strings.Repeat("é", 400)}
	got := Text([]map[string]any{doc}, 21)[0]
	if !utf8.ValidString(got) {
		t.Error("truncation split a multi-byte rune")
	}
	if !strings.HasSuffix(got, "<br>...") {
		t.Errorf("truncated text should end with <br>..., got %q", got)
	}
}

func TestText_OneEntryPerDocument(t *testing.T) {
	docs := []map[string]any{{"a": 1}, {"b": 2}, {}}
	if got := Text(docs, 0); len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
}
