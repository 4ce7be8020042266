// Package hover renders per-point tooltip HTML from JSON documents.
package hover

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultMaxLength caps the pretty-printed JSON before truncation.
const DefaultMaxLength = 500

// Text generates HTML hover text for each document: the document
// pretty-printed as JSON, truncated at maxLength characters, escaped and
// rewritten for plotly tooltips. Plotly ignores <pre> whitespace, so
// newlines become <br> and indentation becomes &nbsp; pairs.
// maxLength <= 0 uses DefaultMaxLength.
func Text(documents []map[string]any, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	out := make([]string, len(documents))
	for i, doc := range documents {
		out[i] = render(doc, maxLength)
	}
	return out
}

func render(doc map[string]any, maxLength int) string {
	// Marshal without HTML escaping; the replacer below does the escaping
	// so <, > and & stay literal in the JSON text first.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	var text string
	if err := enc.Encode(doc); err != nil {
		// Documents come from decoded JSON, so this is unreachable for
		// ordinary inputs; fall back to a plain representation.
		text = fmt.Sprintf("%v", doc)
	} else {
		text = strings.TrimRight(buf.String(), "\n")
	}
	if runes := []rune(text); len(runes) > maxLength {
		// Truncate by runes, not bytes, so a multi-byte character is
		// never cut in half.
		text = string(runes[:maxLength]) + "\n..."
	}

	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	html := replacer.Replace(text)
	html = strings.ReplaceAll(html, "\n", "<br>")
	html = strings.ReplaceAll(html, "  ", "&nbsp;&nbsp;")
	return html
}
