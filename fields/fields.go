// Package fields discovers dot-notation field paths in JSON-like documents
// and classifies their values for coloring. It backs the automatic
// "color by" selection of the visualization layer.
package fields

import (
	"sort"

	"github.com/diorama-viz/diorama/query"
)

// ColorType says how a field should drive point colors.
type ColorType string

const (
	// Categorical fields map each distinct value to a discrete color.
	Categorical ColorType = "categorical"
	// Continuous fields map numeric values onto a colorscale.
	Continuous ColorType = "continuous"
)

// DefaultCategoricalThreshold is the unique-value count below which a
// numeric field is still treated as categorical.
const DefaultCategoricalThreshold = 20

// Paths returns every unique leaf field path across the documents, sorted
// alphabetically. Nested maps are recursed into; sequences and other
// non-map values are leaves.
func Paths(documents []map[string]any) []string {
	seen := make(map[string]struct{})
	for _, doc := range documents {
		walk(doc, "", seen)
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func walk(obj map[string]any, prefix string, seen map[string]struct{}) {
	for key, value := range obj {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok && len(nested) > 0 {
			walk(nested, path, seen)
		} else {
			seen[path] = struct{}{}
		}
	}
}

// Values extracts the value at path from each document. Absent fields come
// back as nil; callers that must distinguish absent from stored nil should
// use query.Resolve directly.
func Values(documents []map[string]any, path string) []any {
	out := make([]any, len(documents))
	for i, doc := range documents {
		if v, present := query.Resolve(doc, path); present {
			out[i] = v
		}
	}
	return out
}

// Coverage returns the fraction of documents in which the path is present.
func Coverage(documents []map[string]any, path string) float64 {
	if len(documents) == 0 {
		return 0
	}
	count := 0
	for _, doc := range documents {
		if _, present := query.Resolve(doc, path); present {
			count++
		}
	}
	return float64(count) / float64(len(documents))
}

// DetectColorType decides whether a value slice should color points
// categorically or continuously.
//
// All-boolean and all-string fields are categorical. All-numeric fields
// are categorical when they have fewer than threshold unique values and
// continuous otherwise. Mixed-type or empty fields fall back to
// categorical. Nils are ignored. threshold <= 0 uses
// DefaultCategoricalThreshold.
func DetectColorType(values []any, threshold int) ColorType {
	if threshold <= 0 {
		threshold = DefaultCategoricalThreshold
	}

	allBool, allString, allNumeric := true, true, true
	unique := make(map[float64]struct{})
	seen := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		seen++
		if _, ok := v.(bool); !ok {
			allBool = false
		}
		if _, ok := v.(string); !ok {
			allString = false
		}
		if f, ok := Number(v); ok {
			unique[f] = struct{}{}
		} else {
			allNumeric = false
		}
	}

	switch {
	case seen == 0:
		return Categorical
	case allBool, allString:
		return Categorical
	case allNumeric:
		if len(unique) < threshold {
			return Categorical
		}
		return Continuous
	default:
		return Categorical
	}
}

// TopPaths returns up to maxPaths field paths ordered by coverage
// descending, then name ascending. maxPaths <= 0 defaults to 15.
func TopPaths(documents []map[string]any, maxPaths int) []string {
	if maxPaths <= 0 {
		maxPaths = 15
	}
	paths := Paths(documents)
	coverage := make(map[string]float64, len(paths))
	for _, p := range paths {
		coverage[p] = Coverage(documents, p)
	}
	sort.SliceStable(paths, func(i, j int) bool {
		if coverage[paths[i]] != coverage[paths[j]] {
			return coverage[paths[i]] > coverage[paths[j]]
		}
		return paths[i] < paths[j]
	})
	if len(paths) > maxPaths {
		paths = paths[:maxPaths]
	}
	return paths
}

// Number coerces numeric values to float64, deliberately excluding bool.
// Shared with the visualization layer for continuous coloring.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
