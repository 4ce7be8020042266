package viz

import (
	"fmt"

	"github.com/diorama-viz/diorama/fields"
)

// Perspective is one way of coloring points in a scatter plot. It maps to
// one or more traces that are shown or hidden together via the dropdown.
type Perspective struct {
	// Name is the display name in the dropdown menu, usually a field path.
	Name string

	// ColorType decides which of Categories/Numbers is populated.
	ColorType fields.ColorType

	// Categories holds per-point category labels (length N) for
	// categorical perspectives. Absent fields carry "N/A".
	Categories []string

	// Numbers holds per-point values (length N) for continuous
	// perspectives; nil entries are skipped.
	Numbers []*float64

	// ColorMap optionally pins categorical values to colors. Unmapped
	// categories draw from the default palette.
	ColorMap map[string]string

	// Colorscale names the plotly colorscale for continuous perspectives.
	Colorscale string

	// ColorbarTitle overrides the colorbar label; defaults to Name.
	ColorbarTitle string

	// Cmin/Cmax pin the continuous color range; computed when nil.
	Cmin *float64
	Cmax *float64
}

// BuildPerspectives creates one Perspective per field path. overrides pins
// a path to a ColorType instead of detection; threshold is the
// categorical-vs-continuous unique-value cutoff (<= 0 uses the fields
// default).
func BuildPerspectives(documents []map[string]any, colorBy []string, overrides map[string]fields.ColorType, threshold int) []Perspective {
	perspectives := make([]Perspective, 0, len(colorBy))
	for _, path := range colorBy {
		raw := fields.Values(documents, path)

		colorType, ok := overrides[path]
		if !ok {
			colorType = fields.DetectColorType(raw, threshold)
		}

		p := Perspective{
			Name:       path,
			ColorType:  colorType,
			Colorscale: "Viridis",
		}
		if colorType == fields.Categorical {
			p.Categories = make([]string, len(raw))
			for i, v := range raw {
				if v == nil {
					p.Categories[i] = "N/A"
				} else {
					p.Categories[i] = fmt.Sprintf("%v", v)
				}
			}
		} else {
			p.Numbers = make([]*float64, len(raw))
			for i, v := range raw {
				if f, ok := fields.Number(v); ok {
					p.Numbers[i] = &f
				}
			}
		}
		perspectives = append(perspectives, p)
	}
	return perspectives
}
