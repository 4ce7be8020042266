package viz

import (
	"fmt"

	"github.com/diorama-viz/diorama/fields"
)

// Figure is a plotly-shaped figure: trace data plus layout, marshaled to
// JSON and consumed by plotly.js in the browser.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotly scatter/scatter3d trace.
type Trace struct {
	Type          string    `json:"type"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Z             []float64 `json:"z,omitempty"`
	Mode          string    `json:"mode"`
	Name          string    `json:"name"`
	Text          []string  `json:"text,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	Visible       bool      `json:"visible"`
}

// Marker styles the points of a trace. Color is either a single CSS color
// (categorical) or a per-point value slice (continuous).
type Marker struct {
	Size       int       `json:"size"`
	Opacity    float64   `json:"opacity"`
	Color      any       `json:"color"`
	Colorscale string    `json:"colorscale,omitempty"`
	Cmin       *float64  `json:"cmin,omitempty"`
	Cmax       *float64  `json:"cmax,omitempty"`
	Colorbar   *Colorbar `json:"colorbar,omitempty"`
	ShowScale  bool      `json:"showscale,omitempty"`
}

// Colorbar labels the continuous color scale.
type Colorbar struct {
	Title Title   `json:"title"`
	X     float64 `json:"x"`
}

// Title is plotly's title object form.
type Title struct {
	Text string `json:"text"`
}

// Axis titles one cartesian or scene axis.
type Axis struct {
	Title Title `json:"title"`
}

// Scene holds the 3D axis configuration.
type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

// Font styles layout text.
type Font struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// UpdateMenu is the dropdown switching between perspectives.
type UpdateMenu struct {
	Buttons     []Button `json:"buttons"`
	Direction   string   `json:"direction"`
	ShowActive  bool     `json:"showactive"`
	X           float64  `json:"x"`
	XAnchor     string   `json:"xanchor"`
	Y           float64  `json:"y"`
	YAnchor     string   `json:"yanchor"`
	BgColor     string   `json:"bgcolor,omitempty"`
	Font        *Font    `json:"font,omitempty"`
	BorderColor string   `json:"bordercolor,omitempty"`
	BorderWidth int      `json:"borderwidth,omitempty"`
}

// Button is one dropdown entry; Args follows plotly's "update" method
// shape: a restyle object then a relayout object.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Layout mirrors the subset of plotly layout the figures use.
type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	Font         *Font        `json:"font,omitempty"`
	Autosize     bool         `json:"autosize"`
	Height       int          `json:"height,omitempty"`
	PaperBgcolor string       `json:"paper_bgcolor,omitempty"`
	PlotBgcolor  string       `json:"plot_bgcolor,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	Scene        *Scene       `json:"scene,omitempty"`
	UpdateMenus  []UpdateMenu `json:"updatemenus,omitempty"`
}

// Options tunes figure assembly.
type Options struct {
	// ColorScheme is "light" (default) or "dark".
	ColorScheme string

	// MaxCategoricalTraces caps categories per perspective before the
	// remainder is grouped as "Other". <= 0 uses 20.
	MaxCategoricalTraces int

	// MethodLabel names the reduction method on the axes ("UMAP", "T-SNE").
	MethodLabel string

	// Height fixes the figure height in pixels; 0 lets plotly autosize.
	Height int
}

const otherCategory = "Other"

// CreateFigure builds the interactive figure: one trace group per
// perspective and a dropdown to switch between them. embedding must be
// (N, 2) or (N, 3); hoverText must have one entry per point.
func CreateFigure(embedding [][]float64, perspectives []Perspective, hoverText []string, opts Options) (*Figure, error) {
	n := len(embedding)
	if n == 0 {
		return &Figure{Layout: baseLayout(opts, 2, "")}, nil
	}
	dims := len(embedding[0])
	if dims != 2 && dims != 3 {
		return nil, fmt.Errorf("viz: embedding must have 2 or 3 columns, got %d", dims)
	}
	for i, row := range embedding {
		if len(row) != dims {
			return nil, fmt.Errorf("viz: embedding row %d has %d columns, want %d", i, len(row), dims)
		}
	}
	if len(hoverText) != n {
		return nil, fmt.Errorf("viz: hover text length %d does not match %d points", len(hoverText), n)
	}

	maxTraces := opts.MaxCategoricalTraces
	if maxTraces <= 0 {
		maxTraces = 20
	}

	x := column(embedding, 0)
	y := column(embedding, 1)
	var z []float64
	if dims == 3 {
		z = column(embedding, 2)
	}

	fig := &Figure{}
	traceCounts := make([]int, len(perspectives))
	for i, persp := range perspectives {
		visible := i == 0
		if persp.ColorType == fields.Continuous {
			traceCounts[i] = addContinuousTrace(fig, x, y, z, persp, hoverText, visible)
		} else {
			traceCounts[i] = addCategoricalTraces(fig, x, y, z, persp, hoverText, visible, maxTraces)
		}
	}

	firstName := ""
	if len(perspectives) > 0 {
		firstName = perspectives[0].Name
	}
	layout := baseLayout(opts, dims, firstName)
	layout.UpdateMenus = dropdownMenus(perspectives, traceCounts, len(fig.Data), dims, opts)
	fig.Layout = layout
	return fig, nil
}

func column(embedding [][]float64, col int) []float64 {
	out := make([]float64, len(embedding))
	for i, row := range embedding {
		out[i] = row[col]
	}
	return out
}

func baseLayout(opts Options, dims int, colorBy string) Layout {
	label := opts.MethodLabel
	if label == "" {
		label = "UMAP"
	}

	layout := Layout{
		Autosize: true,
		Height:   opts.Height,
		Font:     &Font{Size: 12},
	}
	if colorBy != "" {
		layout.Title = &Title{Text: fmt.Sprintf("%dD Embedding (colored by %s)", dims, colorBy)}
	}
	if opts.ColorScheme == "dark" {
		layout.PaperBgcolor = "#111111"
		layout.PlotBgcolor = "#1e1e1e"
		layout.Font.Color = "#e0e0e0"
	}

	if dims == 3 {
		layout.Scene = &Scene{
			XAxis: Axis{Title: Title{Text: label + " 1"}},
			YAxis: Axis{Title: Title{Text: label + " 2"}},
			ZAxis: Axis{Title: Title{Text: label + " 3"}},
		}
	} else {
		layout.XAxis = &Axis{Title: Title{Text: label + " 1"}}
		layout.YAxis = &Axis{Title: Title{Text: label + " 2"}}
	}
	return layout
}

func dropdownMenus(perspectives []Perspective, traceCounts []int, totalTraces, dims int, opts Options) []UpdateMenu {
	var buttons []Button
	offset := 0
	for i, persp := range perspectives {
		count := traceCounts[i]
		if count == 0 {
			continue
		}
		visible := make([]bool, totalTraces)
		for j := offset; j < offset+count; j++ {
			visible[j] = true
		}
		buttons = append(buttons, Button{
			Label:  persp.Name,
			Method: "update",
			Args: []any{
				map[string]any{"visible": visible},
				map[string]any{"title": fmt.Sprintf("%dD Embedding (colored by %s)", dims, persp.Name)},
			},
		})
		offset += count
	}
	if len(buttons) == 0 {
		return nil
	}

	menu := UpdateMenu{
		Buttons:     buttons,
		Direction:   "up",
		ShowActive:  true,
		X:           0.02,
		XAnchor:     "left",
		Y:           0.02,
		YAnchor:     "bottom",
		BorderWidth: 1,
	}
	if opts.ColorScheme == "dark" {
		menu.BgColor = "#2a2a2a"
		menu.Font = &Font{Color: "#e0e0e0"}
		menu.BorderColor = "#555555"
	} else {
		menu.BgColor = "#ffffff"
		menu.Font = &Font{Color: "#333333"}
		menu.BorderColor = "#cccccc"
	}
	return []UpdateMenu{menu}
}
