package viz

import "sort"

// palette is plotly's qualitative Alphabet scheme, cycled when a
// perspective has more categories than colors.
var palette = []string{
	"#AA0DFE", "#3283FE", "#85660D", "#782AB6", "#565656", "#1C8356",
	"#16FF32", "#F7E1A0", "#E2E2E2", "#1CBE4F", "#C4451C", "#DEA0FD",
	"#FE00FA", "#325A9B", "#FEAF16", "#F8A19F", "#90AD1C", "#F6222E",
	"#1CFFCE", "#2ED9FF", "#B10DA1", "#C075A6", "#FC1CBF", "#B00068",
	"#FBE426", "#FA0087",
}

const otherColor = "#808080"

// addCategoricalTraces appends one trace per category and returns how many
// traces were added. Categories beyond maxTraces collapse into "Other";
// legend order is count-descending with "Other" last.
func addCategoricalTraces(fig *Figure, x, y, z []float64, persp Perspective, hoverText []string, visible bool, maxTraces int) int {
	values := persp.Categories

	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	if len(counts) > maxTraces {
		top := topCategories(counts, maxTraces)
		capped := make([]string, len(values))
		for i, v := range values {
			if _, ok := top[v]; ok {
				capped[i] = v
			} else {
				capped[i] = otherCategory
			}
		}
		values = capped
		counts = make(map[string]int)
		for _, v := range values {
			counts[v]++
		}
	}

	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := categories[i], categories[j]
		if (a == otherCategory) != (b == otherCategory) {
			return b == otherCategory
		}
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a < b
	})

	colorMap := persp.ColorMap
	if len(colorMap) == 0 {
		colorMap = make(map[string]string, len(categories))
		for idx, cat := range categories {
			if cat == otherCategory {
				colorMap[cat] = otherColor
			} else {
				colorMap[cat] = palette[idx%len(palette)]
			}
		}
	}

	for _, cat := range categories {
		var cx, cy, cz []float64
		var text []string
		for i, v := range values {
			if v != cat {
				continue
			}
			cx = append(cx, x[i])
			cy = append(cy, y[i])
			if z != nil {
				cz = append(cz, z[i])
			}
			text = append(text, hoverText[i])
		}

		color, ok := colorMap[cat]
		if !ok {
			color = otherColor
		}
		fig.Data = append(fig.Data, Trace{
			Type:          traceType(z),
			X:             cx,
			Y:             cy,
			Z:             cz,
			Mode:          "markers",
			Name:          cat,
			Text:          text,
			HoverTemplate: "%{text}<extra></extra>",
			Marker:        &Marker{Size: 4, Opacity: 0.6, Color: color},
			Visible:       visible,
		})
	}
	return len(categories)
}

// addContinuousTrace appends a single colorscale trace over the points
// with a numeric value; returns 0 when no point has one.
func addContinuousTrace(fig *Figure, x, y, z []float64, persp Perspective, hoverText []string, visible bool) int {
	var cx, cy, cz, colors []float64
	var text []string
	for i, v := range persp.Numbers {
		if v == nil {
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
		if z != nil {
			cz = append(cz, z[i])
		}
		colors = append(colors, *v)
		text = append(text, hoverText[i])
	}
	if len(colors) == 0 {
		return 0
	}

	cmin, cmax := persp.Cmin, persp.Cmax
	if cmin == nil {
		m := minFloat(colors)
		cmin = &m
	}
	if cmax == nil {
		m := maxFloat(colors)
		cmax = &m
	}
	title := persp.ColorbarTitle
	if title == "" {
		title = persp.Name
	}
	colorscale := persp.Colorscale
	if colorscale == "" {
		colorscale = "Viridis"
	}

	fig.Data = append(fig.Data, Trace{
		Type:          traceType(z),
		X:             cx,
		Y:             cy,
		Z:             cz,
		Mode:          "markers",
		Name:          persp.Name,
		Text:          text,
		HoverTemplate: "%{text}<extra></extra>",
		Marker: &Marker{
			Size:       4,
			Opacity:    0.7,
			Color:      colors,
			Colorscale: colorscale,
			Cmin:       cmin,
			Cmax:       cmax,
			Colorbar:   &Colorbar{Title: Title{Text: title}, X: 1.02},
			ShowScale:  true,
		},
		Visible: visible,
	})
	return 1
}

func traceType(z []float64) string {
	if z != nil {
		return "scatter3d"
	}
	return "scatter"
}

func topCategories(counts map[string]int, k int) map[string]struct{} {
	type pair struct {
		cat   string
		count int
	}
	pairs := make([]pair, 0, len(counts))
	for c, n := range counts {
		pairs = append(pairs, pair{c, n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].cat < pairs[j].cat
	})
	if len(pairs) > k {
		pairs = pairs[:k]
	}
	top := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		top[p.cat] = struct{}{}
	}
	return top
}

func minFloat(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxFloat(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
