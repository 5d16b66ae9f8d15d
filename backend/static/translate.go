// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

import (
	"fmt"
	"image/color"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/Yasser03/pipeplotly/core"
	"github.com/Yasser03/pipeplotly/palette"
)

// defaultBins is the histogram bin count when the configuration
// leaves it to the backend.
const defaultBins = 30

// build translates a validated configuration into a layered gg.Plot.
// Layering order is fixed: axis data transforms, aesthetic
// resolution, grouping, mark (with its stat), smoothing layer, scale
// limits, facets, labels. Later layers never override earlier ones in
// go-gg, so this order is what makes the output deterministic.
func build(s *core.State) (*gg.Plot, error) {
	switch s.Geom {
	case core.GeomBar, core.GeomBox, core.GeomViolin:
		return nil, &core.UnsupportedGeometryError{Geom: s.Geom, Backend: Name}
	}

	// Coordinate flip swaps axis roles before anything is bound.
	x, y := s.X, s.Y
	xScale, yScale := s.XScale, s.YScale
	xLim, yLim := s.XLimits, s.YLimits
	xLab, yLab := s.XLabel, s.YLabel
	if s.CoordFlip {
		x, y = y, x
		xScale, yScale = yScale, xScale
		xLim, yLim = yLim, xLim
		xLab, yLab = yLab, xLab
	}

	plot := gg.NewPlot(s.Data)

	// go-gg has no log or reversed scalers, so axis modes are
	// data transforms: the mark binds the transformed column and
	// the limits move with it.
	x, xLim = applyAxisScale(plot, x, xScale, xLim)
	y, yLim = applyAxisScale(plot, y, yScale, yLim)

	switch s.Geom {
	case core.GeomPoint:
		plot.Add(gg.LayerPoints{
			X:       x,
			Y:       y,
			Color:   resolveColor(plot, s),
			Opacity: resolveScalar(plot, s.Alpha),
			Size:    resolveScalar(plot, s.Size),
		})

	case core.GeomLine:
		plot.Add(gg.LayerLines{X: x, Y: y, Color: resolveColor(plot, s)})

	case core.GeomHistogram:
		bins := s.Bins
		if bins <= 0 {
			bins = defaultBins
		}
		if s.Color.IsColumn() {
			plot.GroupBy(s.Color.Column())
		}
		plot.Stat(binStat{x: x, bins: bins})
		layer := gg.LayerSteps{Step: gg.StepHMid}
		layer.X, layer.Y = x, "count"
		if s.Color.IsColumn() {
			layer.Color = s.Color.Column()
		} else if c, ok := fixedColor(s.Color); ok {
			layer.Color = plot.Const(c)
		}
		plot.Add(layer)

	case core.GeomDensity:
		if s.Color.IsColumn() {
			plot.GroupBy(s.Color.Column())
		}
		plot.Stat(ggstat.Density{X: x})
		layer := gg.LayerLines{X: x, Y: "probability density"}
		if s.Color.IsColumn() {
			layer.Color = s.Color.Column()
		} else if c, ok := fixedColor(s.Color); ok {
			layer.Color = plot.Const(c)
		}
		plot.Add(layer)

	case core.GeomHeatmap:
		fill := resolveColor(plot, s)
		if fill == "" && s.Fill.IsColumn() {
			fill = s.Fill.Column()
		}
		plot.Add(gg.LayerTiles{X: x, Y: y, Fill: fill})
	}

	// Optional smoothing layer over the same axes. The fit stats
	// replace their input table, so the layer gets its own data
	// environment.
	if s.Smooth != nil && (s.Geom == core.GeomPoint || s.Geom == core.GeomLine) {
		if sm := smoothTable(plot.Data(), s.Smooth, x, y); sm != nil {
			plot.Save()
			plot.SetData(sm)
			plot.Add(gg.LayerLines{X: x, Y: y})
			plot.Restore()
		}
	}

	if xLim != nil {
		plot.SetScale("x", gg.NewLinearScaler().SetMin(xLim.Min).SetMax(xLim.Max))
	}
	if yLim != nil {
		plot.SetScale("y", gg.NewLinearScaler().SetMin(yLim.Min).SetMax(yLim.Max))
	}

	// Wrap faceting takes precedence over the row/column grid.
	if s.FacetWrap != "" {
		plot.Add(gg.FacetWrap{Col: s.FacetWrap})
	} else {
		if s.FacetCols != "" {
			plot.Add(gg.FacetX{Col: s.FacetCols})
		}
		if s.FacetRows != "" {
			plot.Add(gg.FacetY{Col: s.FacetRows})
		}
	}

	if s.Title != "" {
		plot.Add(gg.Title(s.Title))
	}
	if xLab != "" {
		plot.Add(gg.AxisLabel("x", xLab))
	}
	if yLab != "" {
		plot.Add(gg.AxisLabel("y", yLab))
	}

	return plot, nil
}

// applyAxisScale applies an axis scale mode as a data transform and
// returns the column and limits the mark should bind instead.
func applyAxisScale(plot *gg.Plot, col string, mode core.ScaleKind, lim *core.Limits) (string, *core.Limits) {
	if col == "" || mode == core.ScaleLinear {
		return col, lim
	}
	switch mode {
	case core.ScaleLog:
		out := "log10 " + col
		plot.Stat(mapStat{src: col, out: out, f: math.Log10})
		if lim != nil && lim.Min > 0 {
			lim = &core.Limits{Min: math.Log10(lim.Min), Max: math.Log10(lim.Max)}
		}
		return out, lim
	case core.ScaleReverse:
		out := "reversed " + col
		plot.Stat(mapStat{src: col, out: out, f: func(v float64) float64 { return -v }})
		if lim != nil {
			lim = &core.Limits{Min: -lim.Max, Max: -lim.Min}
		}
		return out, lim
	}
	return col, lim
}

// resolveColor returns the column to bind to the color aesthetic:
// the mapped column itself, a palette-derived color column, or a
// constant column for a fixed color. "" leaves the renderer default.
func resolveColor(plot *gg.Plot, s *core.State) string {
	switch {
	case s.Color.IsFixed():
		if c, ok := fixedColor(s.Color); ok {
			return plot.Const(c)
		}
		return ""
	case s.Color.IsColumn():
		col := s.Color.Column()
		if lookup := paletteMapping(s, col); lookup != nil {
			out := "[color " + col + "]"
			plot.Stat(colorMapStat{src: col, out: out, lookup: lookup})
			return out
		}
		return col
	}
	return ""
}

// fixedColor parses a fixed color channel value. Unparsable literals
// report ok == false and leave the renderer default.
func fixedColor(ch core.Channel) (color.Color, bool) {
	if !ch.IsFixed() {
		return nil, false
	}
	return palette.ParseColor(fmt.Sprint(ch.Value()))
}

// resolveScalar returns the column for a scalar aesthetic (size,
// opacity): the mapped column, or an unscaled constant column for a
// fixed value.
func resolveScalar(plot *gg.Plot, ch core.Channel) string {
	switch {
	case ch.IsFixed():
		if f, ok := toFloat64(ch.Value()); ok {
			return plot.Const(gg.Unscaled(f))
		}
	case ch.IsColumn():
		return ch.Column()
	}
	return ""
}

// paletteMapping builds a value-to-color function for a mapped color
// column, or nil to defer to the renderer's default palette.
//
// Continuous colormaps apply as a gradient over numeric columns and
// are discretized by even sampling for categorical ones. Unknown
// palette names are not errors.
func paletteMapping(s *core.State, col string) func(interface{}) color.Color {
	pal := s.Palette
	if pal.IsZero() {
		return nil
	}
	if len(pal.Colors) > 0 {
		return discreteMapping(s.Data, col, pal.Colors)
	}
	if palette.IsContinuous(pal.Name) {
		if core.ColumnKind(s.Data, col) == core.KindNumeric {
			return gradientMapping(s.Data, col, pal.Name)
		}
		n := len(core.Distinct(s.Data, col))
		colors, _ := palette.Sample(pal.Name, n)
		return discreteMapping(s.Data, col, colors)
	}
	if colors, ok := palette.Lookup(pal.Name); ok && len(colors) > 0 {
		return discreteMapping(s.Data, col, colors)
	}
	return nil
}

// discreteMapping assigns colors to distinct column values in
// first-seen order, cycling if the palette is shorter than the value
// set.
func discreteMapping(data table.Grouping, col string, colors []string) func(interface{}) color.Color {
	if len(colors) == 0 {
		return nil
	}
	assigned := make(map[interface{}]color.Color)
	for i, v := range core.Distinct(data, col) {
		if c, ok := palette.ParseColor(colors[i%len(colors)]); ok {
			assigned[v] = c
		}
	}
	return func(v interface{}) color.Color {
		if c, ok := assigned[v]; ok {
			return c
		}
		return color.Black
	}
}

// gradientMapping maps a numeric column onto a continuous colormap
// over the column's full range.
func gradientMapping(data table.Grouping, col, name string) func(interface{}) color.Color {
	var all []float64
	for _, gid := range data.Tables() {
		var xs []float64
		slice.Convert(&xs, data.Table(gid).MustColumn(col))
		all = append(all, xs...)
	}
	min, max := stats.Bounds(all)
	return func(v interface{}) color.Color {
		f, ok := toFloat64(v)
		if !ok {
			return color.Black
		}
		t := 0.0
		if max > min {
			t = (f - min) / (max - min)
		}
		c, _ := palette.At(name, t)
		return c
	}
}

// mapStat derives a float64 column by applying f elementwise.
type mapStat struct {
	src, out string
	f        func(float64) float64
}

func (m mapStat) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(m.src))
		out := make([]float64, len(xs))
		for i, v := range xs {
			out[i] = m.f(v)
		}
		return table.NewBuilder(t).Add(m.out, out).Done()
	})
}

// colorMapStat derives a color column from a source column through a
// lookup function. Columns of color values get identity scales from
// go-gg, so the derived column renders as-is.
type colorMapStat struct {
	src, out string
	lookup   func(interface{}) color.Color
}

func (cs colorMapStat) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		src := reflect.ValueOf(t.MustColumn(cs.src))
		out := make([]color.Color, src.Len())
		for i := range out {
			out[i] = cs.lookup(src.Index(i).Interface())
		}
		return table.NewBuilder(t).Add(cs.out, out).Done()
	})
}

// binStat bins a column into equal-width intervals and replaces each
// table with bin centers and counts. Bounds are computed over all
// groups combined so grouped histograms share bins.
type binStat struct {
	x    string
	bins int
}

func (b binStat) F(g table.Grouping) table.Grouping {
	var all []float64
	for _, gid := range g.Tables() {
		var xs []float64
		slice.Convert(&xs, g.Table(gid).MustColumn(b.x))
		all = append(all, xs...)
	}
	min, max := stats.Bounds(all)
	if math.IsNaN(min) || min == max {
		max = min + 1
	}
	edges := vec.Linspace(min, max, b.bins+1)
	width := (max - min) / float64(b.bins)

	centers := make([]float64, b.bins)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}

	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(b.x))
		counts := make([]float64, b.bins)
		for _, v := range xs {
			i := int((v - min) / width)
			if i < 0 {
				i = 0
			} else if i >= b.bins {
				i = b.bins - 1
			}
			counts[i]++
		}
		nt := new(table.Builder).Add(b.x, centers).Add("count", counts)
		preserveConsts(nt, t)
		return nt.Done()
	})
}

// preserveConsts copies constant columns (facet and grouping keys)
// into a replacement table.
func preserveConsts(nt *table.Builder, t *table.Table) {
	for _, col := range t.Columns() {
		if cv, ok := t.Const(col); ok {
			nt.AddConst(col, cv)
		}
	}
}

// smoothTable fits the configured smoothing method over (x, y) and
// returns the sampled fit as a replacement table. Unknown methods
// fall back to LOESS.
func smoothTable(data table.Grouping, spec *core.SmoothSpec, x, y string) table.Grouping {
	if x == "" || y == "" {
		return nil
	}
	switch spec.Method {
	case "lm", "linear", "ols":
		ls := ggstat.LeastSquares{X: x, Y: y}
		if d, ok := intParam(spec.Params, "degree"); ok {
			ls.Degree = d
		}
		return ls.F(data)
	default:
		lo := ggstat.LOESS{X: x, Y: y}
		if v, ok := floatParam(spec.Params, "span"); ok {
			lo.Span = v
		}
		if d, ok := intParam(spec.Params, "degree"); ok {
			lo.Degree = d
		}
		return lo.F(data)
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func floatParam(params map[string]interface{}, key string) (float64, bool) {
	if v, ok := params[key]; ok {
		return toFloat64(v)
	}
	return 0, false
}

func intParam(params map[string]interface{}, key string) (int, bool) {
	if v, ok := params[key]; ok {
		if f, ok := toFloat64(v); ok {
			return int(f), true
		}
	}
	return 0, false
}
