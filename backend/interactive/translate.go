// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interactive

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Yasser03/pipeplotly/core"
	"github.com/Yasser03/pipeplotly/palette"
	"github.com/Yasser03/pipeplotly/theme"
)

// Bin count when the configuration leaves it to the backend.
const defaultBins = 30

// Sample points for density curves.
const densityN = 200

// symbols are cycled over distinct values of a mapped shape column.
var symbols = []string{"circle", "rect", "triangle", "diamond", "pin", "arrow", "roundRect"}

// axes carries the axis-level configuration after the coordinate
// flip has been applied.
type axes struct {
	x, y       string
	xLab, yLab string
	xLog, yLog bool
	xRev, yRev bool
	xLim, yLim *core.Limits
}

func newAxes(s *core.State) axes {
	a := axes{
		x: s.X, y: s.Y,
		xLab: s.XLabel, yLab: s.YLabel,
		xLog: s.XScale == core.ScaleLog, yLog: s.YScale == core.ScaleLog,
		xRev: s.XScale == core.ScaleReverse, yRev: s.YScale == core.ScaleReverse,
		xLim: s.XLimits, yLim: s.YLimits,
	}
	if s.CoordFlip {
		a.x, a.y = a.y, a.x
		a.xLab, a.yLab = a.yLab, a.xLab
		a.xLog, a.yLog = a.yLog, a.xLog
		a.xRev, a.yRev = a.yRev, a.xRev
		a.xLim, a.yLim = a.yLim, a.xLim
	}
	return a
}

// build translates a validated configuration into an echarts chart.
func build(s *core.State, width, height int) (renderable, error) {
	a := newAxes(s)
	switch s.Geom {
	case core.GeomPoint:
		return buildScatter(s, a, width, height)
	case core.GeomLine:
		return buildLine(s, a, width, height)
	case core.GeomBar:
		return buildBar(s, a, width, height)
	case core.GeomHistogram:
		return buildHistogram(s, a, width, height)
	case core.GeomBox:
		return buildBox(s, a, width, height)
	case core.GeomDensity:
		return buildDensity(s, a, width, height)
	case core.GeomHeatmap:
		return buildHeatmap(s, a, width, height)
	}
	return nil, &core.UnsupportedGeometryError{Geom: s.Geom, Backend: Name}
}

// globalOpts assembles the chart-level options shared by every
// geometry: size, theme, title, axes, legend, and palette colors.
func globalOpts(s *core.State, a axes, width, height int, xType, yType string) []charts.GlobalOpts {
	xAxis := opts.XAxis{Name: a.xLab, Type: xType, Inverse: opts.Bool(a.xRev)}
	yAxis := opts.YAxis{Name: a.yLab, Type: yType, Inverse: opts.Bool(a.yRev)}
	if a.xLog && xType == "value" {
		xAxis.Type = "log"
	}
	if a.yLog && yType == "value" {
		yAxis.Type = "log"
	}
	if a.xLim != nil {
		xAxis.Min, xAxis.Max = a.xLim.Min, a.xLim.Max
	}
	if a.yLim != nil {
		yAxis.Min, yAxis.Max = a.yLim.Min, a.yLim.Max
	}

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  theme.Interactive(s.Theme),
			Width:  px(width),
			Height: px(height),
		}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(legendOpts(s)),
	}
	if s.Title != "" {
		global = append(global, charts.WithTitleOpts(opts.Title{Title: s.Title}))
	}
	if colors := seriesColors(s); len(colors) > 0 {
		global = append(global, charts.WithColorsOpts(opts.Colors(colors)))
	}
	return global
}

func px(n int) string { return strconv.Itoa(n) + "px" }

// legendOpts places the legend. The legend only appears when a
// column drives a grouping aesthetic; unknown placements fall back
// to the right edge.
func legendOpts(s *core.State) opts.Legend {
	show := s.Color.IsColumn() || s.Shape != ""
	if s.Legend == core.LegendNone || !show {
		return opts.Legend{Show: opts.Bool(false)}
	}
	l := opts.Legend{Show: opts.Bool(true)}
	switch s.Legend {
	case core.LegendLeft:
		l.Left, l.Top, l.Orient = "left", "middle", "vertical"
	case core.LegendTop:
		l.Left, l.Top, l.Orient = "center", "top", "horizontal"
	case core.LegendBottom:
		l.Left, l.Top, l.Orient = "center", "bottom", "horizontal"
	default:
		l.Left, l.Top, l.Orient = "right", "middle", "vertical"
	}
	return l
}

// seriesColors resolves the palette into the chart's color cycle.
// Explicit colors win over a named palette; continuous colormaps are
// discretized by even sampling over the number of groups; unknown
// names defer to the chart theme.
func seriesColors(s *core.State) []string {
	pal := s.Palette
	if len(pal.Colors) > 0 {
		return pal.Colors
	}
	if pal.Name != "" {
		if palette.IsContinuous(pal.Name) {
			n := 1
			if s.Color.IsColumn() {
				n = len(core.Distinct(s.Data, s.Color.Column()))
			}
			colors, _ := palette.Sample(pal.Name, n)
			return colors
		}
		if colors, ok := palette.Lookup(pal.Name); ok && len(colors) > 0 {
			return colors
		}
	}
	if s.Color.IsFixed() {
		return []string{fmt.Sprint(s.Color.Value())}
	}
	return nil
}

// groupedColor reports whether series should be split by a color
// column. Numeric color columns on scatter use a continuous visual
// map instead.
func groupedColor(s *core.State) bool {
	return s.Color.IsColumn() && core.ColumnKind(s.Data, s.Color.Column()) != core.KindNumeric
}

// seriesIndex maps each row to a series by a grouping column's
// display string, preserving first-seen order of the groups.
func seriesIndex(labels []string) (names []string, member []int) {
	idx := make(map[string]int)
	member = make([]int, len(labels))
	for i, l := range labels {
		j, ok := idx[l]
		if !ok {
			j = len(names)
			idx[l] = j
			names = append(names, l)
		}
		member[i] = j
	}
	return names, member
}

func buildScatter(s *core.State, a axes, width, height int) (renderable, error) {
	c := charts.NewScatter()
	global := globalOpts(s, a, width, height, "value", "value")

	xs := floatColumn(s.Data, a.x)
	ys := floatColumn(s.Data, a.y)

	size := 10
	if s.Size.IsFixed() {
		if f, ok := toFloat64(s.Size.Value()); ok {
			size = int(f)
		}
	}
	var sizes []int
	if s.Size.IsColumn() {
		sizes = symbolSizes(floatColumn(s.Data, s.Size.Column()))
	}
	var shapes []string
	if s.Shape != "" {
		shapes = symbolsFor(stringColumn(s.Data, s.Shape))
	}
	point := func(i int) opts.ScatterData {
		d := opts.ScatterData{Value: []interface{}{xs[i], ys[i]}, SymbolSize: size}
		if sizes != nil {
			d.SymbolSize = sizes[i]
		}
		if shapes != nil {
			d.Symbol = shapes[i]
		}
		return d
	}

	var seriesOpts []charts.SeriesOpts
	if s.Alpha.IsFixed() {
		if f, ok := toFloat64(s.Alpha.Value()); ok {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Opacity: float32(f)}))
		}
	}

	switch {
	case groupedColor(s):
		names, member := seriesIndex(stringColumn(s.Data, s.Color.Column()))
		series := make([][]opts.ScatterData, len(names))
		for i := range xs {
			series[member[i]] = append(series[member[i]], point(i))
		}
		c.SetGlobalOptions(global...)
		for j, name := range names {
			c.AddSeries(name, series[j], seriesOpts...)
		}

	case s.Color.IsColumn():
		// Numeric color column: encode it as a third dimension
		// under a continuous visual map.
		cs := floatColumn(s.Data, s.Color.Column())
		min, max := cs[0], cs[0]
		data := make([]opts.ScatterData, len(xs))
		for i := range xs {
			if cs[i] < min {
				min = cs[i]
			}
			if cs[i] > max {
				max = cs[i]
			}
			d := point(i)
			d.Value = []interface{}{xs[i], ys[i], cs[i]}
			data[i] = d
		}
		global = append(global, charts.WithVisualMapOpts(visualMap(s, min, max)))
		c.SetGlobalOptions(global...)
		c.AddSeries(a.y, data, seriesOpts...)

	default:
		c.SetGlobalOptions(global...)
		data := make([]opts.ScatterData, len(xs))
		for i := range xs {
			data[i] = point(i)
		}
		c.AddSeries(a.y, data, seriesOpts...)
	}
	return c, nil
}

func buildLine(s *core.State, a axes, width, height int) (renderable, error) {
	c := charts.NewLine()
	c.SetGlobalOptions(globalOpts(s, a, width, height, "value", "value")...)

	xs := floatColumn(s.Data, a.x)
	ys := floatColumn(s.Data, a.y)

	addSeries := func(name string, idx []int) {
		sort.Slice(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })
		data := make([]opts.LineData, len(idx))
		for k, i := range idx {
			data[k] = opts.LineData{Value: []interface{}{xs[i], ys[i]}}
		}
		c.AddSeries(name, data)
	}

	if groupedColor(s) {
		names, member := seriesIndex(stringColumn(s.Data, s.Color.Column()))
		groups := make([][]int, len(names))
		for i, j := range member {
			groups[j] = append(groups[j], i)
		}
		for j, name := range names {
			addSeries(name, groups[j])
		}
	} else {
		idx := make([]int, len(xs))
		for i := range idx {
			idx[i] = i
		}
		addSeries(a.y, idx)
	}
	return c, nil
}

func buildBar(s *core.State, a axes, width, height int) (renderable, error) {
	c := charts.NewBar()
	c.SetGlobalOptions(globalOpts(s, a, width, height, "category", "value")...)

	cats := distinctStrings(s.Data, a.x)
	pos := make(map[string]int, len(cats))
	for i, cat := range cats {
		pos[cat] = i
	}
	labels := stringColumn(s.Data, a.x)

	var ys []float64
	if a.y != "" {
		ys = floatColumn(s.Data, a.y)
	}
	// Sum the value column per category, or count rows when no
	// value column is mapped.
	accumulate := func(idx []int) []opts.BarData {
		vals := make([]float64, len(cats))
		for _, i := range idx {
			if ys != nil {
				vals[pos[labels[i]]] += ys[i]
			} else {
				vals[pos[labels[i]]]++
			}
		}
		data := make([]opts.BarData, len(vals))
		for i, v := range vals {
			data[i] = opts.BarData{Value: v}
		}
		return data
	}

	c.SetXAxis(cats)
	if groupedColor(s) {
		names, member := seriesIndex(stringColumn(s.Data, s.Color.Column()))
		groups := make([][]int, len(names))
		for i, j := range member {
			groups[j] = append(groups[j], i)
		}
		for j, name := range names {
			c.AddSeries(name, accumulate(groups[j]))
		}
	} else {
		idx := make([]int, len(labels))
		for i := range idx {
			idx[i] = i
		}
		name := a.y
		if name == "" {
			name = "count"
		}
		c.AddSeries(name, accumulate(idx))
	}
	return c, nil
}

func buildHistogram(s *core.State, a axes, width, height int) (renderable, error) {
	c := charts.NewBar()
	c.SetGlobalOptions(globalOpts(s, a, width, height, "category", "value")...)

	bins := s.Bins
	if bins <= 0 {
		bins = defaultBins
	}
	xs := floatColumn(s.Data, a.x)
	centers, min, binWidth := binGrid(xs, bins)

	cats := make([]string, len(centers))
	for i, v := range centers {
		cats[i] = strconv.FormatFloat(v, 'g', 4, 64)
	}
	c.SetXAxis(cats)

	toBars := func(counts []float64) []opts.BarData {
		data := make([]opts.BarData, len(counts))
		for i, v := range counts {
			data[i] = opts.BarData{Value: v}
		}
		return data
	}

	if groupedColor(s) {
		names, member := seriesIndex(stringColumn(s.Data, s.Color.Column()))
		groups := make([][]float64, len(names))
		for i, j := range member {
			groups[j] = append(groups[j], xs[i])
		}
		for j, name := range names {
			c.AddSeries(name, toBars(countBins(groups[j], min, binWidth, bins)))
		}
	} else {
		c.AddSeries("count", toBars(countBins(xs, min, binWidth, bins)))
	}
	return c, nil
}

func buildBox(s *core.State, a axes, width, height int) (renderable, error) {
	c := charts.NewBoxPlot()
	c.SetGlobalOptions(globalOpts(s, a, width, height, "category", "value")...)

	// With both axes mapped the x column names the groups; with one
	// mapped it is a single distribution.
	valueCol, groupCol := a.y, a.x
	if valueCol == "" {
		valueCol, groupCol = a.x, ""
	}
	vals := floatColumn(s.Data, valueCol)

	box := func(xs []float64) opts.BoxPlotData {
		q := quantiles(xs, 0, 0.25, 0.5, 0.75, 1)
		return opts.BoxPlotData{Value: []interface{}{q[0], q[1], q[2], q[3], q[4]}}
	}

	if groupCol != "" {
		names, member := seriesIndex(stringColumn(s.Data, groupCol))
		groups := make([][]float64, len(names))
		for i, j := range member {
			groups[j] = append(groups[j], vals[i])
		}
		data := make([]opts.BoxPlotData, len(names))
		for j := range names {
			data[j] = box(groups[j])
		}
		c.SetXAxis(names)
		c.AddSeries(valueCol, data)
	} else {
		c.SetXAxis([]string{valueCol})
		c.AddSeries(valueCol, []opts.BoxPlotData{box(vals)})
	}
	return c, nil
}

func buildDensity(s *core.State, a axes, width, height int) (renderable, error) {
	c := charts.NewLine()
	global := globalOpts(s, a, width, height, "value", "value")
	global = append(global, charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}))
	c.SetGlobalOptions(global...)

	xs := floatColumn(s.Data, a.x)

	addCurve := func(name string, sample []float64) {
		ss, ds := densityCurve(sample, densityN)
		data := make([]opts.LineData, len(ss))
		for i := range ss {
			data[i] = opts.LineData{Value: []interface{}{ss[i], ds[i]}}
		}
		c.AddSeries(name, data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}

	if groupedColor(s) {
		names, member := seriesIndex(stringColumn(s.Data, s.Color.Column()))
		groups := make([][]float64, len(names))
		for i, j := range member {
			groups[j] = append(groups[j], xs[i])
		}
		for j, name := range names {
			addCurve(name, groups[j])
		}
	} else {
		addCurve("density", xs)
	}
	return c, nil
}

func buildHeatmap(s *core.State, a axes, width, height int) (renderable, error) {
	c := charts.NewHeatMap()

	valueCol := ""
	switch {
	case s.Color.IsColumn():
		valueCol = s.Color.Column()
	case s.Fill.IsColumn():
		valueCol = s.Fill.Column()
	}
	if valueCol == "" {
		return nil, &core.MissingRequiredFieldError{Field: "color"}
	}

	xCats := distinctStrings(s.Data, a.x)
	yCats := distinctStrings(s.Data, a.y)
	xPos := make(map[string]int, len(xCats))
	for i, v := range xCats {
		xPos[v] = i
	}
	yPos := make(map[string]int, len(yCats))
	for i, v := range yCats {
		yPos[v] = i
	}

	xLabels := stringColumn(s.Data, a.x)
	yLabels := stringColumn(s.Data, a.y)
	vals := floatColumn(s.Data, valueCol)

	min, max := vals[0], vals[0]
	data := make([]opts.HeatMapData, len(vals))
	for i, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		data[i] = opts.HeatMapData{Value: [3]interface{}{xPos[xLabels[i]], yPos[yLabels[i]], v}}
	}

	global := globalOpts(s, a, width, height, "category", "category")
	global = append(global, charts.WithVisualMapOpts(visualMap(s, min, max)))
	c.SetGlobalOptions(global...)
	c.SetXAxis(xCats)

	// SetXAxis covers x; y categories ride on the axis options.
	c.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{
		Name: a.yLab,
		Type: "category",
		Data: yCats,
	}))

	c.AddSeries(valueCol, data)
	return c, nil
}

// visualMap builds the continuous color ramp for value-encoded
// charts, honoring a continuous palette when one is configured.
func visualMap(s *core.State, min, max float64) opts.VisualMap {
	vm := opts.VisualMap{
		Calculable: opts.Bool(true),
		Min:        float32(min),
		Max:        float32(max),
	}
	if s.Palette.Name != "" && palette.IsContinuous(s.Palette.Name) {
		if stops, ok := palette.Sample(s.Palette.Name, 10); ok {
			vm.InRange = &opts.VisualMapInRange{Color: stops}
		}
	}
	return vm
}

// symbolSizes scales a size column into per-point symbol sizes in
// pixels. A constant column gets the middle of the range.
func symbolSizes(vals []float64) []int {
	const minPx, maxPx = 5, 25
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		if max == min {
			out[i] = (minPx + maxPx) / 2
			continue
		}
		out[i] = minPx + int((v-min)/(max-min)*(maxPx-minPx)+0.5)
	}
	return out
}

// symbolsFor assigns a plot symbol to each row by its shape label,
// cycling through the symbol set in first-seen label order.
func symbolsFor(labels []string) []string {
	_, member := seriesIndex(labels)
	out := make([]string, len(labels))
	for i, j := range member {
		out[i] = symbols[j%len(symbols)]
	}
	return out
}

func toFloat64(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
