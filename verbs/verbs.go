// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package verbs provides pipe-style constructors for every plot
// verb, for use with pipeplotly.Pipe:
//
//	p := pipeplotly.Pipe(data,
//		verbs.PlotPoints("carat", "price"),
//		verbs.AddColor(pipeplotly.Col("cut"), pipeplotly.Palette("viridis")),
//		verbs.SetTheme("minimal"),
//	)
package verbs

import (
	pp "github.com/Yasser03/pipeplotly"
)

func PlotPoints(x, y string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotPoints(x, y) }
}

func PlotLines(x, y string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotLines(x, y) }
}

func PlotBars(x, y string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotBars(x, y) }
}

func PlotHistogram(x string, bins int) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotHistogram(x, bins) }
}

func PlotBox(x, y string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotBox(x, y) }
}

func PlotViolin(x, y string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotViolin(x, y) }
}

func PlotDensity(x string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotDensity(x) }
}

func PlotHeatmap(x, y, value string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.PlotHeatmap(x, y, value) }
}

func AddColor(ch pp.Channel, options ...pp.ColorOption) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddColor(ch, options...) }
}

func AddSize(ch pp.Channel) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddSize(ch) }
}

func AddAlpha(ch pp.Channel) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddAlpha(ch) }
}

func AddFill(ch pp.Channel) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddFill(ch) }
}

func AddShape(col string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddShape(col) }
}

func AddFacets(f pp.Facets) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddFacets(f) }
}

func AddLabels(options ...pp.LabelOption) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddLabels(options...) }
}

func AddSmooth(method string, params ...pp.SmoothParam) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.AddSmooth(method, params...) }
}

func ScaleXLog() pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.ScaleXLog() }
}

func ScaleYLog() pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.ScaleYLog() }
}

func ScaleXReverse() pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.ScaleXReverse() }
}

func ScaleYReverse() pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.ScaleYReverse() }
}

func XLim(min, max float64) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.XLim(min, max) }
}

func YLim(min, max float64) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.YLim(min, max) }
}

func CoordFlip() pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.CoordFlip() }
}

func CoordFixed(ratio float64) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.CoordFixed(ratio) }
}

func SetTheme(name string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.SetTheme(name) }
}

func SetLegend(position string) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.SetLegend(position) }
}

func Set(key string, value interface{}) pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.Set(key, value) }
}

func ToInteractive() pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.ToInteractive() }
}

func ToStatic() pp.Verb {
	return func(p *pp.Plot) *pp.Plot { return p.ToStatic() }
}
