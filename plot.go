// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeplotly builds plot configurations declaratively and
// renders them through pluggable backends.
//
// A Plot is immutable: every verb returns a new Plot and leaves its
// receiver untouched, so configurations can be branched and reused.
// Verbs can be chained as methods or composed with Pipe:
//
//	p := pipeplotly.New(data).
//		PlotPoints("carat", "price").
//		AddColor(pipeplotly.Col("cut"), pipeplotly.Palette("viridis")).
//		SetTheme("minimal")
//	err := p.Save("out.svg")
//
// Errors raised by intermediate verbs stick to the returned Plot and
// surface from Err and from every terminal operation.
package pipeplotly

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/rs/zerolog/log"

	"github.com/Yasser03/pipeplotly/backend"
	"github.com/Yasser03/pipeplotly/core"

	// Both rendering backends register themselves so every Plot can
	// switch between them without further imports.
	_ "github.com/Yasser03/pipeplotly/backend/interactive"
	_ "github.com/Yasser03/pipeplotly/backend/static"
)

var logger = log.With().Str("component", "pipeplotly").Logger()

// Channel binds an aesthetic to a data column or a fixed value.
type Channel = core.Channel

// Col maps an aesthetic to the named data column.
func Col(name string) Channel { return core.Col(name) }

// Fixed sets an aesthetic to a constant visual value.
func Fixed(v interface{}) Channel { return core.Fixed(v) }

// Facets describes the faceting layout. Wrap takes precedence over
// the Rows/Cols grid when both are set.
type Facets struct {
	Rows, Cols, Wrap string
}

// Verb is a single configuration step, usable with Pipe.
type Verb func(*Plot) *Plot

// Plot is an immutable plot configuration.
type Plot struct {
	state core.State
	err   error
	out   io.Writer
}

// New starts a plot configuration over a data table.
func New(data table.Grouping, options ...Option) *Plot {
	p := &Plot{state: core.NewState(data)}
	for _, o := range options {
		o(p)
	}
	return p
}

// NewFrom starts a plot configuration from a table.Grouping or a
// slice of structs (one row per element, one column per exported
// field). Any other value carries an InputTypeError; an empty input
// carries an EmptyInputError. Both stick to the returned Plot.
func NewFrom(data interface{}, options ...Option) *Plot {
	switch v := data.(type) {
	case table.Grouping:
		p := New(v, options...)
		if p.err == nil && core.Rows(v) == 0 {
			p.err = &core.EmptyInputError{}
		}
		return p
	case nil:
		p := New(nil, options...)
		p.err = &core.InputTypeError{Type: "nil"}
		return p
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Struct {
		p := New(nil, options...)
		p.err = &core.InputTypeError{Type: rv.Type().String()}
		return p
	}
	if rv.Len() == 0 {
		p := New(nil, options...)
		p.err = &core.EmptyInputError{}
		return p
	}
	return New(table.TableFromStructs(data), options...)
}

// Pipe applies verbs to a fresh configuration in order. The result
// is identical to chaining the same verbs as methods.
func Pipe(data table.Grouping, verbs ...Verb) *Plot {
	p := New(data)
	for _, v := range verbs {
		p = v(p)
	}
	return p
}

// clone copies the plot for the next verb. The receiver stays valid.
func (p *Plot) clone() *Plot {
	q := *p
	q.state = p.state.Clone()
	return &q
}

// Err returns the first error recorded by a verb, if any.
func (p *Plot) Err() error { return p.err }

// State returns a copy of the underlying configuration.
func (p *Plot) State() core.State { return p.state.Clone() }

func (p *Plot) String() string {
	return fmt.Sprintf("Plot(geometry=%s, backend=%s, rows=%d)",
		p.state.Geom, p.state.Backend, core.Rows(p.state.Data))
}

// PlotPoints sets a scatter geometry over the x and y columns.
func (p *Plot) PlotPoints(x, y string) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomPoint
	q.state.X, q.state.Y = x, y
	return q
}

// PlotLines sets a line geometry over the x and y columns.
func (p *Plot) PlotLines(x, y string) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomLine
	q.state.X, q.state.Y = x, y
	return q
}

// PlotBars sets a bar geometry. With y == "" the bars count rows per
// distinct x value.
func (p *Plot) PlotBars(x, y string) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomBar
	q.state.X, q.state.Y = x, y
	return q
}

// PlotHistogram sets a histogram over the x column. bins <= 0 leaves
// the bin count to the backend.
func (p *Plot) PlotHistogram(x string, bins int) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomHistogram
	q.state.X, q.state.Y = x, ""
	q.state.Bins = bins
	return q
}

// PlotBox sets a box-plot geometry over the y column, grouped by the
// x column when x != "".
func (p *Plot) PlotBox(x, y string) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomBox
	q.state.X, q.state.Y = x, y
	return q
}

// PlotViolin sets a violin geometry over the y column, grouped by
// the x column when x != "".
func (p *Plot) PlotViolin(x, y string) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomViolin
	q.state.X, q.state.Y = x, y
	return q
}

// PlotDensity sets a kernel density geometry over the x column.
func (p *Plot) PlotDensity(x string) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomDensity
	q.state.X, q.state.Y = x, ""
	return q
}

// PlotHeatmap sets a heatmap over category columns x and y, colored
// by the value column.
func (p *Plot) PlotHeatmap(x, y, value string) *Plot {
	q := p.clone()
	q.state.Geom = core.GeomHeatmap
	q.state.X, q.state.Y = x, y
	q.state.Color = core.Col(value)
	return q
}

// AddColor binds the color channel. Assigning a Channel replaces the
// previous binding entirely: mapping a column clears an earlier fixed
// color and vice versa.
func (p *Plot) AddColor(ch Channel, options ...ColorOption) *Plot {
	q := p.clone()
	q.state.Color = ch
	for _, o := range options {
		o(&q.state.Palette)
	}
	return q
}

// AddSize binds the size channel.
func (p *Plot) AddSize(ch Channel) *Plot {
	q := p.clone()
	q.state.Size = ch
	return q
}

// AddAlpha binds the opacity channel.
func (p *Plot) AddAlpha(ch Channel) *Plot {
	q := p.clone()
	q.state.Alpha = ch
	return q
}

// AddFill binds the fill channel.
func (p *Plot) AddFill(ch Channel) *Plot {
	q := p.clone()
	q.state.Fill = ch
	return q
}

// AddShape maps the point shape to a data column.
func (p *Plot) AddShape(col string) *Plot {
	q := p.clone()
	q.state.Shape = col
	return q
}

// AddFacets replaces the whole faceting layout. Fields left empty in
// f clear the corresponding dimension.
func (p *Plot) AddFacets(f Facets) *Plot {
	q := p.clone()
	q.state.FacetRows = f.Rows
	q.state.FacetCols = f.Cols
	q.state.FacetWrap = f.Wrap
	return q
}

// AddLabels updates the title and axis labels. Labels not named by
// an option keep their previous value.
func (p *Plot) AddLabels(options ...LabelOption) *Plot {
	q := p.clone()
	for _, o := range options {
		o(&q.state)
	}
	return q
}

// AddSmooth overlays a smoothing fit: "loess" (the default for
// unknown methods) or "lm" for a least-squares fit. Backends that
// cannot draw a fit ignore it.
func (p *Plot) AddSmooth(method string, params ...SmoothParam) *Plot {
	q := p.clone()
	sm := &core.SmoothSpec{Method: method, Params: map[string]interface{}{}}
	for _, o := range params {
		o(sm.Params)
	}
	q.state.Smooth = sm
	return q
}

// ScaleXLog switches the x axis to a log10 scale.
func (p *Plot) ScaleXLog() *Plot {
	q := p.clone()
	q.state.XScale = core.ScaleLog
	return q
}

// ScaleYLog switches the y axis to a log10 scale.
func (p *Plot) ScaleYLog() *Plot {
	q := p.clone()
	q.state.YScale = core.ScaleLog
	return q
}

// ScaleXReverse reverses the x axis direction.
func (p *Plot) ScaleXReverse() *Plot {
	q := p.clone()
	q.state.XScale = core.ScaleReverse
	return q
}

// ScaleYReverse reverses the y axis direction.
func (p *Plot) ScaleYReverse() *Plot {
	q := p.clone()
	q.state.YScale = core.ScaleReverse
	return q
}

// XLim restricts the x axis to [min, max]. min > max records an
// InvalidRangeError and leaves the limits unchanged.
func (p *Plot) XLim(min, max float64) *Plot {
	q := p.clone()
	if min > max {
		if q.err == nil {
			q.err = &core.InvalidRangeError{Axis: "x", Min: min, Max: max}
		}
		return q
	}
	q.state.XLimits = &core.Limits{Min: min, Max: max}
	return q
}

// YLim restricts the y axis to [min, max]. min > max records an
// InvalidRangeError and leaves the limits unchanged.
func (p *Plot) YLim(min, max float64) *Plot {
	q := p.clone()
	if min > max {
		if q.err == nil {
			q.err = &core.InvalidRangeError{Axis: "y", Min: min, Max: max}
		}
		return q
	}
	q.state.YLimits = &core.Limits{Min: min, Max: max}
	return q
}

// CoordFlip swaps the x and y axes at render time.
func (p *Plot) CoordFlip() *Plot {
	q := p.clone()
	q.state.CoordFlip = !q.state.CoordFlip
	return q
}

// CoordFixed constrains the rendered aspect ratio (y units per x
// unit). ratio <= 0 removes the constraint.
func (p *Plot) CoordFixed(ratio float64) *Plot {
	q := p.clone()
	if ratio <= 0 {
		ratio = 0
	}
	q.state.AspectRatio = ratio
	return q
}

// SetTheme selects a visual theme by abstract name. Unknown names
// fall back to the default theme at render time.
func (p *Plot) SetTheme(name string) *Plot {
	q := p.clone()
	q.state.Theme = name
	return q
}

// SetLegend places the legend: "right", "left", "top", "bottom" or
// "none".
func (p *Plot) SetLegend(position string) *Plot {
	q := p.clone()
	q.state.Legend = position
	return q
}

// Set records a backend-specific extra parameter.
func (p *Plot) Set(key string, value interface{}) *Plot {
	q := p.clone()
	q.state = q.state.WithExtra(key, value)
	return q
}

// ToInteractive switches rendering to the interactive HTML backend.
func (p *Plot) ToInteractive() *Plot {
	q := p.clone()
	q.state.Backend = core.BackendInteractive
	return q
}

// ToStatic switches rendering to the static SVG backend.
func (p *Plot) ToStatic() *Plot {
	q := p.clone()
	q.state.Backend = core.BackendStatic
	return q
}

// Render validates the configuration and translates it through the
// selected backend.
func (p *Plot) Render() (backend.Artifact, error) {
	b, err := p.prepare()
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("geometry", p.state.Geom.String()).
		Str("backend", p.state.Backend).
		Msg("rendering")
	return b.Render(&p.state)
}

// Show renders the plot and writes it to the configured output
// writer (os.Stdout unless WithOutput changed it).
func (p *Plot) Show() error {
	a, err := p.Render()
	if err != nil {
		return err
	}
	w := p.out
	if w == nil {
		w = os.Stdout
	}
	_, err = a.WriteTo(w)
	return err
}

// Save renders the plot into the file at dest. The destination
// extension selects the encoding where the backend supports more
// than one; unrecognized extensions receive the backend's markup.
func (p *Plot) Save(dest string, options ...SaveOption) error {
	b, err := p.prepare()
	if err != nil {
		return err
	}
	o := backend.SaveOptions{Params: map[string]interface{}{}}
	for k, v := range p.state.Extra {
		o.Params[k] = v
	}
	for _, so := range options {
		so(&o)
	}
	return b.Save(&p.state, dest, o)
}

// ToHTML returns the plot as interactive HTML markup, switching to
// the interactive backend if another one is selected. With path !=
// "" the markup is also written to that file.
func (p *Plot) ToHTML(path string) (string, error) {
	q := p
	if q.state.Backend != core.BackendInteractive {
		q = p.ToInteractive()
	}
	b, err := q.prepare()
	if err != nil {
		return "", err
	}
	markup, err := b.Markup(&q.state)
	if err != nil {
		return "", err
	}
	if path != "" {
		if err := os.WriteFile(path, []byte(markup), 0666); err != nil {
			return "", err
		}
	}
	return markup, nil
}

// prepare surfaces any sticky verb error, validates the
// configuration and resolves the backend.
func (p *Plot) prepare() (backend.Backend, error) {
	if p.err != nil {
		return nil, p.err
	}
	if err := p.state.Validate(); err != nil {
		return nil, err
	}
	b := backend.Get(p.state.Backend)
	if b == nil {
		return nil, fmt.Errorf("unknown backend %q (available: %v)",
			p.state.Backend, backend.Available())
	}
	return b, nil
}
