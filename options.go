// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeplotly

import (
	"io"

	"github.com/Yasser03/pipeplotly/backend"
	"github.com/Yasser03/pipeplotly/core"
)

// Option configures a new Plot.
type Option func(*Plot)

// WithOutput directs Show output to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Plot) { p.out = w }
}

// WithBackend selects the initial rendering backend by registry
// name.
func WithBackend(name string) Option {
	return func(p *Plot) { p.state.Backend = name }
}

// ColorOption refines a color channel binding.
type ColorOption func(*core.PaletteSpec)

// Palette selects a named palette or continuous colormap for a
// mapped color column. It replaces an earlier explicit color list.
func Palette(name string) ColorOption {
	return func(spec *core.PaletteSpec) {
		spec.Name = name
		spec.Colors = nil
	}
}

// Colors sets an explicit ordered color cycle for a mapped color
// column. It replaces an earlier named palette.
func Colors(colors ...string) ColorOption {
	return func(spec *core.PaletteSpec) {
		spec.Name = ""
		spec.Colors = colors
	}
}

// LabelOption updates one label in an AddLabels call.
type LabelOption func(*core.State)

// Title sets the plot title. An empty string clears it.
func Title(title string) LabelOption {
	return func(s *core.State) { s.Title = title }
}

// XLabel sets the x axis label. An empty string clears it.
func XLabel(label string) LabelOption {
	return func(s *core.State) { s.XLabel = label }
}

// YLabel sets the y axis label. An empty string clears it.
func YLabel(label string) LabelOption {
	return func(s *core.State) { s.YLabel = label }
}

// SmoothParam sets one smoothing parameter in an AddSmooth call.
type SmoothParam func(map[string]interface{})

// Span sets the LOESS smoothing span (fraction of points per local
// fit).
func Span(span float64) SmoothParam {
	return func(m map[string]interface{}) { m["span"] = span }
}

// Degree sets the polynomial degree of the smoothing fit.
func Degree(degree int) SmoothParam {
	return func(m map[string]interface{}) { m["degree"] = degree }
}

// SaveOption adjusts Save output.
type SaveOption func(*backend.SaveOptions)

// Width sets the figure width in inches.
func Width(inches float64) SaveOption {
	return func(o *backend.SaveOptions) { o.Width = inches }
}

// Height sets the figure height in inches.
func Height(inches float64) SaveOption {
	return func(o *backend.SaveOptions) { o.Height = inches }
}

// DPI sets the save resolution in dots per inch.
func DPI(dpi int) SaveOption {
	return func(o *backend.SaveOptions) { o.DPI = dpi }
}

// SaveParam passes a backend-specific save parameter.
func SaveParam(key string, value interface{}) SaveOption {
	return func(o *backend.SaveOptions) {
		if o.Params == nil {
			o.Params = map[string]interface{}{}
		}
		o.Params[key] = value
	}
}
