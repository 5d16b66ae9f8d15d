// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core defines the plot configuration model shared by the
// pipeplotly facade and its rendering backends.
//
// A State is a plain value. The facade never mutates a State in
// place; every verb clones the current State and updates the clone,
// so earlier snapshots stay valid and can be branched from freely.
package core

import "github.com/aclements/go-gg/table"

// GeomKind identifies the visual mark type of a plot.
type GeomKind int

const (
	GeomNone GeomKind = iota
	GeomPoint
	GeomLine
	GeomBar
	GeomHistogram
	GeomBox
	GeomViolin
	GeomDensity
	GeomHeatmap
)

var geomNames = [...]string{
	GeomNone:      "none",
	GeomPoint:     "point",
	GeomLine:      "line",
	GeomBar:       "bar",
	GeomHistogram: "histogram",
	GeomBox:       "box",
	GeomViolin:    "violin",
	GeomDensity:   "density",
	GeomHeatmap:   "heatmap",
}

func (k GeomKind) String() string {
	if k < 0 || int(k) >= len(geomNames) {
		return "unknown"
	}
	return geomNames[k]
}

// ScaleKind identifies an axis scale mode.
type ScaleKind int

const (
	ScaleLinear ScaleKind = iota
	ScaleLog
	ScaleReverse
)

func (k ScaleKind) String() string {
	switch k {
	case ScaleLog:
		return "log"
	case ScaleReverse:
		return "reverse"
	}
	return "linear"
}

// Limits is a closed numeric interval for an axis.
type Limits struct {
	Min, Max float64
}

// Channel is an aesthetic binding: either a column reference or a
// fixed literal value, never both. The zero Channel is unset.
//
// Because a Channel is assigned as a whole, setting a column
// reference structurally clears any previous fixed value for the
// same channel, and vice versa.
type Channel struct {
	column string
	value  interface{}
}

// Col returns a Channel that maps the named data column.
func Col(name string) Channel {
	return Channel{column: name}
}

// Fixed returns a Channel that sets a constant visual value.
func Fixed(v interface{}) Channel {
	return Channel{value: v}
}

// IsColumn reports whether the channel maps a data column.
func (c Channel) IsColumn() bool { return c.column != "" }

// IsFixed reports whether the channel carries a fixed value.
func (c Channel) IsFixed() bool { return c.column == "" && c.value != nil }

// IsZero reports whether the channel is unset.
func (c Channel) IsZero() bool { return c.column == "" && c.value == nil }

// Column returns the mapped column name, or "" for fixed or unset
// channels.
func (c Channel) Column() string { return c.column }

// Value returns the fixed value, or nil for mapped or unset channels.
func (c Channel) Value() interface{} {
	if c.column != "" {
		return nil
	}
	return c.value
}

// PaletteSpec selects colors for a mapped color channel: either a
// named palette resolved from the palette registry, or an explicit
// ordered color list. An explicit list wins over a name.
type PaletteSpec struct {
	Name   string
	Colors []string
}

func (p PaletteSpec) IsZero() bool { return p.Name == "" && len(p.Colors) == 0 }

// SmoothSpec describes an optional smoothing layer.
type SmoothSpec struct {
	Method string
	Params map[string]interface{}
}

// Legend placements understood by the backends. Anything else falls
// back to LegendRight at translation time.
const (
	LegendRight  = "right"
	LegendLeft   = "left"
	LegendTop    = "top"
	LegendBottom = "bottom"
	LegendNone   = "none"
)

// Registered backend names. BackendStatic is the default.
const (
	BackendStatic      = "gg"
	BackendInteractive = "echarts"
)

// DefaultTheme is the theme assumed until SetTheme is called and the
// fallback for unrecognized theme names.
const DefaultTheme = "default"

// State is the complete, immutable plot configuration. It is the
// single source of truth handed to a rendering backend.
//
// Data is a shared, read-only borrow: every State derived from one
// builder lineage references the same table and none of them may
// mutate it.
type State struct {
	Data table.Grouping

	Geom GeomKind
	X, Y string
	Bins int // histogram bin count; 0 lets the backend choose

	Color Channel
	Size  Channel
	Alpha Channel
	Fill  Channel
	Shape string // column only; points have no fixed-shape mode

	Palette PaletteSpec

	FacetRows, FacetCols, FacetWrap string

	Title, XLabel, YLabel string

	XScale, YScale   ScaleKind
	XLimits, YLimits *Limits

	CoordFlip   bool
	AspectRatio float64 // y/x unit ratio; 0 means unconstrained

	Theme  string
	Legend string

	Smooth *SmoothSpec

	Backend string

	// Extra holds backend-specific parameters that have no named
	// field. Backends read the keys they understand and ignore
	// the rest.
	Extra map[string]interface{}
}

// NewState returns the empty configuration for data: no geometry yet,
// default theme, legend and backend.
func NewState(data table.Grouping) State {
	return State{
		Data:    data,
		Theme:   DefaultTheme,
		Legend:  LegendRight,
		Backend: BackendStatic,
	}
}

// Clone returns a deep copy of s. The data table is shared; maps and
// pointers are copied so the clone can be updated without aliasing
// the original.
func (s State) Clone() State {
	ns := s
	if s.XLimits != nil {
		lim := *s.XLimits
		ns.XLimits = &lim
	}
	if s.YLimits != nil {
		lim := *s.YLimits
		ns.YLimits = &lim
	}
	if s.Smooth != nil {
		sm := SmoothSpec{Method: s.Smooth.Method}
		if s.Smooth.Params != nil {
			sm.Params = make(map[string]interface{}, len(s.Smooth.Params))
			for k, v := range s.Smooth.Params {
				sm.Params[k] = v
			}
		}
		ns.Smooth = &sm
	}
	if s.Extra != nil {
		ns.Extra = make(map[string]interface{}, len(s.Extra))
		for k, v := range s.Extra {
			ns.Extra[k] = v
		}
	}
	return ns
}

// WithExtra returns a clone of s with an extra backend parameter set.
// Unrecognized settings land here rather than being rejected, so
// configurations stay forward-compatible with backend options the
// named fields don't cover.
func (s State) WithExtra(key string, value interface{}) State {
	ns := s.Clone()
	if ns.Extra == nil {
		ns.Extra = make(map[string]interface{})
	}
	ns.Extra[key] = value
	return ns
}
