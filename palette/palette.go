// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette maps palette names to color sequences.
//
// The registry distinguishes discrete palettes (a fixed ordered list
// of colors) from continuous colormaps (a gradient sampled at
// arbitrary positions). Lookups never fail hard: an unrecognized name
// means "defer to the backend's default palette".
package palette

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// discrete maps palette names to ordered color lists. A nil list
// defers to the backend default.
var discrete = map[string][]string{
	"default":    nil,
	"colorblind": {"#0173B2", "#DE8F05", "#029E73", "#CC78BC", "#CA9161", "#949494", "#ECE133"},
	"pastel":     {"#B4E7CE", "#FFD6BA", "#F7D4D4", "#C5D5EA", "#F5E6CC"},
}

// continuous maps colormap names to gradient anchor stops, evenly
// spaced over [0, 1].
var continuous = map[string][]string{
	"viridis":  {"#440154", "#414487", "#2a788e", "#22a884", "#7ad151", "#fde725"},
	"plasma":   {"#0d0887", "#5302a3", "#8b0aa5", "#b83289", "#db5c68", "#f48849", "#febd2a", "#f0f921"},
	"inferno":  {"#000004", "#420a68", "#932667", "#dd513a", "#fca50a", "#fcffa4"},
	"magma":    {"#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf"},
	"cividis":  {"#00224e", "#35456c", "#666970", "#948e77", "#c8b866", "#fee838"},
	"twilight": {"#e2d9e2", "#9ebbc9", "#6785be", "#5e43a5", "#2b1c36", "#702b43", "#b86b50", "#dfc9a6"},
	"coolwarm": {"#3b4cc0", "#9abbff", "#dddddd", "#f6a385", "#b40426"},
	"seismic":  {"#00004c", "#0000ff", "#ffffff", "#ff0000", "#7f0000"},
	"rainbow":  {"#8000ff", "#00b5eb", "#80ff80", "#ffb360", "#ff0000"},
	"jet":      {"#000080", "#0000ff", "#00ffff", "#ffff00", "#ff0000", "#800000"},
}

// Lookup returns the discrete palette registered under name. A nil
// list with ok == true means the name is known but defers to the
// backend default. Continuous colormap names also resolve here, to
// their anchor stops, so explicit discrete use keeps working.
func Lookup(name string) (colors []string, ok bool) {
	if c, ok := discrete[name]; ok {
		return c, true
	}
	if c, ok := continuous[name]; ok {
		return c, true
	}
	return nil, false
}

// IsContinuous reports whether name is a known continuous colormap.
func IsContinuous(name string) bool {
	_, ok := continuous[name]
	return ok
}

// At evaluates the named continuous colormap at position t in
// [0, 1], interpolating linearly between anchor stops. Positions
// outside [0, 1] are clamped.
func At(name string, t float64) (colorful.Color, bool) {
	stops, ok := continuous[name]
	if !ok {
		return colorful.Color{}, false
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	// Position within the anchor sequence.
	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	c0, _ := colorful.Hex(stops[i])
	c1, _ := colorful.Hex(stops[i+1])
	return c0.BlendRgb(c1, pos-float64(i)), true
}

// Sample discretizes the named continuous colormap into n colors by
// sampling n evenly spaced positions over [0, 1]. For n == 1 it
// samples position 0. It returns false if name is not a continuous
// colormap or n < 1.
func Sample(name string, n int) ([]string, bool) {
	if !IsContinuous(name) || n < 1 {
		return nil, false
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c, _ := At(name, t)
		out[i] = c.Hex()
	}
	return out, true
}

// ParseColor parses a fixed color literal: "#rrggbb"/"#rgb" hex
// first, then SVG 1.1 color names. It reports ok == false for
// anything it cannot parse.
func ParseColor(s string) (color.Color, bool) {
	if strings.HasPrefix(s, "#") {
		if c, err := colorful.Hex(s); err == nil {
			return c, true
		}
		return nil, false
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, true
	}
	return nil, false
}
