// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme maps abstract theme names to each backend's native
// theme identifier. Unrecognized names resolve to the default theme;
// setting a theme never fails.
package theme

// Names understood by both backends: "default", "minimal", "classic",
// "dark", "light", "void", "bw".

// StaticTheme is the styling the static SVG backend can apply.
type StaticTheme struct {
	Background string
	Foreground string
}

var static = map[string]StaticTheme{
	"default": {Background: "#ebebeb", Foreground: "#333333"},
	"minimal": {Background: "#ffffff", Foreground: "#333333"},
	"classic": {Background: "#ffffff", Foreground: "#000000"},
	"dark":    {Background: "#2b2b2b", Foreground: "#e0e0e0"},
	"light":   {Background: "#f7f7f7", Foreground: "#333333"},
	"void":    {Background: "", Foreground: "#333333"},
	"bw":      {Background: "#ffffff", Foreground: "#000000"},
}

// interactive maps theme names to go-echarts theme identifiers.
var interactive = map[string]string{
	"default": "white",
	"minimal": "walden",
	"classic": "vintage",
	"dark":    "dark",
	"light":   "white",
	"void":    "white",
	"bw":      "white",
}

// Static resolves name for the static backend, falling back to the
// default theme for unrecognized names.
func Static(name string) StaticTheme {
	if t, ok := static[name]; ok {
		return t
	}
	return static["default"]
}

// Interactive resolves name to a go-echarts theme identifier, falling
// back to the default theme for unrecognized names.
func Interactive(name string) string {
	if t, ok := interactive[name]; ok {
		return t
	}
	return interactive["default"]
}
