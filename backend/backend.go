// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backend defines the rendering backend contract and the
// registry backends register themselves with.
//
// A Backend translates a validated core.State into calls against an
// external rendering library. The configuration layer never renders
// anything itself; it validates and dispatches.
package backend

import (
	"io"

	"github.com/Yasser03/pipeplotly/core"
)

// Artifact is a rendered figure in a backend's native form. WriteTo
// encodes it as the backend's markup representation.
type Artifact interface {
	// Backend returns the name of the backend that produced the
	// artifact.
	Backend() string

	// MIME returns the media type of the markup encoding.
	MIME() string

	// WriteTo encodes the artifact to w.
	WriteTo(w io.Writer) (int64, error)
}

// DefaultDPI is the save resolution assumed when the caller gives
// none.
const DefaultDPI = 300

// SaveOptions carries sizing hints and backend-specific parameters
// for Save.
type SaveOptions struct {
	// Width and Height are in inches; zero means backend default.
	Width, Height float64

	// DPI converts inches to pixels. Zero means DefaultDPI.
	DPI int

	// Params holds extra backend-specific save parameters.
	Params map[string]interface{}
}

// PixelSize converts the sizing hints to pixels, substituting the
// given defaults for absent hints. When only the width is given and
// aspect is nonzero, the height is derived as width*aspect so a fixed
// aspect ratio survives the unit conversion.
func (o SaveOptions) PixelSize(defWidth, defHeight int, aspect float64) (w, h int) {
	dpi := o.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	w, h = defWidth, defHeight
	if o.Width > 0 {
		w = int(o.Width * float64(dpi))
	}
	switch {
	case o.Height > 0:
		h = int(o.Height * float64(dpi))
	case o.Width > 0 && aspect > 0:
		h = int(o.Width * aspect * float64(dpi))
	case aspect > 0:
		h = int(float64(w) * aspect)
	}
	return w, h
}

// Backend renders validated configurations with one external
// rendering library.
type Backend interface {
	// Name returns the backend identifier (e.g. "gg", "echarts").
	Name() string

	// Render translates s into the external renderer's call shape
	// and returns the resulting figure.
	Render(s *core.State) (Artifact, error)

	// Save renders s and persists it to dest. The destination
	// file extension selects the encoding; unrecognized
	// extensions fall back to the backend's markup form.
	Save(s *core.State, dest string, opts SaveOptions) error

	// Markup renders s and returns its textual markup form.
	Markup(s *core.State) (string, error)
}
