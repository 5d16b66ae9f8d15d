// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package static renders plot configurations with go-gg, producing
// static SVG figures.
package static

import (
	"bytes"
	"io"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/rs/zerolog/log"

	"github.com/Yasser03/pipeplotly/backend"
	"github.com/Yasser03/pipeplotly/core"
	"github.com/Yasser03/pipeplotly/theme"
)

// Name is the registry name of the static backend.
const Name = core.BackendStatic

func init() {
	backend.Register(Name, func() backend.Backend { return Backend{} })
}

var logger = log.With().Str("component", "backend/static").Logger()

// Default figure size in pixels.
const (
	defaultWidth  = 500
	defaultHeight = 350
)

// Backend renders configurations through go-gg.
type Backend struct{}

func (Backend) Name() string { return Name }

// Render translates s into a layered gg.Plot.
func (b Backend) Render(s *core.State) (backend.Artifact, error) {
	logger.Debug().Str("geometry", s.Geom.String()).Msg("translating configuration")
	p, err := build(s)
	if err != nil {
		return nil, err
	}
	return &artifact{
		plot:   p,
		theme:  theme.Static(s.Theme),
		width:  defaultWidth,
		height: defaultHeight,
		aspect: s.AspectRatio,
	}, nil
}

// Save renders s and writes it to dest. go-gg encodes SVG only, so
// every extension (and the unrecognized-extension fallback) produces
// markup; width and height hints are converted from inches at the
// requested resolution.
func (b Backend) Save(s *core.State, dest string, opts backend.SaveOptions) error {
	a, err := b.Render(s)
	if err != nil {
		return err
	}
	art := a.(*artifact)
	art.width, art.height = opts.PixelSize(defaultWidth, defaultHeight, s.AspectRatio)

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := art.WriteTo(f); err != nil {
		return err
	}
	logger.Debug().Str("dest", dest).Int("width", art.width).Int("height", art.height).Msg("saved figure")
	return nil
}

// Markup renders s and returns the SVG text.
func (b Backend) Markup(s *core.State) (string, error) {
	a, err := b.Render(s)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := a.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// artifact wraps a built gg.Plot together with the resolved theme
// and output size.
type artifact struct {
	plot          *gg.Plot
	theme         theme.StaticTheme
	width, height int
	aspect        float64
}

func (a *artifact) Backend() string { return Name }

func (a *artifact) MIME() string { return "image/svg+xml" }

func (a *artifact) WriteTo(w io.Writer) (int64, error) {
	h := a.height
	if a.aspect > 0 {
		h = int(float64(a.width) * a.aspect)
	}
	var buf bytes.Buffer
	if err := a.plot.WriteSVG(&buf, a.width, h); err != nil {
		return 0, err
	}
	out := applyTheme(buf.Bytes(), a.theme)
	n, err := w.Write(out)
	return int64(n), err
}

// applyTheme injects the theme background into the root svg element.
// go-gg has no styling hooks, so theming happens on the encoded
// markup.
func applyTheme(svg []byte, th theme.StaticTheme) []byte {
	if th.Background == "" {
		return svg
	}
	style := []byte(`<svg style="background: ` + th.Background + `"`)
	return bytes.Replace(svg, []byte("<svg"), style, 1)
}
