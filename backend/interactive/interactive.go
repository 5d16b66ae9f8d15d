// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interactive renders plot configurations with go-echarts,
// producing self-contained interactive HTML figures.
package interactive

import (
	"bytes"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Yasser03/pipeplotly/backend"
	"github.com/Yasser03/pipeplotly/core"
)

// Name is the registry name of the interactive backend.
const Name = core.BackendInteractive

func init() {
	backend.Register(Name, func() backend.Backend { return Backend{} })
}

var logger = log.With().Str("component", "backend/interactive").Logger()

// Default figure size in pixels.
const (
	defaultWidth  = 900
	defaultHeight = 500
)

// renderable is the slice of the go-echarts chart API the backend
// needs: every chart type writes a complete HTML page.
type renderable interface {
	Render(w io.Writer) error
}

// Backend renders configurations through go-echarts.
type Backend struct{}

func (Backend) Name() string { return Name }

// Render translates s into an echarts chart at the default size.
func (b Backend) Render(s *core.State) (backend.Artifact, error) {
	return b.render(s, defaultWidth, defaultHeight)
}

func (b Backend) render(s *core.State, width, height int) (backend.Artifact, error) {
	logger.Debug().Str("geometry", s.Geom.String()).Msg("translating configuration")
	if s.Smooth != nil {
		logger.Debug().Str("method", s.Smooth.Method).Msg("smoothing has no interactive rendering; ignored")
	}
	chart, err := build(s, width, height)
	if err != nil {
		return nil, err
	}
	return &artifact{chart: chart}, nil
}

// Save renders s and writes it to dest. The output is HTML for every
// extension: figures are living documents here, and an unrecognized
// extension falls back to markup anyway.
func (b Backend) Save(s *core.State, dest string, opts backend.SaveOptions) error {
	w, h := opts.PixelSize(defaultWidth, defaultHeight, s.AspectRatio)
	a, err := b.render(s, w, h)
	if err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := a.WriteTo(f); err != nil {
		return err
	}
	logger.Debug().Str("dest", dest).Int("width", w).Int("height", h).Msg("saved figure")
	return nil
}

// Markup renders s and returns the HTML document text.
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

type artifact struct {
	chart renderable
}

func (a *artifact) Backend() string { return Name }

func (a *artifact) MIME() string { return "text/html" }

func (a *artifact) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := a.chart.Render(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
