// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

import (
	"image/color"
	"os"
	"testing"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasser03/pipeplotly/backend"
	"github.com/Yasser03/pipeplotly/core"
	"github.com/Yasser03/pipeplotly/palette"
)

func testState(t *testing.T) *core.State {
	t.Helper()
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 3, 4, 5, 6}).
		Add("y", []float64{2, 4, 8, 16, 32, 64}).
		Add("cat", []string{"a", "b", "a", "b", "a", "b"}).
		Done()
	s := core.NewState(tab)
	s.Geom = core.GeomPoint
	s.X, s.Y = "x", "y"
	return &s
}

func TestRegistered(t *testing.T) {
	b := backend.Get(core.BackendStatic)
	require.NotNil(t, b)
	assert.Equal(t, Name, b.Name())
}

func TestMarkupPoints(t *testing.T) {
	markup, err := Backend{}.Markup(testState(t))
	require.NoError(t, err)
	assert.Contains(t, markup, "<svg", "markup should be an SVG document")
}

func TestMarkupAppliesThemeBackground(t *testing.T) {
	s := testState(t)
	s.Theme = "dark"
	markup, err := Backend{}.Markup(s)
	require.NoError(t, err)
	assert.Contains(t, markup, `background: #2b2b2b`)
}

func TestUnsupportedGeometries(t *testing.T) {
	for _, geom := range []core.GeomKind{core.GeomBar, core.GeomBox, core.GeomViolin} {
		s := testState(t)
		s.Geom = geom
		_, err := build(s)
		var uerr *core.UnsupportedGeometryError
		require.ErrorAs(t, err, &uerr, "geometry %s", geom)
		assert.Equal(t, geom, uerr.Geom)
		assert.Equal(t, Name, uerr.Backend)
	}
}

func TestSupportedGeometries(t *testing.T) {
	for _, geom := range []core.GeomKind{
		core.GeomPoint, core.GeomLine, core.GeomHistogram,
		core.GeomDensity, core.GeomHeatmap,
	} {
		s := testState(t)
		s.Geom = geom
		if geom == core.GeomHeatmap {
			s.X, s.Y = "cat", "cat"
			s.Color = core.Col("y")
		}
		_, err := build(s)
		assert.NoError(t, err, "geometry %s", geom)
	}
}

func TestBinStat(t *testing.T) {
	tab := new(table.Builder).
		Add("v", []float64{0, 0.1, 0.2, 5, 5.1, 9.9}).
		Done()
	g := binStat{x: "v", bins: 2}.F(tab)

	gids := g.Tables()
	require.Len(t, gids, 1)
	out := g.Table(gids[0])
	// Equal-width bins over [0, 9.9] split at 4.95.
	counts := out.MustColumn("count").([]float64)
	require.Len(t, counts, 2)
	assert.Equal(t, 3.0, counts[0])
	assert.Equal(t, 3.0, counts[1])
}

// Grouped histograms share one bin grid so the bars are comparable
// across groups.
func TestBinStatSharedBounds(t *testing.T) {
	tab := new(table.Builder).
		Add("v", []float64{0, 1, 2, 10, 11, 12}).
		Add("g", []string{"lo", "lo", "lo", "hi", "hi", "hi"}).
		Done()
	g := binStat{x: "v", bins: 4}.F(table.GroupBy(tab, "g"))

	var first []float64
	for _, gid := range g.Tables() {
		centers := g.Table(gid).MustColumn("v").([]float64)
		if first == nil {
			first = centers
		} else {
			assert.Equal(t, first, centers)
		}
	}
}

func TestApplyAxisScaleLog(t *testing.T) {
	s := testState(t)
	plot := gg.NewPlot(s.Data)
	col, lim := applyAxisScale(plot, "y", core.ScaleLog, &core.Limits{Min: 1, Max: 100})
	assert.Equal(t, "log10 y", col)
	require.NotNil(t, lim)
	assert.Equal(t, 0.0, lim.Min)
	assert.Equal(t, 2.0, lim.Max)
}

func TestApplyAxisScaleReverse(t *testing.T) {
	s := testState(t)
	plot := gg.NewPlot(s.Data)
	col, lim := applyAxisScale(plot, "x", core.ScaleReverse, &core.Limits{Min: 1, Max: 5})
	assert.Equal(t, "reversed x", col)
	require.NotNil(t, lim)
	assert.Equal(t, -5.0, lim.Min)
	assert.Equal(t, -1.0, lim.Max)
}

func TestDiscreteMappingCycles(t *testing.T) {
	tab := new(table.Builder).
		Add("cat", []string{"a", "b", "c"}).
		Done()
	lookup := discreteMapping(tab, "cat", []string{"#ff0000", "#00ff00"})
	require.NotNil(t, lookup)

	// Third value wraps around to the first color.
	assert.Equal(t, lookup("a"), lookup("c"))
	assert.NotEqual(t, lookup("a"), lookup("b"))
}

func TestPaletteMappingContinuousCategorical(t *testing.T) {
	s := testState(t)
	s.Color = core.Col("cat")
	s.Palette = core.PaletteSpec{Name: "viridis"}
	lookup := paletteMapping(s, "cat")
	require.NotNil(t, lookup)

	// Two categories sample the colormap ends.
	assert.NotEqual(t, lookup("a"), lookup("b"))
}

// Three categories under a continuous colormap get the colors at
// positions 0, 0.5 and 1 of the gradient, in first-seen order.
func TestPaletteMappingThreeCategories(t *testing.T) {
	tab := new(table.Builder).
		Add("cat", []string{"a", "b", "c"}).
		Add("y", []float64{1, 2, 3}).
		Done()
	s := core.NewState(tab)
	s.Color = core.Col("cat")
	s.Palette = core.PaletteSpec{Name: "viridis"}
	lookup := paletteMapping(&s, "cat")
	require.NotNil(t, lookup)

	hexes, ok := palette.Sample("viridis", 3)
	require.True(t, ok)
	for i, v := range []interface{}{"a", "b", "c"} {
		want, ok := palette.ParseColor(hexes[i])
		require.True(t, ok)
		assert.Equal(t, want, lookup(v), "category %v", v)
	}
}

func TestPaletteMappingGradient(t *testing.T) {
	s := testState(t)
	s.Color = core.Col("y")
	s.Palette = core.PaletteSpec{Name: "viridis"}
	lookup := paletteMapping(s, "y")
	require.NotNil(t, lookup)
	assert.NotEqual(t, lookup(2.0), lookup(64.0))
}

func TestPaletteMappingUnknownName(t *testing.T) {
	s := testState(t)
	s.Color = core.Col("cat")
	s.Palette = core.PaletteSpec{Name: "no-such-palette"}
	assert.Nil(t, paletteMapping(s, "cat"), "unknown palettes defer to the renderer")
}

func TestFixedColor(t *testing.T) {
	c, ok := fixedColor(core.Fixed("red"))
	require.True(t, ok)
	r, _, _, _ := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)

	_, ok = fixedColor(core.Fixed("not-a-color"))
	assert.False(t, ok)

	_, ok = fixedColor(core.Col("cat"))
	assert.False(t, ok)
}

func TestColorMapStat(t *testing.T) {
	tab := new(table.Builder).
		Add("cat", []string{"a", "b", "a"}).
		Done()
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	stat := colorMapStat{src: "cat", out: "[color cat]", lookup: func(v interface{}) color.Color {
		if v == "a" {
			return red
		}
		return blue
	}}
	g := stat.F(tab)
	out := g.Table(g.Tables()[0]).MustColumn("[color cat]").([]color.Color)
	assert.Equal(t, []color.Color{red, blue, red}, out)
}

func TestSaveWritesSVG(t *testing.T) {
	dest := t.TempDir() + "/out.svg"
	err := Backend{}.Save(testState(t), dest, backend.SaveOptions{Width: 2, Height: 1, DPI: 100})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), `width="200"`)
}
