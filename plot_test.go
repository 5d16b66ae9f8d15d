// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeplotly

import (
	"bytes"
	"os"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasser03/pipeplotly/core"
)

type row struct {
	Carat, Price float64
	Cut          string
}

var diamonds = []row{
	{0.23, 326, "ideal"},
	{0.21, 327, "premium"},
	{0.29, 334, "premium"},
	{0.31, 335, "good"},
	{0.24, 342, "ideal"},
	{0.26, 351, "good"},
}

func testData(t *testing.T) table.Grouping {
	t.Helper()
	return table.TableFromStructs(diamonds)
}

func TestVerbsDoNotMutateReceiver(t *testing.T) {
	base := New(testData(t)).PlotPoints("Carat", "Price")
	colored := base.AddColor(Col("Cut"))
	titled := base.AddLabels(Title("diamonds"))

	assert.True(t, base.State().Color.IsZero(), "AddColor must not touch the receiver")
	assert.Empty(t, base.State().Title, "AddLabels must not touch the receiver")
	assert.True(t, colored.State().Color.IsColumn())
	assert.Equal(t, "diamonds", titled.State().Title)
}

// Fixing a channel value clears a previous column mapping and vice
// versa, in every order.
func TestChannelReassignment(t *testing.T) {
	p := New(testData(t)).PlotPoints("Carat", "Price")

	s := p.AddColor(Col("Cut")).AddColor(Fixed("red")).State()
	assert.True(t, s.Color.IsFixed())
	assert.Equal(t, "", s.Color.Column())

	s = p.AddColor(Fixed("red")).AddColor(Col("Cut")).State()
	assert.True(t, s.Color.IsColumn())
	assert.Nil(t, s.Color.Value())

	s = p.AddSize(Fixed(2.0)).AddSize(Col("Carat")).State()
	assert.True(t, s.Size.IsColumn())

	s = p.AddAlpha(Col("Carat")).AddAlpha(Fixed(0.3)).State()
	assert.True(t, s.Alpha.IsFixed())
}

func TestAddFacetsReplaces(t *testing.T) {
	p := New(testData(t)).
		PlotPoints("Carat", "Price").
		AddFacets(Facets{Rows: "Cut", Cols: "Cut"}).
		AddFacets(Facets{Wrap: "Cut"})
	s := p.State()
	assert.Empty(t, s.FacetRows, "a new facet spec replaces the old one entirely")
	assert.Empty(t, s.FacetCols)
	assert.Equal(t, "Cut", s.FacetWrap)
}

func TestAddLabelsMerges(t *testing.T) {
	p := New(testData(t)).
		PlotPoints("Carat", "Price").
		AddLabels(Title("diamonds"), XLabel("carat")).
		AddLabels(YLabel("price (USD)"))
	s := p.State()
	assert.Equal(t, "diamonds", s.Title, "labels not named again keep their value")
	assert.Equal(t, "carat", s.XLabel)
	assert.Equal(t, "price (USD)", s.YLabel)
}

func TestInvalidLimitsStick(t *testing.T) {
	p := New(testData(t)).
		PlotPoints("Carat", "Price").
		XLim(10, 0).
		SetTheme("dark")

	var rerr *core.InvalidRangeError
	require.ErrorAs(t, p.Err(), &rerr)
	assert.Equal(t, "x", rerr.Axis)
	assert.Nil(t, p.State().XLimits, "invalid limits must not be recorded")

	_, err := p.Render()
	assert.ErrorAs(t, err, &rerr, "the sticky error surfaces from terminal operations")

	// The first error wins over later ones.
	p2 := p.YLim(5, -5)
	require.ErrorAs(t, p2.Err(), &rerr)
	assert.Equal(t, "x", rerr.Axis)
}

func TestValidLimits(t *testing.T) {
	s := New(testData(t)).PlotPoints("Carat", "Price").XLim(0, 10).YLim(-1, 1).State()
	require.NotNil(t, s.XLimits)
	assert.Equal(t, core.Limits{Min: 0, Max: 10}, *s.XLimits)
	require.NotNil(t, s.YLimits)
	assert.Equal(t, core.Limits{Min: -1, Max: 1}, *s.YLimits)
}

func TestNewFrom(t *testing.T) {
	p := NewFrom(diamonds)
	require.NoError(t, p.Err())
	assert.Equal(t, 6, core.Rows(p.State().Data))

	p = NewFrom(testData(t))
	assert.NoError(t, p.Err())

	var terr *core.InputTypeError
	p = NewFrom(42)
	assert.ErrorAs(t, p.Err(), &terr)
	p = NewFrom([]int{1, 2, 3})
	assert.ErrorAs(t, p.Err(), &terr)
	p = NewFrom(nil)
	assert.ErrorAs(t, p.Err(), &terr)

	var eerr *core.EmptyInputError
	p = NewFrom([]row{})
	assert.ErrorAs(t, p.Err(), &eerr)
}

func TestRenderValidates(t *testing.T) {
	_, err := New(testData(t)).Render()
	var merr *core.MissingRequiredFieldError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "geometry", merr.Field)

	var uerr *core.UnknownColumnError
	_, err = New(testData(t)).PlotPoints("Carat", "missing").Render()
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "missing", uerr.Column)
}

func TestRenderStatic(t *testing.T) {
	a, err := New(testData(t)).PlotPoints("Carat", "Price").Render()
	require.NoError(t, err)
	assert.Equal(t, core.BackendStatic, a.Backend())
	assert.Equal(t, "image/svg+xml", a.MIME())

	var buf bytes.Buffer
	_, err = a.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderInteractive(t *testing.T) {
	a, err := New(testData(t)).PlotPoints("Carat", "Price").ToInteractive().Render()
	require.NoError(t, err)
	assert.Equal(t, core.BackendInteractive, a.Backend())
	assert.Equal(t, "text/html", a.MIME())
}

func TestShowWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	p := New(testData(t), WithOutput(&buf)).PlotPoints("Carat", "Price")
	require.NoError(t, p.Show())
	assert.Contains(t, buf.String(), "<svg")
}

// ToHTML switches to the interactive backend without disturbing the
// original configuration.
func TestToHTML(t *testing.T) {
	p := New(testData(t)).PlotPoints("Carat", "Price")
	markup, err := p.ToHTML("")
	require.NoError(t, err)
	assert.Contains(t, markup, "echarts")
	assert.Equal(t, core.BackendStatic, p.State().Backend)
}

func TestToHTMLWritesFile(t *testing.T) {
	dest := t.TempDir() + "/plot.html"
	p := New(testData(t)).PlotPoints("Carat", "Price")
	_, err := p.ToHTML(dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}

func TestSave(t *testing.T) {
	dest := t.TempDir() + "/plot.svg"
	p := New(testData(t)).PlotPoints("Carat", "Price")
	require.NoError(t, p.Save(dest, Width(3), Height(2), DPI(100)))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="300"`)
}

func TestString(t *testing.T) {
	p := New(testData(t)).PlotPoints("Carat", "Price")
	assert.Equal(t, "Plot(geometry=point, backend=gg, rows=6)", p.String())
	assert.Equal(t, "Plot(geometry=point, backend=echarts, rows=6)", p.ToInteractive().String())
}

func TestSetExtra(t *testing.T) {
	p := New(testData(t)).PlotPoints("Carat", "Price").Set("renderer", "svg")
	assert.Equal(t, "svg", p.State().Extra["renderer"])
}

func TestCoordVerbs(t *testing.T) {
	p := New(testData(t)).PlotPoints("Carat", "Price")
	assert.True(t, p.CoordFlip().State().CoordFlip)
	assert.False(t, p.CoordFlip().CoordFlip().State().CoordFlip)
	assert.Equal(t, 0.75, p.CoordFixed(0.75).State().AspectRatio)
	assert.Zero(t, p.CoordFixed(0.75).CoordFixed(-1).State().AspectRatio)
}
