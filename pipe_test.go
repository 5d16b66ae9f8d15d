// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeplotly_test

import (
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"

	pp "github.com/Yasser03/pipeplotly"
	"github.com/Yasser03/pipeplotly/verbs"
)

// Method chaining and verb piping are two spellings of the same
// configuration and must produce identical states.
func TestPipeMatchesChaining(t *testing.T) {
	data := table.TableFromStructs([]struct {
		Carat, Price float64
		Cut          string
	}{
		{0.23, 326, "ideal"},
		{0.21, 327, "premium"},
	})

	chained := pp.New(data).
		PlotPoints("Carat", "Price").
		AddColor(pp.Col("Cut"), pp.Palette("viridis")).
		AddFacets(pp.Facets{Wrap: "Cut"}).
		SetTheme("minimal").
		ScaleYLog()
	piped := pp.Pipe(data,
		verbs.PlotPoints("Carat", "Price"),
		verbs.AddColor(pp.Col("Cut"), pp.Palette("viridis")),
		verbs.AddFacets(pp.Facets{Wrap: "Cut"}),
		verbs.SetTheme("minimal"),
		verbs.ScaleYLog(),
	)
	assert.Equal(t, chained.State(), piped.State())
	assert.NoError(t, chained.Err())
	assert.NoError(t, piped.Err())
}

// A verb sequence with an invalid step carries its error through the
// pipe like a method chain does.
func TestPipeCarriesError(t *testing.T) {
	data := table.TableFromStructs([]struct{ X, Y float64 }{{1, 2}})
	p := pp.Pipe(data,
		verbs.PlotPoints("X", "Y"),
		verbs.XLim(10, 0),
		verbs.SetTheme("dark"),
	)
	assert.Error(t, p.Err())
}
