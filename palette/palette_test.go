// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	colors, ok := Lookup("colorblind")
	require.True(t, ok)
	assert.NotEmpty(t, colors)

	// "default" is known but defers to the backend.
	colors, ok = Lookup("default")
	assert.True(t, ok)
	assert.Nil(t, colors)

	// Continuous colormaps resolve to their anchor stops.
	colors, ok = Lookup("viridis")
	assert.True(t, ok)
	assert.NotEmpty(t, colors)

	_, ok = Lookup("no-such-palette")
	assert.False(t, ok)
}

func TestIsContinuous(t *testing.T) {
	assert.True(t, IsContinuous("viridis"))
	assert.True(t, IsContinuous("coolwarm"))
	assert.False(t, IsContinuous("colorblind"))
	assert.False(t, IsContinuous("no-such-palette"))
}

// Discretization samples n evenly spaced positions over [0, 1], so
// the ends of the colormap always appear.
func TestSample(t *testing.T) {
	colors, ok := Sample("viridis", 3)
	require.True(t, ok)
	require.Len(t, colors, 3)
	assert.Equal(t, "#440154", colors[0])
	assert.Equal(t, "#fde725", colors[2])
}

// A single sample comes from position 0, not the middle.
func TestSampleSingle(t *testing.T) {
	colors, ok := Sample("viridis", 1)
	require.True(t, ok)
	require.Len(t, colors, 1)
	assert.Equal(t, "#440154", colors[0])
}

func TestSampleUnknown(t *testing.T) {
	_, ok := Sample("colorblind", 3)
	assert.False(t, ok, "discrete palettes are not sampled")
	_, ok = Sample("viridis", 0)
	assert.False(t, ok)
}

func TestAtClamps(t *testing.T) {
	lo, ok := At("viridis", -1)
	require.True(t, ok)
	zero, _ := At("viridis", 0)
	assert.Equal(t, zero, lo)

	hi, _ := At("viridis", 2)
	one, _ := At("viridis", 1)
	assert.Equal(t, one, hi)

	_, ok = At("colorblind", 0.5)
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"#ff0000", true},
		{"red", true},
		{"steelblue", true},
		{"not-a-color", false},
		{"#zzz", false},
	}
	for _, test := range tests {
		c, ok := ParseColor(test.in)
		assert.Equal(t, test.ok, ok, "ParseColor(%q)", test.in)
		if ok {
			_, _, _, a := c.RGBA()
			assert.NotZero(t, a, "ParseColor(%q) should be opaque", test.in)
		}
	}
}

func TestParseColorHexMatchesNamed(t *testing.T) {
	hex, ok := ParseColor("#ff0000")
	require.True(t, ok)
	named, ok := ParseColor("red")
	require.True(t, ok)

	hr, hg, hb, _ := hex.RGBA()
	nr, ng, nb, _ := named.RGBA()
	assert.Equal(t, []uint32{nr, ng, nb}, []uint32{hr, hg, hb})

	var _ color.Color = hex
}
