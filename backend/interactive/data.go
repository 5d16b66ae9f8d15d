// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interactive

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// floatColumn flattens a column across all groups as float64s.
func floatColumn(g table.Grouping, col string) []float64 {
	var all []float64
	for _, gid := range g.Tables() {
		var xs []float64
		slice.Convert(&xs, g.Table(gid).MustColumn(col))
		all = append(all, xs...)
	}
	return all
}

// valueColumn flattens a column across all groups. Group order is
// stable, so parallel calls on different columns stay aligned.
func valueColumn(g table.Grouping, col string) []interface{} {
	var all []interface{}
	for _, gid := range g.Tables() {
		rv := reflect.ValueOf(g.Table(gid).MustColumn(col))
		for i := 0; i < rv.Len(); i++ {
			all = append(all, rv.Index(i).Interface())
		}
	}
	return all
}

// stringColumn flattens a column as display strings.
func stringColumn(g table.Grouping, col string) []string {
	vals := valueColumn(g, col)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// distinctStrings returns the distinct display strings of a column in
// first-seen order.
func distinctStrings(g table.Grouping, col string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range stringColumn(g, col) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// quantiles returns the qth sample quantiles of xs. xs is sorted in
// place.
func quantiles(xs []float64, qs ...float64) []float64 {
	sort.Float64s(xs)
	vs := make([]float64, 0, len(qs))
	for _, q := range qs {
		i := int(q * float64(len(xs)))
		if i < 0 {
			i = 0
		} else if i >= len(xs) {
			i = len(xs) - 1
		}
		vs = append(vs, xs[i])
	}
	return vs
}

// binGrid lays an equal-width bin grid over xs and returns the bin
// centers with the grid origin and width. Series that share a grid
// get comparable bins.
func binGrid(xs []float64, bins int) (centers []float64, min, width float64) {
	min, max := stats.Bounds(xs)
	if math.IsNaN(min) || min == max {
		max = min + 1
	}
	edges := vec.Linspace(min, max, bins+1)
	width = (max - min) / float64(bins)

	centers = make([]float64, bins)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}
	return centers, min, width
}

// countBins counts xs into a bin grid produced by binGrid.
func countBins(xs []float64, min, width float64, bins int) []float64 {
	counts := make([]float64, bins)
	for _, v := range xs {
		i := int((v - min) / width)
		if i < 0 {
			i = 0
		} else if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts
}

// densityCurve evaluates a kernel density estimate of xs at n evenly
// spaced points, widening the range by three bandwidths on each side.
func densityCurve(xs []float64, n int) (ss, ds []float64) {
	sample := stats.Sample{Xs: xs}
	kde := stats.KDE{
		Sample:    sample,
		Bandwidth: stats.BandwidthScott(sample),
	}
	min, max := sample.Bounds()
	min, max = min-3*kde.Bandwidth, max+3*kde.Bandwidth
	ss = vec.Linspace(min, max, n)
	return ss, vec.Map(kde.PDF, ss)
}
