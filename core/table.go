// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"reflect"

	"github.com/aclements/go-gg/table"
)

// ColKind classifies a column's element type. The core only ever
// inspects names and kinds; row values are read by the backends.
type ColKind int

const (
	KindInvalid ColKind = iota
	KindNumeric
	KindString
	KindBool
	KindOther
)

// Rows returns the total number of rows across all groups of g.
func Rows(g table.Grouping) int {
	if g == nil {
		return 0
	}
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// HasColumn reports whether g has a column named col.
func HasColumn(g table.Grouping, col string) bool {
	for _, c := range g.Columns() {
		if c == col {
			return true
		}
	}
	return false
}

// ColumnKind returns the element kind of the named column, or
// KindInvalid if the column does not exist or g is empty.
func ColumnKind(g table.Grouping, col string) ColKind {
	for _, gid := range g.Tables() {
		c := g.Table(gid).Column(col)
		if c == nil {
			return KindInvalid
		}
		switch reflect.TypeOf(c).Elem().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return KindNumeric
		case reflect.String:
			return KindString
		case reflect.Bool:
			return KindBool
		}
		return KindOther
	}
	return KindInvalid
}

// Distinct returns the distinct values of the named column across
// all groups, in first-seen order. The translation layer uses this to
// size discretized palettes and to split series by category.
func Distinct(g table.Grouping, col string) []interface{} {
	var vals []interface{}
	seen := make(map[interface{}]bool)
	for _, gid := range g.Tables() {
		c := g.Table(gid).Column(col)
		if c == nil {
			continue
		}
		rv := reflect.ValueOf(c)
		for i := 0; i < rv.Len(); i++ {
			v := rv.Index(i).Interface()
			if !seen[v] {
				seen[v] = true
				vals = append(vals, v)
			}
		}
	}
	return vals
}
