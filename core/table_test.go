// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
)

func TestRows(t *testing.T) {
	assert.Equal(t, 3, Rows(testTable(t)))
	assert.Equal(t, 0, Rows(new(table.Builder).Add("x", []int{}).Done()))
}

func TestHasColumn(t *testing.T) {
	g := testTable(t)
	assert.True(t, HasColumn(g, "X"))
	assert.True(t, HasColumn(g, "Cat"))
	assert.False(t, HasColumn(g, "missing"))
}

func TestColumnKind(t *testing.T) {
	g := new(table.Builder).
		Add("f", []float64{1, 2}).
		Add("i", []int{1, 2}).
		Add("s", []string{"a", "b"}).
		Add("b", []bool{true, false}).
		Done()
	assert.Equal(t, KindNumeric, ColumnKind(g, "f"))
	assert.Equal(t, KindNumeric, ColumnKind(g, "i"))
	assert.Equal(t, KindString, ColumnKind(g, "s"))
	assert.Equal(t, KindBool, ColumnKind(g, "b"))
	assert.Equal(t, KindInvalid, ColumnKind(g, "missing"))
}

// Distinct preserves first-seen order across groups.
func TestDistinct(t *testing.T) {
	g := new(table.Builder).
		Add("cat", []string{"b", "a", "b", "c", "a"}).
		Add("v", []float64{1, 2, 3, 4, 5}).
		Done()
	assert.Equal(t, []interface{}{"b", "a", "c"}, Distinct(g, "cat"))

	grouped := table.GroupBy(g, "cat")
	assert.Len(t, Distinct(grouped, "cat"), 3)
}
