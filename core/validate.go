// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Validate checks that s is complete and consistent enough to hand
// to a backend. It is all-or-nothing: the first failing check
// determines the returned error, and rendering must not be attempted
// after a failure.
func (s *State) Validate() error {
	if s.Data == nil {
		return &MissingRequiredFieldError{Field: "data"}
	}
	if Rows(s.Data) == 0 {
		return &EmptyInputError{}
	}
	if s.Geom == GeomNone {
		return &MissingRequiredFieldError{Field: "geometry"}
	}

	// Every column-valued field must resolve against the table.
	checks := []struct {
		field string
		col   string
	}{
		{"x", s.X},
		{"y", s.Y},
		{"color", s.Color.Column()},
		{"size", s.Size.Column()},
		{"shape", s.Shape},
		{"alpha", s.Alpha.Column()},
		{"fill", s.Fill.Column()},
		{"facet rows", s.FacetRows},
		{"facet cols", s.FacetCols},
		{"facet wrap", s.FacetWrap},
	}
	for _, c := range checks {
		if c.col == "" {
			continue
		}
		if !HasColumn(s.Data, c.col) {
			return &UnknownColumnError{
				Field:   c.field,
				Column:  c.col,
				Columns: s.Data.Columns(),
			}
		}
	}
	return nil
}
