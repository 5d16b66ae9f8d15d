// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"
)

// ConfigurationError is implemented by every error a plot
// configuration can fail with before a backend is invoked. Use
// errors.As to branch on the concrete type.
type ConfigurationError interface {
	error
	configurationError()
}

// InputTypeError reports a data source that is not a supported table
// type.
type InputTypeError struct {
	Type string
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("unsupported data source type %s (want table.Grouping or a slice of structs)", e.Type)
}

func (e *InputTypeError) configurationError() {}

// EmptyInputError reports a data table with zero rows.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "data table has no rows"
}

func (e *EmptyInputError) configurationError() {}

// MissingRequiredFieldError reports a configuration field that must
// be set before the plot can be rendered.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	if e.Field == "geometry" {
		return "no geometry set (use PlotPoints, PlotLines, ...)"
	}
	return fmt.Sprintf("required field %q is not set", e.Field)
}

func (e *MissingRequiredFieldError) configurationError() {}

// UnknownColumnError reports a column reference that does not resolve
// against the data table. Columns holds the table's column set for
// the error message.
type UnknownColumnError struct {
	Field   string // the configuration field naming the column
	Column  string
	Columns []string
}

// columnSample is how many available columns an UnknownColumnError
// message lists before truncating.
const columnSample = 5

func (e *UnknownColumnError) Error() string {
	avail := strings.Join(e.Columns, ", ")
	if len(e.Columns) > columnSample {
		avail = fmt.Sprintf("%s, ... (%d total)",
			strings.Join(e.Columns[:columnSample], ", "), len(e.Columns))
	}
	return fmt.Sprintf("column %q for %s not found in data; available columns: %s",
		e.Column, e.Field, avail)
}

func (e *UnknownColumnError) configurationError() {}

// UnsupportedGeometryError reports a geometry kind the selected
// backend does not implement.
type UnsupportedGeometryError struct {
	Geom    GeomKind
	Backend string
}

func (e *UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("geometry %q is not supported by backend %q", e.Geom, e.Backend)
}

func (e *UnsupportedGeometryError) configurationError() {}

// InvalidRangeError reports axis limits with min > max.
type InvalidRangeError struct {
	Axis     string
	Min, Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid %s limits [%v, %v]: min must be <= max", e.Axis, e.Min, e.Max)
}

func (e *InvalidRangeError) configurationError() {}
