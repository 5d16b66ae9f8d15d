// Copyright 2025 The PipePlotly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pipeplot plots a CSV file.
//
// pipeplot reads a CSV file with a header row, builds the requested
// plot configuration, and writes the rendered figure to the output
// file. The static backend writes SVG; the interactive backend
// writes a self-contained HTML page.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	pp "github.com/Yasser03/pipeplotly"
	"github.com/Yasser03/pipeplotly/backend"
	"github.com/Yasser03/pipeplotly/core"
)

func main() {
	log.SetPrefix("pipeplot: ")
	log.SetFlags(0)

	var (
		flagGeom    = flag.String("geom", "point", "plot `geometry`: point, line, bar, histogram, box, density, heatmap")
		flagX       = flag.String("x", "", "x `column`")
		flagY       = flag.String("y", "", "y `column`")
		flagValue   = flag.String("value", "", "heatmap value `column`")
		flagBins    = flag.Int("bins", 0, "histogram bin count (0: backend default)")
		flagColor   = flag.String("color", "", "color `column`")
		flagPalette = flag.String("palette", "", "palette or colormap `name`")
		flagFacetR  = flag.String("facet-rows", "", "facet row `column`")
		flagFacetC  = flag.String("facet-cols", "", "facet column `column`")
		flagWrap    = flag.String("facet-wrap", "", "facet wrap `column`")
		flagTitle   = flag.String("title", "", "plot `title`")
		flagTheme   = flag.String("theme", core.DefaultTheme, "visual `theme`")
		flagBackend = flag.String("backend", core.BackendStatic,
			fmt.Sprintf("rendering `backend` (%v)", backend.Available()))
		flagFlip = flag.Bool("flip", false, "swap the x and y axes")
		flagXLog = flag.Bool("xlog", false, "log-scale the x axis")
		flagYLog = flag.Bool("ylog", false, "log-scale the y axis")
		flagOut  = flag.String("o", "", "write output to `file` (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	tab, err := readCSV(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	p := pp.New(tab, pp.WithBackend(*flagBackend))
	switch *flagGeom {
	case "point":
		p = p.PlotPoints(*flagX, *flagY)
	case "line":
		p = p.PlotLines(*flagX, *flagY)
	case "bar":
		p = p.PlotBars(*flagX, *flagY)
	case "histogram":
		p = p.PlotHistogram(*flagX, *flagBins)
	case "box":
		p = p.PlotBox(*flagX, *flagY)
	case "density":
		p = p.PlotDensity(*flagX)
	case "heatmap":
		p = p.PlotHeatmap(*flagX, *flagY, *flagValue)
	default:
		log.Fatalf("unknown geometry %q", *flagGeom)
	}

	if *flagColor != "" {
		var copts []pp.ColorOption
		if *flagPalette != "" {
			copts = append(copts, pp.Palette(*flagPalette))
		}
		p = p.AddColor(pp.Col(*flagColor), copts...)
	}
	if *flagFacetR != "" || *flagFacetC != "" || *flagWrap != "" {
		p = p.AddFacets(pp.Facets{Rows: *flagFacetR, Cols: *flagFacetC, Wrap: *flagWrap})
	}
	if *flagTitle != "" {
		p = p.AddLabels(pp.Title(*flagTitle))
	}
	p = p.SetTheme(*flagTheme)
	if *flagFlip {
		p = p.CoordFlip()
	}
	if *flagXLog {
		p = p.ScaleXLog()
	}
	if *flagYLog {
		p = p.ScaleYLog()
	}

	if *flagOut == "" {
		if err := p.Show(); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := p.Save(*flagOut); err != nil {
		log.Fatal(err)
	}
}

// readCSV loads a CSV file with a header row into a table, coercing
// numeric-looking columns.
func readCSV(path string) (table.Grouping, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}
