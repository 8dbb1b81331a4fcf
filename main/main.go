package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/phil-mansfield/gridinterp/interpolate"
	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"
)

func main() {
	var (
		configPath    string
		exampleConfig bool
	)

	flag.StringVar(&configPath, "Config", "",
		"Configuration file describing the grid and the query points.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.")

	flag.Parse()

	if exampleConfig {
		fmt.Print(exampleConfigText)
		return
	}

	if configPath == "" {
		log.Fatalf(
			"No configuration file given. Run with -ExampleConfig " +
				"to print a template.",
		)
	}

	cfg := &Config{}
	if err := gcfg.ReadFileInto(cfg, configPath); err != nil {
		log.Fatalf("Couldn't parse config file '%s': %s",
			configPath, err.Error())
	}
	if err := cfg.CheckInit(); err != nil {
		log.Fatalf("%s", err.Error())
	}

	columns, results, err := run(cfg)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}

	w := io.Writer(os.Stdout)
	if cfg.Query.Output != "" {
		f, err := os.Create(cfg.Query.Output)
		if err != nil {
			log.Fatalf("Couldn't create output file '%s': %s",
				cfg.Query.Output, err.Error())
		}
		defer f.Close()
		w = f
	}

	writeResults(w, columns, results)
}

// run reads every data file named by cfg and evaluates the interpolator at
// all the query points. It returns the query columns alongside the results
// so they can be echoed into the output table.
func run(cfg *Config) (columns [][]float64, results []float64, err error) {
	order, err := cfg.Order()
	if err != nil {
		return nil, nil, err
	}

	axes := make([]interpolate.Axis[float64], len(cfg.Grid.Axis))
	columns = make([][]float64, len(cfg.Grid.Axis))

	size := 1
	for k := range cfg.Grid.Axis {
		knots, err := readColumn(cfg.Grid.Axis[k])
		if err != nil {
			return nil, nil, err
		}
		if len(knots) < 2 {
			return nil, nil, fmt.Errorf(
				"Axis file '%s' contains %d knots, but every axis "+
					"needs at least 2.", cfg.Grid.Axis[k], len(knots),
			)
		}

		queries, err := readColumn(cfg.Query.Column[k])
		if err != nil {
			return nil, nil, err
		}

		axes[k] = interpolate.Axis[float64]{Knots: knots, Queries: queries}
		columns[k] = queries
		size *= len(knots)
	}

	for k := 1; k < len(columns); k++ {
		if len(columns[k]) != len(columns[0]) {
			return nil, nil, fmt.Errorf(
				"Query file '%s' contains %d points, but '%s' contains %d.",
				cfg.Query.Column[k], len(columns[k]),
				cfg.Query.Column[0], len(columns[0]),
			)
		}
	}

	vals, err := readColumn(cfg.Grid.Values)
	if err != nil {
		return nil, nil, err
	}
	if len(vals) != size {
		return nil, nil, fmt.Errorf(
			"Values file '%s' contains %d samples, but the grid has "+
				"%d nodes.", cfg.Grid.Values, len(vals), size,
		)
	}

	results = interpolate.Interp(axes, vals, order)
	return columns, results, nil
}

// readColumn reads the first column of a whitespace-separated table file.
func readColumn(file string) ([]float64, error) {
	cols, err := table.ReadTable(file, []int{0}, nil)
	if err != nil {
		return nil, fmt.Errorf("Couldn't read table '%s': %s",
			file, err.Error())
	}
	return cols[0], nil
}

// writeResults prints one row per query point: the query coordinates in
// axis order followed by the interpolated value.
func writeResults(w io.Writer, columns [][]float64, results []float64) {
	for n := range results {
		for k := range columns {
			fmt.Fprintf(w, "%g ", columns[k][n])
		}
		fmt.Fprintf(w, "%g\n", results[n])
	}
}
