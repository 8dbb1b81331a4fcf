package main

import (
	"fmt"

	"github.com/phil-mansfield/gridinterp/interpolate"
)

// Config describes one interpolation run: the grid the function was
// sampled on and the query points to evaluate it at.
type Config struct {
	Grid struct {
		// Required. One knot file per axis, in axis order.
		Axis []string
		// Required. File whose first column holds the sample value at
		// every grid node.
		Values string

		// Optional. Layout of the values file: "natural" (default) or
		// "reverse".
		Order string
	}
	Query struct {
		// Required. One query-coordinate file per axis, in axis order.
		Column []string

		// Optional. Results are written here instead of stdout.
		Output string
	}
}

// CheckInit validates everything about the config that can be checked
// before any data files are read.
func (cfg *Config) CheckInit() error {
	if len(cfg.Grid.Axis) == 0 {
		return fmt.Errorf("Need at least one Axis variable in [grid].")
	}
	if cfg.Grid.Values == "" {
		return fmt.Errorf("Need to specify a Values file in [grid].")
	}
	if len(cfg.Query.Column) != len(cfg.Grid.Axis) {
		return fmt.Errorf(
			"[grid] gives %d axes, but [query] gives %d Column variables.",
			len(cfg.Grid.Axis), len(cfg.Query.Column),
		)
	}
	if _, err := cfg.Order(); err != nil {
		return err
	}
	return nil
}

// Order converts the config's Order variable to an interpolate.Order.
func (cfg *Config) Order() (interpolate.Order, error) {
	switch cfg.Grid.Order {
	case "", "natural":
		return interpolate.NaturalOrder, nil
	case "reverse":
		return interpolate.ReverseOrder, nil
	}
	return 0, fmt.Errorf(
		"Unrecognized Order '%s'. Must be 'natural' or 'reverse'.",
		cfg.Grid.Order,
	)
}

const exampleConfigText = `[grid]
# One knot file per axis, in axis order. The first column of each file
# lists that axis's knot coordinates in strictly increasing order.
axis = xs.table
axis = ys.table

# The first column of this file lists the sample value at every grid node.
values = vals.table

# Layout of the values file: 'natural' (axis 0 varies fastest, the
# default) or 'reverse' (the last axis varies fastest).
order = natural

[query]
# One file per axis: the first column gives the query coordinates of
# every point along that axis.
column = qxs.table
column = qys.table

# Uncomment to write results to a file instead of stdout.
# output = out.table
`
