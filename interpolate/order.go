package interpolate

// Order selects how a multi-dimensional grid index maps to an offset into
// the flat sample array. It is chosen once per interpolator and applied
// uniformly to every grid lookup.
type Order int

const (
	// NaturalOrder lays the grid out with axis 0 varying fastest:
	// vals(i0, i1, ...) -> vals[i0 + i1*n0 + i2*n0*n1 + ...].
	NaturalOrder Order = iota
	// ReverseOrder lays the grid out with the last axis varying fastest.
	ReverseOrder
)

// offset flattens one index per axis into a position in the sample array.
func (o Order) offset(counts, indices []int) int {
	idx, stride := 0, 1
	if o == ReverseOrder {
		for k := len(counts) - 1; k >= 0; k-- {
			idx += indices[k] * stride
			stride *= counts[k]
		}
		return idx
	}
	for k := 0; k < len(counts); k++ {
		idx += indices[k] * stride
		stride *= counts[k]
	}
	return idx
}

func (o Order) String() string {
	switch o {
	case NaturalOrder:
		return "natural"
	case ReverseOrder:
		return "reverse"
	}
	return "unknown"
}
