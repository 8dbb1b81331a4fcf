package interpolate

const (
	eps32 = 0x1p-23
	eps64 = 0x1p-52
)

// epsilon returns the machine epsilon of T. Corner contributions at or
// below this value are dropped by the accumulation loop.
func epsilon[T Float]() T {
	switch any(T(0)).(type) {
	case float32:
		return eps32
	default:
		return eps64
	}
}

// locate finds the interval of knots which brackets x and the linear weight
// of that interval's lower knot. knots must contain at least two strictly
// increasing values: neither condition is checked, and violating either
// gives garbage results.
//
// Points outside the knot range collapse onto the boundary: below the first
// knot the weight pins the result to knots[0], and above the last knot the
// lower weight is zero, so the full weight lands on the last knot.
func locate[T Float](knots []T, x T) (lower int, weight T) {
	n := len(knots)

	if x <= knots[0] {
		return 0, 1
	} else if x >= knots[n-1] {
		return n - 2, 0
	}

	// Binary search over the n-1 intervals. Each interval is half-open on
	// the right, so a query exactly on an interior knot lands in the
	// interval starting at that knot with a lower weight of exactly 1.
	lo, hi := 0, n-2
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if x < knots[mid] {
			hi = mid - 1
		} else if x >= knots[mid+1] {
			lo = mid + 1
		} else {
			w := (knots[mid+1] - x) / (knots[mid+1] - knots[mid])
			return mid, w
		}
	}

	// Unreachable for strictly increasing knots.
	return lo, 0
}
