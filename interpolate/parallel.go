package interpolate

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvalAllParallel is EvalAll with the query batch split into contiguous
// chunks evaluated on separate goroutines. Each chunk gets its own Ref, so
// the receiver itself is never written to. Output slots are disjoint per
// chunk, which makes the batch safe to split without synchronization.
//
// workers <= 0 uses runtime.NumCPU(). The result is identical to the
// serial EvalAll.
func (nd *NDLinear[T]) EvalAllParallel(
	workers int, columns [][]T, out ...[]T,
) []T {
	if len(out) == 0 {
		out = [][]T{make([]T, len(columns[0]))}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := len(columns[0])
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return nd.EvalAll(columns, out...)
	}

	var group errgroup.Group
	group.SetLimit(workers)

	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		ref := nd.Ref()
		group.Go(func() error {
			point := make([]T, len(ref.knots))
			for i := start; i < end; i++ {
				for k := range columns {
					point[k] = columns[k][i]
				}
				out[0][i] = ref.Eval(point...)
			}
			return nil
		})
	}

	// The workers never fail; Wait is only used as a join point.
	_ = group.Wait()

	return out[0]
}
