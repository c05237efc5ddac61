package poly

import (
	"sync"

	"github.com/sp301415/sparse-poly/num"
)

// mulParallel convolves a against b using the given number of workers.
//
// a is split into contiguous chunks of ceiling-division size, one per
// worker; trailing chunks may be shorter or empty, and together the chunks
// cover every term of a exactly once. Each worker convolves its chunk
// against all of b into a private accumulator, so no synchronization is
// needed until the join. The accumulators are then merged single-threaded;
// coefficient addition is associative and commutative, so the merge order
// does not matter and the result matches the sequential path.
//
// Both term slices are shared read-only across workers.
func mulParallel(a, b []Term, workers int) Poly {
	chunk := num.CeilDiv(len(a), workers)
	accs := make([]map[int]int64, workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(idx int) {
			defer wg.Done()

			lo := min(idx*chunk, len(a))
			hi := min(lo+chunk, len(a))
			acc := make(map[int]int64, (hi-lo)+len(b))
			convolveAssign(a[lo:hi], b, acc)
			accs[idx] = acc
		}(i)
	}

	wg.Wait()

	merged := make(map[int]int64, len(a)+len(b))
	for _, acc := range accs {
		for e, c := range acc {
			merged[e] += c
		}
	}
	return fromAccum(merged)
}
