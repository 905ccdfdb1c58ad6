package algo

import "github.com/ajroetker/go-specfun/sf/contrib/workerpool"

const (
	// MinParallelPoints is the smallest slice handed to a pool; shorter
	// slices are evaluated on the caller.
	MinParallelPoints = 4096

	// PointBatch is the number of points a worker claims at a time.
	// Iterative evaluators (InvGammaP, W0 near the branch point) vary in
	// cost, so work is claimed in batches rather than fixed chunks.
	PointBatch = 256
)

// ParallelTransform64 is Transform64 spread over pool. A nil pool, or a
// slice shorter than MinParallelPoints, is evaluated sequentially.
func ParallelTransform64(pool *workerpool.Pool, input, output []float64, fn ScalarFunc64) {
	n := min(len(input), len(output))
	if pool == nil || n < MinParallelPoints {
		Transform64(input[:n], output[:n], fn)
		return
	}
	pool.ParallelForAtomicBatched(n, PointBatch, func(start, end int) {
		Transform64(input[start:end], output[start:end], fn)
	})
}

// ParallelTransform64x2 is Transform64x2 spread over pool.
func ParallelTransform64x2(pool *workerpool.Pool, a float64, input, output []float64, fn ScalarFunc64x2) {
	n := min(len(input), len(output))
	if pool == nil || n < MinParallelPoints {
		Transform64x2(a, input[:n], output[:n], fn)
		return
	}
	pool.ParallelForAtomicBatched(n, PointBatch, func(start, end int) {
		Transform64x2(a, input[start:end], output[start:end], fn)
	})
}
