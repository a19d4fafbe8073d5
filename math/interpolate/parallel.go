package interpolate

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultChunk is the number of points handed to a worker at a time
	// during batch evaluation.
	DefaultChunk = 100
	// Loops shorter than this are run on the calling goroutine.
	minParallelLen = 64
)

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int { return runtime.NumCPU() }

// splitRange runs fn over [0, n) split into at most workers contiguous,
// equally sized blocks. It returns once every block has finished, so all
// writes made by fn are visible to the caller afterwards. The first error
// returned by any block is returned; the remaining blocks still run to
// completion before splitRange returns.
func splitRange(workers, n int, fn func(lo, hi int) error) error {
	if n <= 0 { return nil }
	if workers <= 1 || n < minParallelLen {
		return fn(0, n)
	}
	if workers > n { workers = n }

	var g errgroup.Group
	blockLen := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += blockLen {
		lo, hi := lo, lo+blockLen
		if hi > n { hi = n }
		g.Go(func() error { return fn(lo, hi) })
	}
	return g.Wait()
}

// chunkQueue hands out [lo, hi) chunks of a range of length n to workers as
// they become free.
type chunkQueue chan [2]int

func newChunkQueue(n, chunk int) chunkQueue {
	q := make(chunkQueue, (n+chunk-1)/chunk)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n { hi = n }
		q <- [2]int{lo, hi}
	}
	close(q)
	return q
}

// dynamicRange runs fn over [0, n) using workers goroutines which pull
// chunks of the given size from a shared queue. fn must only write to
// indices inside the chunk it was given.
func dynamicRange(workers, n, chunk int, fn func(lo, hi int)) {
	if n <= 0 { return }
	if chunk <= 0 { chunk = DefaultChunk }
	if workers <= 1 || n <= chunk {
		fn(0, n)
		return
	}

	q := newChunkQueue(n, chunk)
	if workers > cap(q) { workers = cap(q) }

	out := make(chan int, workers)
	for id := 0; id < workers-1; id++ {
		go chanEval(id, q, fn, out)
	}
	chanEval(workers-1, q, fn, out)

	for i := 0; i < workers; i++ { <-out }
}

func chanEval(id int, q chunkQueue, fn func(lo, hi int), out chan<- int) {
	for c := range q {
		fn(c[0], c[1])
	}
	out <- id
}
