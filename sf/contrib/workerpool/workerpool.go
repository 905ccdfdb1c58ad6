// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs slice evaluations on a fixed set of goroutines.
//
// A Pool is created once and shared by every bulk call, so evaluating
// many grids does not pay for goroutine start-up on each one. The
// evaluators themselves are pure, so any split of an index range over
// workers produces the same output as a sequential loop.
//
// Usage:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	pool.ParallelFor(len(xs), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        ys[i] = faddeeva.Erfcx(xs[i])
//	    }
//	})
//
// A nil or closed *Pool is valid and runs everything on the calling
// goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers.
type Pool struct {
	workers int
	jobs    chan job
	once    sync.Once
	closed  atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with n workers. If n <= 0, GOMAXPROCS is used.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		jobs:    make(chan job, 2*n),
	}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers after queued jobs finish. It is safe to call
// more than once; later calls on the pool run inline.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// inline reports whether work must run on the caller.
func (p *Pool) inline() bool {
	return p == nil || p.closed.Load()
}

// fanOut runs body(w) for w in [0, k) on k workers and waits for all.
func (p *Pool) fanOut(k int, body func(w int)) {
	var wg sync.WaitGroup
	wg.Add(k)
	for w := range k {
		p.jobs <- job{run: func() { body(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each. It returns when every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	k := min(p.NumWorkers(), n)
	if k == 1 || p.inline() {
		fn(0, n)
		return
	}
	chunk := (n + k - 1) / k
	// With ceil-sized chunks the last few workers may have nothing to do.
	k = (n + chunk - 1) / chunk
	p.fanOut(k, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), with workers
// claiming indices one at a time. Use it when cost varies by index, as it
// does for evaluators that iterate to convergence.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic with workers claiming
// batchSize indices per grab. batchSize <= 0 is treated as 1.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	k := min(p.NumWorkers(), batches)
	if k == 1 || p.inline() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.fanOut(k, func(int) {
		for {
			start := int(next.Add(int64(batchSize)) - int64(batchSize))
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
