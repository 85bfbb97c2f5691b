// Package worker fans independent jobs out over a fixed number of
// goroutines. Root-move search and self-play games both go through Map.
package worker

import (
	"sync"
	"sync/atomic"
)

// Result is the outcome of the job submitted with Index.
type Result[R any] struct {
	Value R
	Index int
	Err   error
}

type job[T any] struct {
	index   int
	payload T
}

// Pool runs fn over submitted payloads. Submit is called from a single
// goroutine; results arrive in completion order and must be drained while
// jobs are pending.
type Pool[T, R any] struct {
	fn      func(T) (R, error)
	workers int
	jobs    chan job[T]
	results chan Result[R]
	wg      sync.WaitGroup
	stopped atomic.Bool
	next    int
}

// NewPool starts workers goroutines, at least one.
func NewPool[T, R any](workers int, fn func(T) (R, error)) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	p := &Pool[T, R]{
		fn:      fn,
		workers: workers,
		jobs:    make(chan job[T], workers),
		results: make(chan Result[R], workers),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run()
	}
	return p
}

func (p *Pool[T, R]) run() {
	defer p.wg.Done()
	for j := range p.jobs {
		if p.stopped.Load() {
			continue
		}
		v, err := p.fn(j.payload)
		p.results <- Result[R]{Value: v, Index: j.index, Err: err}
	}
}

// Submit queues payload and returns its index, counting from 0.
func (p *Pool[T, R]) Submit(payload T) int {
	i := p.next
	p.next++
	p.jobs <- job[T]{index: i, payload: payload}
	return i
}

// Stop makes the workers skip jobs they have not started. Jobs in progress
// still deliver their results.
func (p *Pool[T, R]) Stop() {
	p.stopped.Store(true)
}

func (p *Pool[T, R]) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission. Results is closed once every worker has finished.
func (p *Pool[T, R]) Close() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.results
}

func (p *Pool[T, R]) Workers() int {
	return p.workers
}

// Map runs fn over payloads on workers goroutines and returns the values in
// payload order. The first failure stops jobs not yet started; of the
// errors seen, the one with the lowest index is returned.
func Map[T, R any](payloads []T, workers int, fn func(T) (R, error)) ([]R, error) {
	p := NewPool(workers, fn)
	go func() {
		for _, payload := range payloads {
			if p.Stopped() {
				break
			}
			p.Submit(payload)
		}
		p.Close()
	}()

	out := make([]R, len(payloads))
	var firstErr error
	firstIdx := len(payloads)
	for r := range p.Results() {
		out[r.Index] = r.Value
		if r.Err != nil {
			p.Stop()
			if r.Index < firstIdx {
				firstErr, firstIdx = r.Err, r.Index
			}
		}
	}
	return out, firstErr
}
