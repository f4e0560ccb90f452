package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines that execute batches of work.
//
// Each worker has its own queue and steals from the others when idle, which
// evens out bands whose pixels cost more than others (for example, bands that
// cross the widest part of a triangle).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), max(8, workers*4))
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.run(i)
	}
	return p
}

// run is the loop of worker id.
func (p *WorkerPool) run(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case fn := <-own:
			fn()
			continue
		case <-p.done:
			p.drain(own)
			return
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case fn := <-own:
			fn()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

// drain runs whatever is left in q.
func (p *WorkerPool) drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// steal takes one queued item from another worker, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case fn := <-p.queues[(id+i)%p.workers]:
			return fn
		default:
		}
	}
	return nil
}

// ExecuteAll runs every item and returns once all of them have finished.
//
// Items are dealt round-robin to the worker queues. After Close, or for a
// single item, the work runs on the calling goroutine instead, so a batch is
// never dropped.
func (p *WorkerPool) ExecuteAll(work []func()) {
	switch {
	case len(work) == 0:
		return
	case len(work) == 1 || !p.running.Load():
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		item := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queues[i%p.workers] <- item:
		case <-p.done:
			item()
		}
	}
	wg.Wait()
}

// Close stops the workers once their queues are drained.
// Close is safe to call multiple times, but not concurrently with ExecuteAll.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true until Close is called.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
