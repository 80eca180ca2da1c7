// Package parallel provides the worker pool used to evaluate and filter
// the curves of a batch concurrently.
//
// Curves are independent of each other, so the pool needs no result
// plumbing: callers hand it closures that write to pre-assigned slots.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs batches of independent jobs on a fixed set of
// goroutines.
//
// Each worker owns a queue and steals from the others when its own runs
// dry. Polynomial evaluation cost varies with degree and sample count,
// so stealing keeps a batch of mixed-degree curves from serializing
// behind its most expensive member.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few queued jobs per worker hide submission latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}

	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			// Try to steal work from another worker
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.workQueues[i]:
			return work
		default:
			// Queue is empty, try next
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it to
// complete. If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	for i, fn := range work {
		workerID := i % p.workers
		workFn := fn

		wrappedWork := func() {
			defer completionWG.Done()
			workFn()
		}

		// Submit to worker's queue (may block if queue is full)
		select {
		case p.workQueues[workerID] <- wrappedWork:
		case <-p.done:
			completionWG.Done()
		}
	}

	completionWG.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		// Already closed
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
