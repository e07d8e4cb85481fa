package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines that render the bands of a frame.
//
// ForEach hands one job to the workers and they claim bands
// from a shared cursor until none are left. Bands covering the set interior
// cost far more than exterior bands, so a worker that finishes early simply
// claims the next band instead of idling.
//
// Thread safety: WorkerPool is safe for concurrent use. Concurrent ForEach
// calls share the workers.
type WorkerPool struct {
	workers int

	// jobs feeds workers; closed by Close.
	jobs chan *bandJob

	// mu orders sends on jobs against Close.
	mu     sync.RWMutex
	closed bool

	wg sync.WaitGroup
}

// bandJob is one ForEach call.
type bandJob struct {
	bands []Band
	fn    func(Band)

	// next is the index of the next unclaimed band.
	next atomic.Int64

	// active counts workers that joined the job and have not left it.
	active sync.WaitGroup
}

// run claims and renders bands until the job is exhausted.
func (j *bandJob) run() {
	defer j.active.Done()
	n := int64(len(j.bands))
	for {
		i := j.next.Add(1) - 1
		if i >= n {
			return
		}
		j.fn(j.bands[i])
	}
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan *bandJob, workers),
	}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		j.run()
	}
}

// ForEach runs fn once per band and blocks until every band is done.
// Each band is passed to exactly one call of fn; calls for different bands
// may run in parallel. After Close, ForEach returns immediately without
// calling fn.
func (p *WorkerPool) ForEach(bands []Band, fn func(Band)) {
	if len(bands) == 0 {
		return
	}

	// More helpers than bands would only spin on an exhausted cursor.
	helpers := min(p.workers, len(bands))
	j := &bandJob{bands: bands, fn: fn}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return
	}
	j.active.Add(helpers)
	for range helpers {
		p.jobs <- j
	}
	p.mu.RUnlock()

	j.active.Wait()
}

// Close lets running jobs finish and stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}
