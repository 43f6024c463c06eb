package main

import "sync"

// rowRange is the half-open band of grid rows assigned to one worker.
type rowRange struct{ y0, y1 int }

// stepJob carries one tick's inputs to the worker goroutines.
type stepJob struct {
	dst       *scalarField
	cur, prev fieldView
	c2        float32
	damp      float32
}

// workerPool keeps a fixed set of goroutines, each owning a band of grid
// rows. dispatch wakes all of them for exactly one full-grid pass and blocks
// until every band has retired; that wait is the hard synchronization
// barrier between a tick and whatever samples its output.
type workerPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	ranges  []rowRange
	job     stepJob
	epoch   int
	pending int
}

// newWorkerPool splits height rows across the requested worker count and
// starts the goroutines.
func newWorkerPool(workers, height int) *workerPool {
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}
	p := &workerPool{}
	p.cond = sync.NewCond(&p.mu)
	rowsPer := (height + workers - 1) / workers
	for y := 0; y < height; y += rowsPer {
		end := y + rowsPer
		if end > height {
			end = height
		}
		p.ranges = append(p.ranges, rowRange{y0: y, y1: end})
	}
	for i := range p.ranges {
		go p.loop(p.ranges[i])
	}
	return p
}

// workers reports how many row bands the pool runs in parallel.
func (p *workerPool) workers() int { return len(p.ranges) }

// loop waits for dispatched jobs and steps the worker's row band.
func (p *workerPool) loop(rows rowRange) {
	lastEpoch := 0
	p.mu.Lock()
	for {
		for p.epoch == lastEpoch {
			p.cond.Wait()
		}
		lastEpoch = p.epoch
		job := p.job
		p.mu.Unlock()

		stepRows(job.dst, job.cur, job.prev, rows.y0, rows.y1, job.c2, job.damp)

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
	}
}

// dispatch runs one full-grid pass and returns only after all rows have been
// written.
func (p *workerPool) dispatch(job stepJob) {
	p.mu.Lock()
	p.job = job
	p.pending = len(p.ranges)
	p.epoch++
	p.cond.Broadcast()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.mu.Unlock()
}
