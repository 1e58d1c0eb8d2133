// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/aigcut/aigcut/internal/queue"
)

// task is the unit the pool's internal queue carries. A stop task
// carries no work; it exists only to make exactly one worker retire.
type task struct {
	fn      func()
	stop    bool
	barrier *barrier
}

// Pool runs a fixed number of worker goroutines draining a bounded
// task queue.
type Pool struct {
	q       *queue.Queue[task]
	workers int
	wg      sync.WaitGroup
	once    sync.Once
}

// New starts a pool of the given number of workers backed by a queue
// of the given depth. New panics if workers < 1.
func New(workers, depth int) *Pool {
	if workers < 1 {
		panic("pool: workers must be positive")
	}
	p := &Pool{
		q:       queue.New[task](depth),
		workers: workers,
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run(i)
	}
	log.WithFields(log.Fields{"workers": workers, "depth": depth}).Info("pool started")
	return p
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for {
		t := p.q.Dequeue()
		if t.stop {
			log.WithField("worker", id).Debug("pool worker retiring")
			t.barrier.Arrive()
			return
		}
		t.fn()
	}
}

// Submit hands fn to the pool, blocking until it is admitted. If the
// queue is full, Submit helps drain it by running one pending task
// itself rather than blocking indefinitely; this keeps a caller that
// happens to be running on one of the pool's own workers from
// deadlocking against a full queue.
//
// Submit must not be called concurrently with or after Stop: a
// caller helping drain the queue during shutdown could consume a
// worker's stop marker itself, leaving that worker parked forever.
func (p *Pool) Submit(fn func()) {
	t := task{fn: fn}
	for {
		if p.q.TryEnqueue(t) {
			return
		}
		p.makeProgress()
	}
}

// makeProgress runs one pending task inline if one is immediately
// available, without blocking.
func (p *Pool) makeProgress() {
	other, ok := p.q.TryDequeue()
	if !ok {
		return
	}
	if other.stop {
		other.barrier.Arrive()
		return
	}
	other.fn()
}

// Stop requests every worker to retire once the tasks already in the
// queue ahead of the stop markers have run, then blocks until all
// workers have exited. Stop is idempotent: calling it more than once
// has no further effect after the first call returns.
func (p *Pool) Stop() {
	p.once.Do(func() {
		b := newBarrier(uint32(p.workers + 1))
		for i := 0; i < p.workers; i++ {
			p.q.Enqueue(task{stop: true, barrier: b})
		}
		b.Arrive()
		b.Wait()
		p.wg.Wait()
		log.WithField("workers", p.workers).Info("pool stopped")
	})
}
