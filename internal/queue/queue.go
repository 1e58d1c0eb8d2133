// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import (
	"sync"

	"github.com/aigcut/aigcut/internal/atomicwait"
)

// Queue is a bounded FIFO of depth D, safe for concurrent use by many
// producers and consumers. Enqueue blocks while the queue is full;
// Dequeue blocks while it is empty. Both have non-blocking Try
// variants.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	head  int

	space    *atomicwait.Semaphore // remaining_space, sized D
	produced *atomicwait.Semaphore // items_produced, sized D
}

// New creates a queue with bounded depth d.
func New[T any](d int) *Queue[T] {
	if d < 1 {
		panic("queue: depth must be positive")
	}
	return &Queue[T]{
		items:    make([]T, 0, d),
		space:    atomicwait.NewSemaphore(uint32(d)),
		produced: atomicwait.NewSemaphore(0),
	}
}

// Enqueue blocks until there is room, then pushes x.
func (q *Queue[T]) Enqueue(x T) {
	q.space.Acquire()
	q.push(x)
	q.produced.Release()
}

// TryEnqueue pushes x without blocking, reporting whether there was
// room.
func (q *Queue[T]) TryEnqueue(x T) bool {
	if !q.space.TryAcquire() {
		return false
	}
	q.push(x)
	q.produced.Release()
	return true
}

// Dequeue blocks until an item is available, then pops it.
func (q *Queue[T]) Dequeue() T {
	q.produced.Acquire()
	x := q.pop()
	q.space.Release()
	return x
}

// TryDequeue pops an item without blocking. ok is false if the queue
// was empty.
func (q *Queue[T]) TryDequeue() (x T, ok bool) {
	if !q.produced.TryAcquire() {
		return x, false
	}
	x = q.pop()
	q.space.Release()
	return x, true
}

func (q *Queue[T]) push(x T) {
	q.mu.Lock()
	q.items = append(q.items, x)
	q.mu.Unlock()
}

func (q *Queue[T]) pop() T {
	q.mu.Lock()
	x := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	q.mu.Unlock()
	return x
}
