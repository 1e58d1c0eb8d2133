// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomicwait

import "sync/atomic"

// Semaphore is a counting semaphore built on Wait/Notify. It backs
// the bounded queue's "remaining_space" and "items_produced" counters.
type Semaphore struct {
	count uint32
}

// NewSemaphore creates a semaphore with n units available.
func NewSemaphore(n uint32) *Semaphore {
	return &Semaphore{count: n}
}

// Acquire blocks until a unit is available, then takes it.
func (s *Semaphore) Acquire() {
	for {
		cur := atomic.LoadUint32(&s.count)
		if cur == 0 {
			Wait(&s.count, 0)
			continue
		}
		if atomic.CompareAndSwapUint32(&s.count, cur, cur-1) {
			return
		}
	}
}

// TryAcquire takes a unit without blocking, reporting whether one was
// available.
func (s *Semaphore) TryAcquire() bool {
	for {
		cur := atomic.LoadUint32(&s.count)
		if cur == 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&s.count, cur, cur-1) {
			return true
		}
	}
}

// Release returns a unit to the semaphore and wakes every goroutine
// waiting on it (and on any word sharing its bucket); waiters that
// lose the race for the unit go back to sleep.
func (s *Semaphore) Release() {
	atomic.AddUint32(&s.count, 1)
	Notify(&s.count)
}
