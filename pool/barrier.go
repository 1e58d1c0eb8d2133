// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import "sync"

// barrier blocks Wait callers until n arrivals have been recorded via
// Arrive. It is reusable only in the one-shot sense the pool needs: a
// single countdown from n to 0, after which every Wait returns.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	waiting uint32
}

func newBarrier(n uint32) *barrier {
	b := &barrier{waiting: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Arrive counts one arrival down. The last arrival wakes every Wait.
func (b *barrier) Arrive() {
	b.mu.Lock()
	if b.waiting == 0 {
		b.mu.Unlock()
		panic("pool: barrier arrived at more times than its count")
	}
	b.waiting--
	if b.waiting == 0 {
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

// Wait blocks until every arrival has been recorded.
func (b *barrier) Wait() {
	b.mu.Lock()
	for b.waiting > 0 {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
