// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomicwait

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// tableSize is the width of the process-wide contention table. It is
// an implementation detail of the sleeping primitive: unrelated words
// that happen to
// hash to the same bucket merely share a condition variable, which
// costs a spurious wakeup, not correctness.
const tableSize = 256

type bucket struct {
	mu   sync.Mutex
	cond *sync.Cond
}

var table [tableSize]bucket

func init() {
	for i := range table {
		table[i].cond = sync.NewCond(&table[i].mu)
	}
}

func bucketFor(addr *uint32) *bucket {
	h := uintptr(unsafe.Pointer(addr))
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return &table[h%tableSize]
}

// Wait blocks until *addr no longer equals old, or returns immediately
// if it already doesn't. Callers re-check the condition they actually
// care about after Wait returns, since the word may have changed to
// some other value than the one they expected (or the wakeup may be
// spurious, shared with an unrelated word in the same bucket).
func Wait(addr *uint32, old uint32) {
	b := bucketFor(addr)
	b.mu.Lock()
	for atomic.LoadUint32(addr) == old {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Notify wakes every goroutine sleeping on addr's bucket. Because
// buckets are shared, Notify may wake goroutines waiting on unrelated
// words; they will simply re-check their own condition and go back to
// sleep if it hasn't changed.
func Notify(addr *uint32) {
	b := bucketFor(addr)
	b.mu.Lock()
	b.cond.Broadcast()
	b.mu.Unlock()
}
