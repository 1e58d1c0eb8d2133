// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aig

import (
	"sync/atomic"

	"github.com/aigcut/aigcut/z"
)

// CheckAndMark is the sole concurrent mutation of a built Net (I5).
// It atomically claims n for threadID: if n is already marked with
// threadID, it succeeds idempotently (reclaim by the same owner); if
// n is unmarked, it CASes to threadID and succeeds; otherwise it
// fails. threadID must be non-zero (0 means "unclaimed").
//
// Go's atomic package provides the same synchronizes-with guarantees
// as explicit acquire/release orderings would on a lower-level
// language: a thread observing its own successful CAS, or observing
// a 0 written by ResetMark, happens-after the corresponding write.
func (net *Net) CheckAndMark(n z.Index, threadID uint32) bool {
	if threadID == 0 {
		panic("aig: CheckAndMark called with thread id 0")
	}
	nd := &net.nodes[n]
	for {
		cur := atomic.LoadUint32(&nd.mark)
		if cur == threadID {
			return true
		}
		if cur != 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&nd.mark, 0, threadID) {
			return true
		}
	}
}

// Mark returns the current mark of n: 0 if unclaimed, or the
// thread id that claimed it.
func (net *Net) Mark(n z.Index) uint32 {
	return atomic.LoadUint32(&net.nodes[n].mark)
}

// ResetMark releases any claim on n, setting its mark back to 0.
// Callers must own n (its mark must equal their thread id) or the
// graph's claim discipline is violated.
func (net *Net) ResetMark(n z.Index) {
	atomic.StoreUint32(&net.nodes[n].mark, 0)
}
