// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atomicwait implements sleeping wait/notify on a 32-bit
// atomic word, and a counting semaphore built on top of it, standing
// in for the futex/condvar primitive the queue and pool are described
// against: Go does not expose a raw futex, so Wait/Notify are built
// from sync.Mutex/sync.Cond, addressed through a small process-wide
// contention table of 256 buckets; unrelated words that hash to the
// same bucket share its condition variable.
package atomicwait
