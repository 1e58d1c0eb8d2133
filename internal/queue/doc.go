// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue implements a bounded, multi-producer multi-consumer
// FIFO queue, using two counting semaphores from internal/atomicwait
// for backpressure and a short mutex-guarded critical section for the
// FIFO mutation itself.
package queue
