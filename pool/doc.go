// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool implements a fixed-size worker pool over a bounded
// task queue. Workers drain the queue with a
// blocking Dequeue; shutdown uses a cooperative-stop protocol so a
// worker mid-drain finishes the items already admitted instead of
// abandoning them. Submit never deadlocks a caller that happens to be
// running on one of the pool's own workers: if the queue is full, the
// caller helps make progress by draining one item itself rather than
// blocking indefinitely behind workers that might themselves be
// blocked trying to submit.
package pool
