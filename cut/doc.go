// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cut enumerates cuts of AIG nodes: CreateCut claims a node
// and its expanding frontier with an atomic mark, grows the frontier
// toward a target width by the cheapest available moves first, and
// returns the resulting leaf set; ReleaseCut gives the claimed
// subtree back. Many callers, each with a distinct thread id, may run
// CreateCut/ReleaseCut over the same aig.Net concurrently: the only
// shared mutation is the per-node mark, claimed with aig.Net's
// CheckAndMark.
package cut
