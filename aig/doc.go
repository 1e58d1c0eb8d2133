// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aig implements an And-Inverter Graph with structural hashing
// and an atomic per-node mark used to give worker threads exclusive
// exploration rights during concurrent cut enumeration.
//
// Graphs are built single-threaded via CreatePI/CreateAnd/CreatePO.
// Once built, the node array and the structural-hash index are
// read-only; the only supported concurrent mutation of a live Net is
// CheckAndMark/ResetMark on a node's mark word.
package aig
