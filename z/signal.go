// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z

import "fmt"

// Signal is an edge of an And-Inverter Graph: a 32-bit value packing a
// 31-bit node Index in the high bits and a 1-bit complement flag in the
// low bit. Two signals are equal iff both fields are equal, and signals
// order lexicographically by (index, complement) since the complement
// bit is the least significant bit of the packed representation.
type Signal uint32

// SigNull is used where no signal is meaningful, e.g. the fanins of a
// primary input.
const SigNull Signal = 0

// Index returns the node index referred to by m.
func (m Signal) Index() Index {
	return Index(m >> 1)
}

// IsComplemented returns true if m carries an inversion.
func (m Signal) IsComplemented() bool {
	return m&1 != 0
}

// Not returns the negation of m.
func (m Signal) Not() Signal {
	return m ^ 1
}

// Xor conditionally inverts m: Xor(true) negates, Xor(false) is the
// identity.
func (m Signal) Xor(invert bool) Signal {
	if invert {
		return m.Not()
	}
	return m
}

func (m Signal) String() string {
	if m.IsComplemented() {
		return fmt.Sprintf("~%s", m.Index())
	}
	return fmt.Sprintf("%s", m.Index())
}
