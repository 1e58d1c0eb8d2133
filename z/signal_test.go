// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z

import "testing"

func TestSignalEquality(t *testing.T) {
	a := Index(5).Pos()
	b := Index(5).Pos()
	c := Index(5).Neg()
	if a != b {
		t.Errorf("two Pos() signals over the same index are not equal")
	}
	if a == c {
		t.Errorf("Pos() and Neg() over the same index compared equal")
	}
}

func TestSignalOrdering(t *testing.T) {
	// Ordering is lexicographic on (index, complement); the complement
	// bit is the packed representation's low bit, so raw comparison
	// gives index priority automatically.
	lowIndexHighComplement := Index(1).Neg()
	highIndexLowComplement := Index(2).Pos()
	if !(lowIndexHighComplement < highIndexLowComplement) {
		t.Errorf("index did not take priority over complement in ordering")
	}
}

func TestSignalXor(t *testing.T) {
	s := Index(7).Pos()
	if s.Xor(false) != s {
		t.Errorf("Xor(false) changed the signal")
	}
	if s.Xor(true) != s.Not() {
		t.Errorf("Xor(true) did not negate")
	}
}

func TestSigNull(t *testing.T) {
	if SigNull.Index() != 0 || SigNull.IsComplemented() {
		t.Errorf("SigNull is not (index 0, uncomplemented)")
	}
}
