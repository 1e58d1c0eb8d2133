// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aig

import (
	"testing"

	"github.com/aigcut/aigcut/z"
)

// buildSmall constructs x0,x1,x2 = pi; n3=and(x0,x1); n4=and(x1,x2);
// n5=and(n3,n4); po(n5).
func buildSmall(t *testing.T) (net *Net, x0, x1, x2, n3, n4, n5 z.Signal) {
	t.Helper()
	net = NewNet()
	x0 = net.CreatePI()
	x1 = net.CreatePI()
	x2 = net.CreatePI()
	n3 = net.CreateAnd(x0, x1)
	n4 = net.CreateAnd(x1, x2)
	n5 = net.CreateAnd(n3, n4)
	net.CreatePO(n5)
	return
}

func TestSmallAIGDeterminism(t *testing.T) {
	net, x0, x1, x2, n3, n4, n5 := buildSmall(t)
	// constant + 3 PIs + 3 AND nodes.
	if net.Len() != 7 {
		t.Errorf("Len() = %d, want 7", net.Len())
	}
	if got := net.FanoutSize(x1.Index()); got != 2 {
		t.Errorf("FanoutSize(x1) = %d, want 2", got)
	}
	if got := net.FanoutSize(n3.Index()); got != 1 {
		t.Errorf("FanoutSize(n3) = %d, want 1", got)
	}
	if got := net.FanoutSize(n4.Index()); got != 1 {
		t.Errorf("FanoutSize(n4) = %d, want 1", got)
	}
	if got := net.FanoutSize(n5.Index()); got != 1 {
		t.Errorf("FanoutSize(n5) = %d, want 1 after CreatePO", got)
	}
	_ = x0
	_ = x2
}

func TestStructuralHashing(t *testing.T) {
	net, x0, x1, _, n3, _, _ := buildSmall(t)
	before := net.Len()
	again := net.CreateAnd(x0, x1)
	if again != n3 {
		t.Errorf("CreateAnd(x0,x1) again = %v, want %v", again, n3)
	}
	if net.Len() != before {
		t.Errorf("Len() changed on a structurally-hashed repeat: %d -> %d", before, net.Len())
	}
}

func TestTrivialRules(t *testing.T) {
	net := NewNet()
	x0 := net.CreatePI()

	if got := net.CreateAnd(x0, x0.Not()); got != net.GetConstant(false) {
		t.Errorf("and(x0, ~x0) = %v, want constant-0", got)
	}
	if got := net.CreateAnd(x0, x0); got != x0 {
		t.Errorf("and(x0, x0) = %v, want x0", got)
	}
	if got := net.CreateAnd(net.GetConstant(true), x0); got != x0 {
		t.Errorf("and(const1, x0) = %v, want x0", got)
	}
	if got := net.CreateAnd(net.GetConstant(false), x0); got != net.GetConstant(false) {
		t.Errorf("and(const0, x0) = %v, want constant-0", got)
	}
}

func TestOrderedFanins(t *testing.T) {
	net := NewNet()
	a := net.CreatePI()
	b := net.CreatePI()
	n := net.CreateAnd(b, a) // supplied out of index order
	fa, fb := net.Ins(n.Index())
	if fa.Index() > fb.Index() {
		t.Errorf("fanins not ordered: %v > %v", fa.Index(), fb.Index())
	}
	if !(fa.Index() < n.Index() && fb.Index() < n.Index()) {
		t.Errorf("fanins not strictly less than self index (I4)")
	}
}

func TestIsPIAndIsConstant(t *testing.T) {
	net := NewNet()
	if !net.IsConstant(0) {
		t.Errorf("node 0 is not reported as constant")
	}
	x0 := net.CreatePI()
	if !net.IsPI(x0.Index()) {
		t.Errorf("PI not reported as PI")
	}
	n := net.CreateAnd(x0, net.CreatePI())
	if net.IsPI(n.Index()) {
		t.Errorf("AND node reported as PI")
	}
	if net.IsPI(z.Index(0)) {
		t.Errorf("constant node reported as PI")
	}
}

func TestGrowthAcrossCapacityThreshold(t *testing.T) {
	net := NewNetCap(4)
	prev := net.CreatePI()
	for i := 0; i < 64; i++ {
		next := net.CreatePI()
		n := net.CreateAnd(prev, next)
		prev = n
	}
	wantLen := 2 + 64*2 // constant + first PI, then (PI, AND) per iteration
	if net.Len() != wantLen {
		t.Fatalf("Len() = %d, want %d", net.Len(), wantLen)
	}
	// Every AND node must still resolve through the grown hash index.
	net2 := NewNetCap(4)
	x0 := net2.CreatePI()
	x1 := net2.CreatePI()
	var last z.Signal
	for i := 0; i < 64; i++ {
		last = net2.CreateAnd(x0, x1)
	}
	if net2.Len() != 4 {
		t.Errorf("Len() = %d, want 4 (repeats must keep hashing to the same node across growth)", net2.Len())
	}
	_ = last
}

func TestForeachFaninSkipsTerminals(t *testing.T) {
	net := NewNet()
	x0 := net.CreatePI()
	var calls int
	net.ForeachFanin(x0.Index(), func(z.Signal) bool {
		calls++
		return false
	})
	if calls != 0 {
		t.Errorf("ForeachFanin invoked callback %d times on a PI, want 0", calls)
	}
	net.ForeachFanin(z.Index(0), func(z.Signal) bool {
		calls++
		return false
	})
	if calls != 0 {
		t.Errorf("ForeachFanin invoked callback %d times on the constant, want 0", calls)
	}
}
