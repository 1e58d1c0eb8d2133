// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aig

import (
	"sync"
	"testing"
)

func TestCheckAndMarkClaimAndIdempotence(t *testing.T) {
	net := NewNet()
	x0 := net.CreatePI()
	n := x0.Index()

	if !net.CheckAndMark(n, 1) {
		t.Fatalf("first claim failed")
	}
	if !net.CheckAndMark(n, 1) {
		t.Errorf("same-owner reclaim failed")
	}
	if net.CheckAndMark(n, 2) {
		t.Errorf("second thread was allowed to claim an owned node")
	}
	if got := net.Mark(n); got != 1 {
		t.Errorf("Mark() = %d, want 1", got)
	}
	net.ResetMark(n)
	if got := net.Mark(n); got != 0 {
		t.Errorf("Mark() after ResetMark = %d, want 0", got)
	}
	if !net.CheckAndMark(n, 2) {
		t.Errorf("claim after release failed")
	}
}

func TestCheckAndMarkPanicsOnZeroThreadID(t *testing.T) {
	net := NewNet()
	x0 := net.CreatePI()
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for thread id 0")
		}
	}()
	net.CheckAndMark(x0.Index(), 0)
}

func TestCheckAndMarkConcurrentExclusion(t *testing.T) {
	net := NewNet()
	x0 := net.CreatePI()
	n := x0.Index()

	const contenders = 64
	var wins int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := uint32(1); i <= contenders; i++ {
		wg.Add(1)
		go func(id uint32) {
			defer wg.Done()
			if net.CheckAndMark(n, id) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if wins != 1 {
		t.Errorf("%d of %d concurrent claimants won, want exactly 1", wins, contenders)
	}
}
