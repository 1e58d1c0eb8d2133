// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/aigcut/aigcut/aig"
	"github.com/aigcut/aigcut/cut"
	"github.com/aigcut/aigcut/z"
)

// cutNode creates and immediately releases a bounded cut rooted at n,
// recording its size in results. threadID is unique to this call and
// is never reused while the cut is open.
func cutNode(net *aig.Net, n z.Index, threadID uint32, results *summary) {
	c := cut.CreateCut(net, n, threadID)
	if c == nil {
		results.recordSkipped()
		return
	}
	results.recordCut(len(c))
	cut.ReleaseCut(net, n, c, threadID)
}

// summary accumulates per-node cut statistics across every worker.
type summary struct {
	mu       sync.Mutex
	cuts     int
	skipped  int
	totalLen int
	maxLen   int
}

func newSummary() *summary {
	return &summary{}
}

func (s *summary) recordCut(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cuts++
	s.totalLen += size
	if size > s.maxLen {
		s.maxLen = size
	}
}

// recordSkipped counts a root that was already claimed by another
// thread's in-flight cut by the time this call reached it.
func (s *summary) recordSkipped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped++
}

func (s *summary) WriteTo(w io.Writer, nodeCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	avg := 0.0
	if s.cuts > 0 {
		avg = float64(s.totalLen) / float64(s.cuts)
	}
	fmt.Fprintf(w, "nodes: %d\n", nodeCount)
	fmt.Fprintf(w, "cuts computed: %d\n", s.cuts)
	fmt.Fprintf(w, "roots skipped (already claimed): %d\n", s.skipped)
	fmt.Fprintf(w, "average cut size: %.2f\n", avg)
	fmt.Fprintf(w, "max cut size: %d\n", s.maxLen)

	log.WithFields(log.Fields{
		"cuts":    s.cuts,
		"skipped": s.skipped,
		"avg":     avg,
		"max":     s.maxLen,
	}).Info("cut enumeration complete")
}
