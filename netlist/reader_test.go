// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netlist

import (
	"strings"
	"testing"

	"github.com/aigcut/aigcut/aig"
	"github.com/aigcut/aigcut/diag"
)

const smallNetlist = `
input x0
input x1
input x2
n3 = and(x0, x1)
n4 = and(x1, x2)
n5 = and(n3, n4)
output n5
`

func TestReadBuildsExpectedGraph(t *testing.T) {
	net := aig.NewNet()
	var c diag.Collector
	if err := Read(strings.NewReader(smallNetlist), net, &c); err != nil {
		t.Fatalf("Read returned an error: %v", err)
	}
	if c.HasAtLeast(diag.Warning) {
		t.Errorf("unexpected diagnostics: %v", c.Diagnostics)
	}
	if net.Len() != 7 {
		t.Errorf("Len() = %d, want 7", net.Len())
	}
	if len(net.Inputs()) != 3 {
		t.Errorf("Inputs() has %d entries, want 3", len(net.Inputs()))
	}
	if len(net.Outputs()) != 1 {
		t.Errorf("Outputs() has %d entries, want 1", len(net.Outputs()))
	}
}

func TestReadReportsUndefinedReference(t *testing.T) {
	net := aig.NewNet()
	var c diag.Collector
	src := "input x0\nn1 = and(x0, ghost)\noutput n1\n"
	if err := Read(strings.NewReader(src), net, &c); err != nil {
		t.Fatalf("Read returned an error: %v", err)
	}
	if !c.HasAtLeast(diag.Error) {
		t.Errorf("expected an error diagnostic for an undefined reference")
	}
}

func TestReadHandlesInversion(t *testing.T) {
	net := aig.NewNet()
	var c diag.Collector
	src := "input x0\nn1 = ~x0\noutput n1\n"
	if err := Read(strings.NewReader(src), net, &c); err != nil {
		t.Fatalf("Read returned an error: %v", err)
	}
	if c.HasAtLeast(diag.Warning) {
		t.Errorf("unexpected diagnostics: %v", c.Diagnostics)
	}
	outs := net.Outputs()
	if len(outs) != 1 || !outs[0].IsComplemented() {
		t.Errorf("output not carried through as a complemented signal: %v", outs)
	}
}

func TestReadIgnoresBlankAndCommentLines(t *testing.T) {
	net := aig.NewNet()
	var c diag.Collector
	src := "# a comment\n\ninput x0\n\noutput x0\n"
	if err := Read(strings.NewReader(src), net, &c); err != nil {
		t.Fatalf("Read returned an error: %v", err)
	}
	if c.HasAtLeast(diag.Warning) {
		t.Errorf("unexpected diagnostics: %v", c.Diagnostics)
	}
}
