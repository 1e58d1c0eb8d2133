// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
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

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "aigcut-*.net")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	return f.Name()
}

func TestRunReportsEveryANDNode(t *testing.T) {
	path := writeTemp(t, smallNetlist)
	o := &runOptions{InputPath: path, Workers: 2, QueueDepth: 4}

	var buf bytes.Buffer
	if err := o.Run(&buf); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "nodes: 7") {
		t.Errorf("output missing expected node count: %q", out)
	}
	if !strings.Contains(out, "cuts computed: 3") {
		t.Errorf("output missing expected cut count: %q", out)
	}
}

func TestRunReadsFromStdinSentinel(t *testing.T) {
	in, err := os.Open(writeTemp(t, "input x0\noutput x0\n"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer in.Close()
	savedStdin := os.Stdin
	os.Stdin = in
	defer func() { os.Stdin = savedStdin }()

	o := &runOptions{InputPath: "-", Workers: 1, QueueDepth: 1}

	var buf bytes.Buffer
	if err := o.Run(&buf); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if !strings.Contains(buf.String(), "nodes: 2") {
		t.Errorf("output missing expected node count: %q", buf.String())
	}
}

func TestRunRejectsMissingFile(t *testing.T) {
	o := &runOptions{InputPath: "/no/such/file.net", Workers: 1, QueueDepth: 1}
	if err := o.Run(&bytes.Buffer{}); err == nil {
		t.Errorf("expected an error for a missing input file")
	}
}
